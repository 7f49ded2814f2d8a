// Package importcmd handles statement import commands
package importcmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/meghaa105/personal-finance-sub000/cmd/root"
	"github.com/meghaa105/personal-finance-sub000/internal/ingest"
	"github.com/meghaa105/personal-finance-sub000/internal/pdfparser"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import transactions from a statement file",
	Long: `Import transactions from a bank CSV, bank PDF or Splitwise export.
The file type is detected automatically unless --type is given. Parsed
transactions are previewed before being committed; duplicates already in
the store are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.ImportType, "type", "t", "auto", "File type: auto, csv, splitwise or pdf")
	Cmd.Flags().StringVar(&root.ImportIssuer, "issuer", "auto", "PDF statement issuer: auto, hdfc or axis")
	Cmd.Flags().BoolVarP(&root.AssumeYes, "yes", "y", false, "Commit without asking for confirmation")
	Cmd.Flags().BoolVar(&root.DryRun, "dry-run", false, "Parse and preview only, never commit")
}

func importFunc(cmd *cobra.Command, args []string) error {
	fileType, err := ingest.ParseFileType(root.ImportType)
	if err != nil {
		return err
	}
	issuer, err := pdfparser.ParseIssuer(root.ImportIssuer)
	if err != nil {
		return err
	}

	preview, err := root.Coordinator().Preview(args[0], fileType, issuer)
	if err != nil {
		return err
	}

	printPreview(cmd, preview)

	if root.DryRun {
		root.Log.Info("Dry run requested, nothing committed")
		return nil
	}

	if !root.AssumeYes && !confirm(cmd) {
		root.Log.Info("Import cancelled")
		return nil
	}

	added, err := root.Coordinator().Confirm(preview)
	if err != nil {
		return err
	}

	cmd.Printf("Imported %d transaction(s), skipped %d duplicate(s)\n",
		added, len(preview.Transactions)-added)
	return nil
}

func printPreview(cmd *cobra.Command, p *ingest.Preview) {
	cmd.Printf("Parsed %d transaction(s) from %s (%s)\n", len(p.Transactions), p.File, p.Source)
	for _, tx := range p.Transactions {
		cmd.Printf("  %s  %-10s %10s  %-20s %s\n",
			tx.Date.Format("2006-01-02"), tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.Description)
	}
}

func confirm(cmd *cobra.Command) bool {
	cmd.Print("Commit these transactions? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
