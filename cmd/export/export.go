// Package export handles exporting the transaction store
package export

import (
	"github.com/meghaa105/personal-finance-sub000/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored transactions to CSV",
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.OutputFile, "output", "o", "transactions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	if err := root.TransactionStore().ExportCSV(root.OutputFile); err != nil {
		return err
	}
	cmd.Printf("Exported transactions to %s\n", root.OutputFile)
	return nil
}
