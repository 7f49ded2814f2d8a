// Package categories handles category mapping commands
package categories

import (
	"github.com/meghaa105/personal-finance-sub000/cmd/root"
	"github.com/meghaa105/personal-finance-sub000/internal/categorizer"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage custom category mappings",
	Long: `List, add and remove custom category mappings. Custom mappings take
precedence over the built-in keyword rules during import.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their patterns",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Map a description pattern to a category",
	RunE:  addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a pattern, or a whole category when no pattern is given",
	RunE:  removeFunc,
}

func init() {
	addCmd.Flags().StringVarP(&root.CategoryName, "category", "c", "", "Category name")
	addCmd.Flags().StringVarP(&root.Pattern, "pattern", "p", "", "Description substring to match")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("pattern")

	removeCmd.Flags().StringVarP(&root.CategoryName, "category", "c", "", "Category name")
	removeCmd.Flags().StringVarP(&root.Pattern, "pattern", "p", "", "Pattern to remove (omit to delete the category)")
	_ = removeCmd.MarkFlagRequired("category")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	custom := root.Categorizer().Mappings()
	if len(custom) > 0 {
		cmd.Println("Custom mappings:")
		for _, m := range custom {
			cmd.Printf("  %s:\n", m.Category)
			for _, p := range m.Patterns {
				cmd.Printf("    - %s\n", p)
			}
		}
	} else {
		cmd.Println("No custom mappings defined.")
	}

	cmd.Println("Built-in categories:")
	for _, c := range categorizer.DefaultCategories {
		cmd.Printf("  %s\n", c.Name)
	}
}

func addFunc(cmd *cobra.Command, args []string) error {
	if err := root.Categorizer().AddPattern(root.CategoryName, root.Pattern); err != nil {
		return err
	}
	cmd.Printf("Mapped %q to %q\n", root.Pattern, root.CategoryName)
	return nil
}

func removeFunc(cmd *cobra.Command, args []string) error {
	if root.Pattern == "" {
		if err := root.Categorizer().DeleteCategory(root.CategoryName); err != nil {
			return err
		}
		cmd.Printf("Deleted category %q\n", root.CategoryName)
		return nil
	}
	if err := root.Categorizer().RemovePattern(root.CategoryName, root.Pattern); err != nil {
		return err
	}
	cmd.Printf("Removed %q from %q\n", root.Pattern, root.CategoryName)
	return nil
}
