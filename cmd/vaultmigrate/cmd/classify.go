package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vaultmigrate/internal/application/commands"
	"vaultmigrate/internal/config"
)

var classifySource string

var classifyCmd = &cobra.Command{
	Use:   "classify <title> [content]",
	Short: "Preview the category and destination for a title",
	Long: `Run the keyword classifier without writing anything.

Examples:
  vaultmigrate classify "Q3 Revenue Report"
  vaultmigrate classify "Notes" "Our GDPR checklist"
  vaultmigrate classify "budget" --source ~/Box/budget.xlsx`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := ""
		if len(args) == 2 {
			content = args[1]
		}

		source := classifySource
		if source != "" {
			abs, err := filepath.Abs(config.ExpandHome(source))
			if err != nil {
				return err
			}
			source = abs
		}

		result, err := commands.NewClassifyCommand(args[0], content, source).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(field("Category", categoryStyle.Render(string(result.Category))))
		fmt.Println(field("Slug", result.Slug))
		fmt.Println(field("Destination", result.Dest))
		if result.ID != "" {
			fmt.Println(field("SID", result.ID))
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifySource, "source", "s", "", "source path to derive the stable ID from")
	rootCmd.AddCommand(classifyCmd)
}
