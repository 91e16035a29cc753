package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"vaultmigrate/internal/application/commands"
	"vaultmigrate/internal/config"
)

var (
	lookupSource string
	lookupCopy   bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [sid]",
	Short: "Show where a source file was migrated to",
	Long: `Look up a mapping entry by stable ID, or by source path with --source.

Examples:
  vaultmigrate lookup 164ede6e5730a8d5
  vaultmigrate lookup --source "~/exports/notion/Q3 Revenue Report 8f14e45fceea167a5a36dedd4bea2543.md"
  vaultmigrate lookup 164ede6e5730a8d5 --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var lookup *commands.LookupCommand
		if lookupSource != "" {
			lookup = commands.NewLookupBySourceCommand(GetMappings(), vaultPath, config.ExpandHome(lookupSource))
		} else {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			lookup = commands.NewLookupCommand(GetMappings(), vaultPath, id)
		}

		result, err := lookup.Execute(cmd.Context())
		if err != nil {
			return err
		}

		printEntry(result)

		if lookupCopy {
			if err := clipboard.WriteAll(result.FilePath); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Println(mutedStyle.Render("copied path to clipboard"))
		}
		return nil
	},
}

func printEntry(r *commands.LookupResult) {
	fmt.Println(titleStyle.Render(r.Entry.Title))
	fmt.Println(field("SID", r.ID))
	fmt.Println(field("Category", categoryStyle.Render(string(r.Entry.Category))))
	fmt.Println(field("Type", r.Entry.Type))
	if r.Entry.OriginalExt != "" {
		fmt.Println(field("Extension", r.Entry.OriginalExt))
	}
	fmt.Println(field("Source", r.Entry.Source))
	fmt.Println(field("Destination", r.Entry.Dest))
	fmt.Println(field("File", r.FilePath))
	fmt.Println(field("Migrated at", r.Entry.MigratedAt))
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupSource, "source", "s", "", "look up by source path instead of stable ID")
	lookupCmd.Flags().BoolVarP(&lookupCopy, "copy", "c", false, "copy the document path to the clipboard")
	rootCmd.AddCommand(lookupCmd)
}
