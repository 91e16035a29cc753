package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultmigrate/internal/adapters/editor"
	"vaultmigrate/internal/adapters/filesystem"
	"vaultmigrate/internal/adapters/obsidian"
	"vaultmigrate/internal/application/commands"
	"vaultmigrate/internal/domain"
)

var openCmd = &cobra.Command{
	Use:   "open <sid>",
	Short: "Open a migrated document in Obsidian",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewLookupCommand(GetMappings(), vaultPath, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		return obsidian.NewOpener(vaultPath).OpenFile(result.FilePath)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <sid>",
	Short: "Open a migrated document in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewLookupCommand(GetMappings(), vaultPath, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		return editor.NewOpener().OpenFile(result.FilePath)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <sid>",
	Short: "Print a migrated document with its metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		show := commands.NewShowCommand(GetMappings(), filesystem.NewDocumentStore(), vaultPath, args[0])
		result, err := show.Execute(cmd.Context())
		if err != nil {
			return err
		}

		printEntry(&result.LookupResult)
		fmt.Println()
		for _, m := range result.Document.Metadata {
			if m.Key == domain.MetaSID || m.Key == domain.MetaCategory {
				continue
			}
			fmt.Println(mutedStyle.Render(m.Key + ": " + m.Value))
		}
		fmt.Println()
		fmt.Println(result.Document.Body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
}
