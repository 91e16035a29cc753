package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultmigrate/internal/application/commands"
)

var searchExact bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search migrated documents",
	Long: `Search migrated documents by title, source file name, destination or ID.

Results are ranked by relevance using fuzzy matching. Use --exact for plain
substring matches.

Examples:
  vaultmigrate search revenue
  vaultmigrate search q3rev
  vaultmigrate search --exact "style guide"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		search := commands.NewSearchCommand(idx, args[0])
		search.Exact = searchExact
		results, err := search.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s %s %s\n", mutedStyle.Render(r.ID.String()), categoryStyle.Render("["+string(r.Category)+"]"), r.Title)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "substring match only")
	rootCmd.AddCommand(searchCmd)
}
