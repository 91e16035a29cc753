package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vaultmigrate/internal/application/commands"
	"vaultmigrate/internal/domain"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List migrated documents",
	Long: `List migrated documents grouped by category.

Examples:
  vaultmigrate list
  vaultmigrate list --category Finance`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		entries, err := commands.NewListCommand(idx, listCategory).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No documents found")
			return nil
		}

		var current domain.Category
		for _, e := range entries {
			if e.Category != current {
				current = e.Category
				fmt.Println(categoryStyle.Render(string(current)))
			}
			fmt.Printf("  %s %s\n", mutedStyle.Render(e.ID.String()), e.Title)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count migrated documents per category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		result, err := commands.NewStatsCommand(idx).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, c := range result.Counts {
			line := field(string(c.Category), fmt.Sprintf("%4d", c.Count))
			if c.Count == 0 {
				line = mutedStyle.Render(fmt.Sprintf("%-14s %4d", c.Category, 0))
			}
			fmt.Println(line)
		}
		fmt.Println(strings.Repeat("-", 19))
		fmt.Println(field("Total", fmt.Sprintf("%4d", result.Total)))
		return nil
	},
}

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search index from the mapping file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		stats, err := commands.NewReindexCommand(GetMappings(), idx).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %d documents, removed %d (%s)\n",
			stats.EntriesIndexed, stats.EntriesRemoved, stats.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only list this category")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reindexCmd)
}
