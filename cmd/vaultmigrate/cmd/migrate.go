package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vaultmigrate/internal/adapters/filesystem"
	"vaultmigrate/internal/application"
	"vaultmigrate/internal/application/commands"
	"vaultmigrate/internal/config"
)

var (
	notionDir string
	boxDir    string
	noIndex   bool
	watch     bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the Notion export and Box directory into the vault",
	Long: `Walk the Notion export, then the Box directory, and write one markdown
document per source file into the vault. Items already recorded in the
mapping with the same destination are skipped.

Non-markdown Box files are imported as placeholders that point back at the
original file. With --watch the command keeps running and migrates again
whenever a file below either source root changes.

Examples:
  vaultmigrate migrate --notion-export ~/exports/notion --box-dir ~/Box
  vaultmigrate migrate --notion-export ~/exports/notion --box-dir ~/Box --watch
  VAULTMIGRATE_VAULT=~/vaults/work vaultmigrate migrate --notion-export n --box-dir b`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.ValidateRequired("notionDir", notionDir); err != nil {
			return err
		}
		if err := application.ValidateRequired("boxDir", boxDir); err != nil {
			return err
		}

		logger := GetLogger()
		vault, err := filepath.Abs(vaultPath)
		if err != nil {
			return err
		}

		notion := filesystem.NewNotionWalker(config.ExpandHome(notionDir), logger).Exclude(vault, mappingPath)
		box := filesystem.NewBoxWalker(config.ExpandHome(boxDir), logger).Exclude(vault, mappingPath)

		migrate := commands.NewMigrateCommand(
			GetMappings(),
			filesystem.NewDocumentStore(),
			notion,
			box,
			vault,
			logger,
		)

		if !noIndex {
			idx, err := openIndex()
			if err != nil {
				logger.Warn("mapping index unavailable", zap.Error(err))
			} else {
				defer idx.Close()
				migrate.WithIndex(idx)
			}
		}

		// In watch mode only collisions are survivable
		err = runMigration(cmd.Context(), migrate, vault)
		if err != nil && (!watch || !errors.Is(err, application.ErrIDCollision)) {
			return err
		}
		if !watch {
			return nil
		}

		watcher := filesystem.NewWatcher([]string{notion.Root(), box.Root()}, logger).
			Exclude(vault, mappingPath)
		return watcher.Run(cmd.Context(), func(ctx context.Context) error {
			return runMigration(ctx, migrate, vault)
		})
	},
}

// runMigration executes one migration run and prints its summary
func runMigration(ctx context.Context, migrate *commands.MigrateCommand, vault string) error {
	result, err := migrate.Execute(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(result.Message))
	fmt.Println(statsLine("Notion", result.Notion))
	fmt.Println(statsLine("Box", result.Box))
	fmt.Println(field("Mappings", result.TotalMappings))
	fmt.Println(field("Vault", vault))
	fmt.Println(mutedStyle.Render("run " + result.RunID))

	if n := result.Collisions(); n > 0 {
		return fmt.Errorf("%d items were not migrated: %w", n, application.ErrIDCollision)
	}
	return nil
}

func init() {
	migrateCmd.Flags().StringVar(&notionDir, "notion-export", config.NotionExportDir(), "Notion export directory")
	migrateCmd.Flags().StringVar(&boxDir, "box-dir", config.BoxDir(), "Box directory")
	migrateCmd.Flags().BoolVar(&noIndex, "no-index", false, "do not update the search index")
	migrateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and migrate again when the sources change")
	rootCmd.AddCommand(migrateCmd)
}
