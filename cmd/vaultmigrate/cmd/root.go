package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vaultmigrate/internal/adapters/filesystem"
	"vaultmigrate/internal/adapters/sqlite"
	"vaultmigrate/internal/config"
	"vaultmigrate/internal/logging"
	"vaultmigrate/internal/ports"
)

var (
	vaultPath   string
	mappingPath string
	logLevel    string
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vaultmigrate",
	Short: "Migrate Notion and Box exports into an Obsidian vault",
	Long: `vaultmigrate copies a Notion markdown export and a Box file tree into
an Obsidian vault. Every file gets a stable ID derived from its source path,
a category from a fixed keyword taxonomy, and a markdown document under
Knowledge/IntegrateWise/<category>/.

A mapping file records what was migrated so repeated runs only write new
or moved items.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		logger, err = logging.New(logLevel)
		if err != nil {
			return err
		}

		vaultPath = config.ExpandHome(vaultPath)
		if mappingPath == "" {
			mappingPath = config.MappingPathIn(vaultPath)
		}
		mappingPath = config.ExpandHome(mappingPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command. Interrupts cancel the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
	rootCmd.PersistentFlags().StringVarP(&mappingPath, "mapping", "m", "", "mapping file (default: mapping.json in the vault)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.LogLevel(), "log level (debug, info, warn, error)")
}

// GetLogger returns the logger initialized for the current command
func GetLogger() *zap.Logger {
	return logging.OrNop(logger)
}

// GetMappings returns the mapping repository for the configured file
func GetMappings() ports.MappingRepository {
	return filesystem.NewMappingFile(mappingPath)
}

// openIndex opens the mapping index of the vault. Callers close it.
func openIndex() (*sqlite.Index, error) {
	idx := sqlite.NewIndex()
	if err := idx.Open(vaultPath); err != nil {
		return nil, err
	}
	return idx, nil
}
