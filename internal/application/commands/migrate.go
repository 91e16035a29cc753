package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vaultmigrate/internal/application"
	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/logging"
	"vaultmigrate/internal/ports"
)

// MigrateResult contains the outcome of a migration run
type MigrateResult struct {
	RunID         string
	Notion        domain.MigrationStats
	Box           domain.MigrationStats
	TotalMappings int
	Index         *domain.IndexStats // nil when no index was synced
	Message       string
}

// Migrated returns the number of documents written across both sources
func (r *MigrateResult) Migrated() int {
	return r.Notion.Migrated + r.Box.Migrated
}

// Collisions returns the number of items refused because of an ID collision
func (r *MigrateResult) Collisions() int {
	return r.Notion.Collisions + r.Box.Collisions
}

// MigrateCommand migrates a Notion export and a Box tree into the vault
type MigrateCommand struct {
	mappings  ports.MappingRepository
	writer    ports.DocumentWriter
	index     ports.MappingIndex
	logger    *zap.Logger
	now       func() time.Time
	Notion    ports.SourceWalker
	Box       ports.SourceWalker
	VaultPath string
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(
	mappings ports.MappingRepository,
	writer ports.DocumentWriter,
	notion, box ports.SourceWalker,
	vaultPath string,
	logger *zap.Logger,
) *MigrateCommand {
	return &MigrateCommand{
		mappings:  mappings,
		writer:    writer,
		logger:    logging.OrNop(logger),
		now:       time.Now,
		Notion:    notion,
		Box:       box,
		VaultPath: vaultPath,
	}
}

// WithIndex syncs the given index from the mapping after a successful run
func (c *MigrateCommand) WithIndex(index ports.MappingIndex) *MigrateCommand {
	c.index = index
	return c
}

// WithClock overrides the time source used for migrated_at
func (c *MigrateCommand) WithClock(now func() time.Time) *MigrateCommand {
	c.now = now
	return c
}

// Validate checks that both source roots exist and a vault path is set
func (c *MigrateCommand) Validate() error {
	if c.Notion == nil || c.Box == nil {
		return &application.ValidationError{
			Field:   "sources",
			Message: "both a Notion export and a Box directory are required",
		}
	}
	if err := application.ValidateSourceDir("notionDir", c.Notion.Root()); err != nil {
		return err
	}
	if err := application.ValidateSourceDir("boxDir", c.Box.Root()); err != nil {
		return err
	}
	return application.ValidateRequired("vaultPath", c.VaultPath)
}

// Execute runs both walkers against one shared mapping and saves it once.
// A mapping that cannot be loaded is replaced by an empty one; a mapping
// that cannot be saved fails the run even though documents were written.
func (c *MigrateCommand) Execute(ctx context.Context) (*MigrateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := c.logger.With(zap.String("run_id", runID))

	vaultPath, err := filepath.Abs(c.VaultPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vault path: %w", err)
	}
	if err := os.MkdirAll(vaultPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create vault: %w", err)
	}

	mapping, err := c.mappings.Load()
	if err != nil {
		logger.Warn("could not load mapping, starting empty", zap.Error(err))
		mapping = domain.NewMapping()
	} else {
		logger.Info("loaded mapping", zap.Int("entries", mapping.Len()))
	}

	migrator := NewMigrator(vaultPath, mapping, c.writer, logger).WithClock(c.now)
	result := &MigrateResult{RunID: runID}

	logger.Info("migrating notion export", zap.String("root", c.Notion.Root()))
	if result.Notion, err = migrator.Run(ctx, c.Notion); err != nil {
		return nil, err
	}

	logger.Info("migrating box files", zap.String("root", c.Box.Root()))
	if result.Box, err = migrator.Run(ctx, c.Box); err != nil {
		return nil, err
	}

	if err := c.mappings.Save(mapping); err != nil {
		return nil, fmt.Errorf("%w %s: %w", application.ErrMappingSave, c.mappings.Location(), err)
	}
	result.TotalMappings = mapping.Len()

	if c.index != nil {
		stats, err := c.index.Sync(mapping)
		if err != nil {
			logger.Warn("could not update mapping index", zap.Error(err))
		} else {
			result.Index = stats
		}
	}

	result.Message = fmt.Sprintf("Migrated %d notion and %d box files (%d mappings total)",
		result.Notion.Migrated, result.Box.Migrated, result.TotalMappings)
	return result, nil
}
