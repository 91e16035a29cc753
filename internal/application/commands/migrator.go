package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"vaultmigrate/internal/application"
	"vaultmigrate/internal/domain"
	"vaultmigrate/internal/logging"
	"vaultmigrate/internal/ports"
)

// Migrator runs the per-item pipeline: identify, classify, place,
// check the mapping, then write and record.
type Migrator struct {
	vaultPath string
	mapping   *domain.Mapping
	writer    ports.DocumentWriter
	logger    *zap.Logger
	now       func() time.Time
}

// NewMigrator creates a Migrator writing into vaultPath and recording into mapping
func NewMigrator(vaultPath string, mapping *domain.Mapping, writer ports.DocumentWriter, logger *zap.Logger) *Migrator {
	return &Migrator{
		vaultPath: vaultPath,
		mapping:   mapping,
		writer:    writer,
		logger:    logging.OrNop(logger),
		now:       time.Now,
	}
}

// WithClock overrides the time source used for migrated_at
func (m *Migrator) WithClock(now func() time.Time) *Migrator {
	m.now = now
	return m
}

// Migrate processes a single item. On a collision the item is left alone and
// a *application.CollisionError is returned together with DecisionCollision.
func (m *Migrator) Migrate(item domain.SourceItem) (domain.Decision, error) {
	id := domain.NewStableID(item.Path)
	category := domain.Classify(item.Title, item.Content)
	dest := domain.DestinationPath(category, item.Title)

	decision := m.mapping.Decide(id, item.Path, dest)
	switch decision {
	case domain.DecisionSkip:
		m.logger.Debug("skipping, already migrated",
			zap.String("title", item.Title),
			zap.String("sid", id.String()),
		)
		return decision, nil
	case domain.DecisionCollision:
		existing, _ := m.mapping.Get(id)
		return decision, &application.CollisionError{ID: id, Source: item.Path, Existing: existing.Source}
	}

	migratedAt := m.now().UTC().Format(domain.TimestampLayout)
	doc := domain.Document{
		Title:    item.Title,
		Body:     item.Content,
		Metadata: metadataFor(item, id, category, migratedAt),
	}

	dst := filepath.Join(m.vaultPath, filepath.FromSlash(dest))
	if err := m.writer.Write(dst, doc); err != nil {
		return decision, err
	}

	m.mapping.Upsert(id, domain.MappingEntry{
		Source:      item.Path,
		Dest:        dest,
		Type:        item.Type,
		Title:       item.Title,
		Category:    category,
		OriginalExt: item.Ext,
		MigratedAt:  migratedAt,
	})

	m.logger.Info("migrated",
		zap.String("title", item.Title),
		zap.String("sid", id.String()),
		zap.String("dest", dest),
		zap.Bool("remigrated", decision == domain.DecisionRemigrate),
	)
	return decision, nil
}

// Run walks one source and migrates every item it yields.
// Collisions are counted and logged; write failures abort the walk.
func (m *Migrator) Run(ctx context.Context, walker ports.SourceWalker) (domain.MigrationStats, error) {
	start := time.Now()
	var stats domain.MigrationStats

	err := walker.Walk(ctx, func(item domain.SourceItem) error {
		decision, err := m.Migrate(item)
		var collision *application.CollisionError
		switch {
		case errors.As(err, &collision):
			stats.Collisions++
			m.logger.Error("stable ID collision, item not migrated",
				zap.String("sid", collision.ID.String()),
				zap.String("source", collision.Source),
				zap.String("existing", collision.Existing),
			)
			return nil
		case err != nil:
			return err
		case decision == domain.DecisionSkip:
			stats.Skipped++
		default:
			stats.Migrated++
		}
		return nil
	})

	stats.Unreadable = walker.Unreadable()
	stats.Duration = time.Since(start)
	if err != nil {
		return stats, fmt.Errorf("%s migration failed: %w", walker.Type(), err)
	}
	return stats, nil
}

// metadataFor builds the metadata block in the order it is written
func metadataFor(item domain.SourceItem, id domain.StableID, category domain.Category, migratedAt string) []domain.MetaField {
	fields := []domain.MetaField{
		{Key: domain.MetaSource, Value: item.Type.String()},
		{Key: domain.MetaSID, Value: id.String()},
		{Key: domain.MetaCategory, Value: string(category)},
	}
	if item.Type == domain.SourceBox {
		fields = append(fields, domain.MetaField{Key: domain.MetaOriginalExt, Value: item.Ext})
	}
	return append(fields,
		domain.MetaField{Key: domain.MetaOriginalPath, Value: filepath.ToSlash(item.RelPath)},
		domain.MetaField{Key: domain.MetaMigratedAt, Value: migratedAt},
	)
}
