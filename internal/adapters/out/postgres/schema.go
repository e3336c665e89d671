package postgres

import (
	"context"
	"fmt"
	"strings"

	"cleaning/internal/adapters/out/postgres/identityrepo"
	"cleaning/internal/adapters/out/postgres/jobrepo"
	"cleaning/internal/adapters/out/postgres/propertyrepo"
	"cleaning/internal/adapters/out/postgres/ratingrepo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&identityrepo.UserDTO{},
		&identityrepo.HostDTO{},
		&identityrepo.CleanerDTO{},
		&propertyrepo.PropertyDTO{},
		&jobrepo.JobDTO{},
		&jobrepo.ChecklistItemDTO{},
		&ratingrepo.RatingDTO{},
	}
}

// Migrate creates or alters the schema for all models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Truncate empties every table owned by the models. Intended for test resets.
func Truncate(ctx context.Context, db *gorm.DB) error {
	tables := make([]string, 0, len(Models()))
	for _, m := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return err
		}
		tables = append(tables, pq.QuoteIdentifier(stmt.Schema.Table))
	}

	return db.WithContext(ctx).Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE").Error
}
