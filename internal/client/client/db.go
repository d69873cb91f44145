package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/osadchiy/chatfiles/internal/client/migrations"
	"github.com/osadchiy/chatfiles/internal/client/repositories/history"
	"github.com/pressly/goose/v3"
)

// Repositories groups the local-storage repositories backed by one database.
type Repositories struct {
	History history.Repository
	DB      *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the local sqlite database at dsn, applies
// pending migrations, and returns the repositories bound to it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		History: history.NewSQLiteRepository(db),
		DB:      db,
	}, nil
}
