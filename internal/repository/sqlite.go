package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/akaraszi/billscan/gen/ent"
)

// OpenInMemory opens an in-memory SQLite database and runs the schema
// migration. Useful for local batch runs that don't need Postgres.
func OpenInMemory(ctx context.Context, logger *slog.Logger) (*ent.Client, error) {
	db, err := sql.Open("sqlite", "file:billscan?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open in-memory database", "error", err)
		return nil, err
	}
	// cache=shared needs a single connection to keep the memory DB alive.
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		_ = client.Close()
		return nil, err
	}

	logger.Info("in-memory database ready")
	return client, nil
}
