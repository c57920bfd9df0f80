package postgres

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"trivia-quiz/internal/infra/postgres/migrations"
)

// Migrate applies every pending migration and returns the group that ran.
// An empty group means the schema was already current.
func Migrate(ctx context.Context, dsn string) (*migrate.MigrationGroup, error) {
	db := open(dsn)
	defer db.Close()

	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return nil, err
	}
	return migrator.Migrate(ctx)
}

// Rollback undoes the last applied migration group.
func Rollback(ctx context.Context, dsn string) (*migrate.MigrationGroup, error) {
	db := open(dsn)
	defer db.Close()

	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return nil, err
	}
	return migrator.Rollback(ctx)
}

func open(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}
