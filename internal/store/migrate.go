package store

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/DaanHessen/devlife/internal/util"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// Migrator handles DB schema migrations using golang-migrate.
type Migrator struct {
	dsn     string
	dialect string
}

func NewMigrator(cfg util.Config) (*Migrator, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	switch cfg.Dialect {
	case util.DialectPostgres, util.DialectSQLite:
	default:
		return nil, fmt.Errorf("unsupported dialect %q", cfg.Dialect)
	}
	return &Migrator{dsn: cfg.DSN, dialect: cfg.Dialect}, nil
}

// databaseURL turns the configured DSN into a golang-migrate URL. SQLite
// DSNs are plain file paths for gorm, so they get the sqlite3 scheme here.
func (m *Migrator) databaseURL() string {
	if m.dialect == util.DialectSQLite && !strings.HasPrefix(m.dsn, "sqlite3://") {
		return "sqlite3://" + m.dsn
	}
	return m.dsn
}

// Up applies all pending migrations. ErrNoChange means the schema was current.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Up() })
}

// Down rolls back one migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Steps(-1) })
}

func (m *Migrator) run(ctx context.Context, step func(*migrate.Migrate) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mig, closer, err := m.migrateInstance()
	if err != nil {
		return err
	}
	defer closer()
	if err := step(mig); err != nil {
		if err == migrate.ErrNoChange {
			return ErrNoChange
		}
		return wrap(err, "migrate "+m.dialect)
	}
	return nil
}

func (m *Migrator) migrateInstance() (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationFS, "migrations/"+m.dialect)
	if err != nil {
		return nil, func() {}, wrap(err, "migration source")
	}
	mig, err := migrate.NewWithSourceInstance("iofs", src, m.databaseURL())
	if err != nil {
		return nil, func() {}, wrap(err, "migration instance")
	}
	return mig, func() { mig.Close() }, nil
}
