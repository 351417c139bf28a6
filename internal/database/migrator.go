package database

import (
	"context"
	"embed"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/flats-api/internal/config"
)

// VersionTable records applied migrations.
const VersionTable = "schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

func LoadMigrations() (fs.FS, error) {
	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "retrieving migrations subtree")
	}
	return subtree, nil
}

// Migrate applies every pending flats migration on a dedicated connection.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, DSN(cfg.Database))
	if err != nil {
		return errors.Wrap(err, "connecting for migrations")
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, VersionTable)
	if err != nil {
		return errors.Wrap(err, "constructing migrator")
	}

	subtree, err := LoadMigrations()
	if err != nil {
		return err
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return errors.Wrap(err, "loading migrations")
	}

	m.OnStart = func(sequence int32, name, direction, _ string) {
		logger.Info().
			Int32("sequence", sequence).
			Str("migration", name).
			Str("direction", direction).
			Msg("applying migration")
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "reading schema version")
	}

	if err := m.Migrate(ctx); err != nil {
		return errors.Wrapf(err, "migrating from version %d", from)
	}

	to := int32(len(m.Migrations))
	event := logger.Info().Int32("version", to)
	if from == to {
		event.Msg("database schema up to date")
	} else {
		event.Int32("from", from).Msg("database schema migrated")
	}
	return nil
}
