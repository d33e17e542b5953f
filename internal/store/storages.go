package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/series-catalog/internal/config"
	"github.com/MKhiriev/series-catalog/internal/logger"
)

// Storages groups all catalog repositories into a single value that can be
// passed to the service layer. It owns the underlying connection pool.
type Storages struct {
	UserRepository   UserRepository
	GenreRepository  GenreRepository
	SeriesRepository SeriesRepository
	SeasonRepository SeasonRepository

	db *DB
}

// NewStorages initialises the storage layer. It performs the following steps:
//  1. Opens a connection for cfg.Driver (PostgreSQL or SQLite).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs every repository on top of the shared connection.
//
// Returns an error if the driver is unknown, the database cannot be reached,
// or migration fails.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, logger)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		GenreRepository:  NewGenreRepository(db, logger),
		SeriesRepository: NewSeriesRepository(db, logger),
		SeasonRepository: NewSeasonRepository(db, logger),
		db:               db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
