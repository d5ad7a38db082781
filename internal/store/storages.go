package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/case-mirror/internal/config"
	"github.com/MKhiriev/case-mirror/internal/logger"
)

// Storages aggregates every repository backed by the mirror database.
type Storages struct {
	CaseRepository CaseRepository

	db *DB
}

// NewStorages opens the mirror database selected by cfg (sqlite3 by
// default, pgx for a PostgreSQL-backed mirror), runs pending migrations,
// and wires the case repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("connect mirror database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate mirror database: %w", err)
	}

	return &Storages{
		CaseRepository: NewCaseRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
