package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/models"
)

// caseRepository is the SQL-backed implementation of [CaseRepository]. It
// executes all mirror operations against the "cases" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (case id, batch sizes, etc.).
type caseRepository struct {
	*DB
	logger *logger.Logger
}

// NewCaseRepository constructs a [CaseRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	return &caseRepository{
		DB:     db,
		logger: logger,
	}
}

// Get retrieves one mirrored case by id.
// Returns [ErrCaseNotFound] when no row matches.
func (p *caseRepository) Get(ctx context.Context, id string) (models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildGetQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.Get").
			Str("case_id", id).
			Msg("failed to build query")
		return models.Case{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Case
	var attributes string
	scanErr := p.DB.QueryRowContext(ctx, query, args...).Scan(&c.ID, &attributes)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Case{}, ErrCaseNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "caseRepository.Get").
			Str("case_id", id).
			Msg("failed to scan case row")
		return models.Case{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	c.Attributes = json.RawMessage(attributes)
	return c, nil
}

// List retrieves the full current contents of the mirror, ordered by id.
// Returns an empty slice when the mirror is empty.
func (p *caseRepository) List(ctx context.Context) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildListQuery()
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.List").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.List").
			Msg("failed to execute query for listing mirrored cases")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Case, 0, 50)

	for rows.Next() {
		var c models.Case
		var attributes string

		if scanErr := rows.Scan(&c.ID, &attributes); scanErr != nil {
			log.Err(scanErr).
				Str("func", "caseRepository.List").
				Msg("failed to scan case row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		c.Attributes = json.RawMessage(attributes)
		results = append(results, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "caseRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Put inserts or replaces one mirrored case.
func (p *caseRepository) Put(ctx context.Context, c models.Case) error {
	log := logger.FromContext(ctx)

	query, args, err := p.buildUpsertQuery(c, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.Put").
			Str("case_id", c.ID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "caseRepository.Put").
			Str("case_id", c.ID).
			Str("pg_code", postgresError(err)).
			Msg("failed to upsert case")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes one mirrored case by id. Absent ids are a no-op.
func (p *caseRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := p.buildDeleteQuery([]string{id})
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.Delete").
			Str("case_id", id).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "caseRepository.Delete").
			Str("case_id", id).
			Str("pg_code", postgresError(err)).
			Msg("failed to delete case")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ApplyBatch commits the whole change set inside a single transaction.
// The mirror is left untouched when any statement fails: a reconciliation
// cycle is never half-applied.
func (p *caseRepository) ApplyBatch(ctx context.Context, cs models.ChangeSet) error {
	log := logger.FromContext(ctx)

	if cs.Empty() {
		return nil
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.ApplyBatch").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	syncedAt := time.Now().UTC()

	for _, c := range cs.Insert {
		if err = p.upsertInTx(ctx, tx, c, syncedAt); err != nil {
			log.Err(err).
				Str("func", "caseRepository.ApplyBatch").
				Str("case_id", c.ID).
				Msg("failed to insert case in batch")
			return err
		}
	}

	for _, c := range cs.Update {
		if err = p.upsertInTx(ctx, tx, c, syncedAt); err != nil {
			log.Err(err).
				Str("func", "caseRepository.ApplyBatch").
				Str("case_id", c.ID).
				Msg("failed to update case in batch")
			return err
		}
	}

	if len(cs.Delete) > 0 {
		query, args, buildErr := p.buildDeleteQuery(cs.Delete)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "caseRepository.ApplyBatch").
				Msg("failed to build delete query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "caseRepository.ApplyBatch").
				Int("delete_count", len(cs.Delete)).
				Str("pg_code", postgresError(err)).
				Msg("failed to delete cases in batch")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "caseRepository.ApplyBatch").
			Int("insert_count", len(cs.Insert)).
			Int("update_count", len(cs.Update)).
			Int("delete_count", len(cs.Delete)).
			Msg("failed to commit batch")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (p *caseRepository) upsertInTx(ctx context.Context, tx *sql.Tx, c models.Case, syncedAt time.Time) error {
	query, args, err := p.buildUpsertQuery(c, syncedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
