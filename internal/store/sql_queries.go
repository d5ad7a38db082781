package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/case-mirror/models"
)

const casesTable = "cases"

// upsertConflictClause makes inserts behave as updates when the id already
// exists. Understood by both sqlite and postgres.
const upsertConflictClause = "ON CONFLICT (id) DO UPDATE SET attributes = excluded.attributes, synced_at = excluded.synced_at"

func (p *caseRepository) buildUpsertQuery(c models.Case, syncedAt time.Time) (string, []any, error) {
	return p.builder.
		Insert(casesTable).
		Columns("id", "attributes", "synced_at").
		Values(c.ID, string(c.Attributes), syncedAt).
		Suffix(upsertConflictClause).
		ToSql()
}

func (p *caseRepository) buildGetQuery(id string) (string, []any, error) {
	return p.builder.
		Select("id", "attributes").
		From(casesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (p *caseRepository) buildListQuery() (string, []any, error) {
	return p.builder.
		Select("id", "attributes").
		From(casesTable).
		OrderBy("id").
		ToSql()
}

func (p *caseRepository) buildDeleteQuery(ids []string) (string, []any, error) {
	return p.builder.
		Delete(casesTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
}
