// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/case-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────────────────────────────────────

// cse is a shorthand Case constructor used only in tests.
func cse(id, attrs string) models.Case {
	return models.Case{ID: id, Attributes: json.RawMessage(attrs)}
}

// ─────────────────────────────────────────────────────────────────────────────
// BuildChangeSet — decision matrix (table-driven)
// ─────────────────────────────────────────────────────────────────────────────

// TestDiffService_BuildChangeSet_DecisionMatrix covers every classification
// outcome for a single case. Each sub-test is named after the condition it
// exercises so failures are immediately self-documenting.
func TestDiffService_BuildChangeSet_DecisionMatrix(t *testing.T) {
	const id = "case-1"

	tests := []struct {
		name   string
		remote []models.Case
		local  []models.Case
		want   models.ChangeSet
	}{
		{
			name:   "RemoteOnly → Insert",
			remote: []models.Case{cse(id, `{"id": 1}`)},
			local:  nil,
			want:   models.ChangeSet{Insert: []models.Case{cse(id, `{"id": 1}`)}},
		},
		{
			name:   "LocalOnly → Delete",
			remote: nil,
			local:  []models.Case{cse(id, `{"id": 1}`)},
			want:   models.ChangeSet{Delete: []string{id}},
		},
		{
			name:   "BothSides/SameContent → NoAction",
			remote: []models.Case{cse(id, `{"id": 1, "status": "open"}`)},
			local:  []models.Case{cse(id, `{"id": 1, "status": "open"}`)},
			want:   models.ChangeSet{},
		},
		{
			// Key order differs but content is equal; the mirror must not be
			// rewritten just because the remote serialiser reordered fields.
			name:   "BothSides/ReorderedKeys → NoAction",
			remote: []models.Case{cse(id, `{"status": "open", "id": 1}`)},
			local:  []models.Case{cse(id, `{"id": 1, "status": "open"}`)},
			want:   models.ChangeSet{},
		},
		{
			name:   "BothSides/DifferentContent → Update",
			remote: []models.Case{cse(id, `{"id": 1, "status": "closed"}`)},
			local:  []models.Case{cse(id, `{"id": 1, "status": "open"}`)},
			want:   models.ChangeSet{Update: []models.Case{cse(id, `{"id": 1, "status": "closed"}`)}},
		},
		{
			// The remote listing repeated the id; the last occurrence wins.
			name: "DuplicateRemoteID → LastOccurrenceWins",
			remote: []models.Case{
				cse(id, `{"id": 1, "status": "open"}`),
				cse(id, `{"id": 1, "status": "closed"}`),
			},
			local: nil,
			want:  models.ChangeSet{Insert: []models.Case{cse(id, `{"id": 1, "status": "closed"}`)}},
		},
	}

	svc := NewDiffService()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.BuildChangeSet(context.Background(), tc.remote, tc.local)

			require.NoError(t, err)
			assert.Equal(t, tc.want.Insert, got.Insert, "Insert mismatch")
			assert.Equal(t, tc.want.Update, got.Update, "Update mismatch")
			assert.Equal(t, tc.want.Delete, got.Delete, "Delete mismatch")
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// BuildChangeSet — edge cases
// ─────────────────────────────────────────────────────────────────────────────

func TestDiffService_BuildChangeSet_BothEmpty(t *testing.T) {
	svc := NewDiffService()

	got, err := svc.BuildChangeSet(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestDiffService_BuildChangeSet_ContextCancelled(t *testing.T) {
	// A large enough slice ensures the cancellation check fires before
	// the loop finishes naturally.
	const n = 1000
	remote := make([]models.Case, n)
	for i := range remote {
		remote[i] = cse("id", `{}`)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	svc := NewDiffService()
	_, err := svc.BuildChangeSet(ctx, remote, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ─────────────────────────────────────────────────────────────────────────────
// BuildChangeSet — realistic mixed scenario
// ─────────────────────────────────────────────────────────────────────────────

// TestDiffService_BuildChangeSet_MixedScenario simulates one reconciliation
// cycle in which different cases each fall into a different action category.
//
//	"case-1"  remote + local, same content       → NoAction (in sync)
//	"case-2"  remote + local, remote changed     → Update
//	"case-3"  remote only                        → Insert
//	"case-4"  local only                         → Delete
func TestDiffService_BuildChangeSet_MixedScenario(t *testing.T) {
	remote := []models.Case{
		cse("case-1", `{"id": 1, "status": "open"}`),
		cse("case-2", `{"id": 2, "status": "closed"}`),
		cse("case-3", `{"id": 3, "status": "open"}`),
	}
	local := []models.Case{
		cse("case-1", `{"id": 1, "status": "open"}`),
		cse("case-2", `{"id": 2, "status": "open"}`),
		cse("case-4", `{"id": 4, "status": "open"}`),
	}

	svc := NewDiffService()
	got, err := svc.BuildChangeSet(context.Background(), remote, local)

	require.NoError(t, err)
	assert.Equal(t, []models.Case{cse("case-3", `{"id": 3, "status": "open"}`)}, got.Insert)
	assert.Equal(t, []models.Case{cse("case-2", `{"id": 2, "status": "closed"}`)}, got.Update)
	assert.Equal(t, []string{"case-4"}, got.Delete)
}
