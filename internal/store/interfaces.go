// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local mirror of the remote case set.
//
// The mirror is a single table keyed by case id; rows carry the remote
// attribute bag verbatim. [CaseRepository] is the only write path: the sync
// engine commits whole reconciliation cycles through ApplyBatch, and the
// write service mirrors individual remote-confirmed mutations through Put
// and Delete.
package store

import (
	"context"

	"github.com/MKhiriev/case-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/case_repository_mock.go -package=mock

// CaseRepository is the persistence contract for the local case mirror.
type CaseRepository interface {
	// Get returns the mirrored case with the given id, or
	// [ErrCaseNotFound].
	Get(ctx context.Context, id string) (models.Case, error)

	// List returns the full current contents of the mirror.
	List(ctx context.Context) ([]models.Case, error)

	// Put inserts or replaces a single mirrored case.
	Put(ctx context.Context, c models.Case) error

	// Delete removes the row with the given id. Deleting an absent id is
	// not an error.
	Delete(ctx context.Context, id string) error

	// ApplyBatch commits a whole change set as one transaction: either
	// every mutation is applied or none is. Inserts targeting an existing
	// id behave as updates.
	ApplyBatch(ctx context.Context, cs models.ChangeSet) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Backends without transient failure modes may return a
// classifier that always answers [NonRetryable].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
