// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/case-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DiffService computes the change set that transforms a local mirror
// snapshot into the remote snapshot. It is purely in-memory and produces no
// side effects.
type DiffService interface {
	BuildChangeSet(ctx context.Context, remote, local []models.Case) (models.ChangeSet, error)
}

// SyncEngine reconciles the local mirror with the remote case service.
type SyncEngine interface {
	// RunCycle performs one full reconciliation cycle: fetch the complete
	// remote snapshot, diff it against the mirror, and commit the resulting
	// change set atomically. It returns the applied change set.
	//
	// When the snapshot cannot be completely retrieved the cycle aborts
	// with [ErrPartialFetch] and the mirror is left untouched. When the
	// change set cannot be committed the cycle fails with
	// [ErrLocalPersistence].
	RunCycle(ctx context.Context) (models.ChangeSet, error)
}

// CaseWriteService handles user-initiated case mutations. Writes go to the
// remote service first; the local mirror is updated opportunistically after
// the remote operation succeeds, so the next reconciliation cycle repairs
// any mirror write that failed.
type CaseWriteService interface {
	CreateCase(ctx context.Context, attributes json.RawMessage) (models.Case, error)
	UpdateCase(ctx context.Context, id string, attributes json.RawMessage) (models.Case, error)
	DeleteCase(ctx context.Context, id string) error

	// GetCase and ListCases read from the local mirror only.
	GetCase(ctx context.Context, id string) (models.Case, error)
	ListCases(ctx context.Context) ([]models.Case, error)
}
