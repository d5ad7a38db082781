// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/case-mirror/internal/adapter"
	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/internal/store"
	"github.com/MKhiriev/case-mirror/models"
)

type syncEngine struct {
	gateway adapter.RemoteCaseGateway
	mirror  store.CaseRepository
	differ  DiffService
	logger  *logger.Logger
}

// NewSyncEngine constructs a SyncEngine that reconciles the given mirror
// repository against the remote gateway.
func NewSyncEngine(gateway adapter.RemoteCaseGateway, mirror store.CaseRepository, logger *logger.Logger) SyncEngine {
	return &syncEngine{
		gateway: gateway,
		mirror:  mirror,
		differ:  NewDiffService(),
		logger:  logger,
	}
}

// RunCycle implements SyncEngine.
//
// The remote snapshot is fetched page by page before any comparison
// happens. A failure on any page aborts the whole cycle with
// [ErrPartialFetch]: reconciling against an incomplete listing would be
// indistinguishable from mass remote deletion and would wipe the mirror.
func (s *syncEngine) RunCycle(ctx context.Context) (models.ChangeSet, error) {
	log := s.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	remote, err := s.fetchSnapshot(ctx)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: %w", ErrPartialFetch, err)
	}

	local, err := s.mirror.List(ctx)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: list mirror: %w", ErrLocalPersistence, err)
	}

	cs, err := s.differ.BuildChangeSet(ctx, remote, local)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("build change set: %w", err)
	}

	if cs.Empty() {
		log.Debug().
			Int("remote_count", len(remote)).
			Msg("mirror already in sync")
		return cs, nil
	}

	if err = s.mirror.ApplyBatch(ctx, cs); err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: apply change set: %w", ErrLocalPersistence, err)
	}

	log.Info().
		Int("remote_count", len(remote)).
		Int("insert_count", len(cs.Insert)).
		Int("update_count", len(cs.Update)).
		Int("delete_count", len(cs.Delete)).
		Msg("mirror reconciled")

	return cs, nil
}

// fetchSnapshot walks the paginated remote listing until exhaustion and
// returns the concatenated pages.
func (s *syncEngine) fetchSnapshot(ctx context.Context) ([]models.Case, error) {
	var snapshot []models.Case

	offset := 0
	for {
		page, next, err := s.gateway.ListPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("list page at offset %d: %w", offset, err)
		}

		snapshot = append(snapshot, page...)

		if next == adapter.NoNextPage {
			return snapshot, nil
		}
		offset = next
	}
}
