package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/case-mirror/internal/adapter"
	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/internal/store"
	"github.com/MKhiriev/case-mirror/models"
)

type caseWriteService struct {
	gateway adapter.RemoteCaseGateway
	mirror  store.CaseRepository
	logger  *logger.Logger
}

// NewCaseWriteService constructs a CaseWriteService. All mutations are
// remote-first: the remote service stays the source of truth and the mirror
// is refreshed opportunistically after each successful remote write.
func NewCaseWriteService(gateway adapter.RemoteCaseGateway, mirror store.CaseRepository, logger *logger.Logger) CaseWriteService {
	return &caseWriteService{
		gateway: gateway,
		mirror:  mirror,
		logger:  logger,
	}
}

func (s *caseWriteService) CreateCase(ctx context.Context, attributes json.RawMessage) (models.Case, error) {
	created, err := s.gateway.CreateCase(ctx, attributes)
	if err != nil {
		return models.Case{}, fmt.Errorf("create case remotely: %w", err)
	}

	s.mirrorPut(ctx, created, "create")

	return created, nil
}

func (s *caseWriteService) UpdateCase(ctx context.Context, id string, attributes json.RawMessage) (models.Case, error) {
	updated, err := s.gateway.UpdateCase(ctx, id, attributes)
	if err != nil {
		return models.Case{}, fmt.Errorf("update case %s remotely: %w", id, err)
	}

	s.mirrorPut(ctx, updated, "update")

	return updated, nil
}

// DeleteCase removes the case remotely and then from the mirror. When the
// remote side reports the case as already gone the stale mirror row is
// removed as well, but the not-found error is still returned so that the
// caller learns the id was unknown.
func (s *caseWriteService) DeleteCase(ctx context.Context, id string) error {
	err := s.gateway.DeleteCase(ctx, id)
	if err != nil && !errors.Is(err, adapter.ErrRemoteNotFound) {
		return fmt.Errorf("delete case %s remotely: %w", id, err)
	}

	if localErr := s.mirror.Delete(ctx, id); localErr != nil {
		logger.FromContext(ctx).Err(localErr).
			Str("func", "caseWriteService.DeleteCase").
			Str("case_id", id).
			Msg("failed to delete case from mirror after remote delete; next sync cycle will repair")
	}

	if err != nil {
		return fmt.Errorf("delete case %s remotely: %w", id, err)
	}
	return nil
}

func (s *caseWriteService) GetCase(ctx context.Context, id string) (models.Case, error) {
	c, err := s.mirror.Get(ctx, id)
	if err != nil {
		return models.Case{}, fmt.Errorf("get mirrored case %s: %w", id, err)
	}
	return c, nil
}

func (s *caseWriteService) ListCases(ctx context.Context) ([]models.Case, error) {
	cases, err := s.mirror.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mirrored cases: %w", err)
	}
	return cases, nil
}

// mirrorPut writes the canonical remote case into the mirror. A mirror
// failure after a successful remote write is logged and swallowed: the
// remote operation already happened and the next reconciliation cycle will
// bring the mirror back in line.
func (s *caseWriteService) mirrorPut(ctx context.Context, c models.Case, op string) {
	if err := s.mirror.Put(ctx, c); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "caseWriteService.mirrorPut").
			Str("op", op).
			Str("case_id", c.ID).
			Msg("failed to mirror case after remote write; next sync cycle will repair")
	}
}
