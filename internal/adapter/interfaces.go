// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote case service, which is the single source of truth for all
// mirrored cases.
//
// The primary abstraction is [RemoteCaseGateway], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPCaseGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapRemoteError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRemoteNotFound] for 404, [ErrRemoteValidation]
// for 400).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/case-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_gateway_mock.go -package=mock

// NoNextPage is returned as the next offset by [RemoteCaseGateway.ListPage]
// when the listing is exhausted.
const NoNextPage = -1

// RemoteCaseGateway defines transport-agnostic communication with the remote
// case service. Implementations are responsible for serialisation,
// credential header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// All operations are fallible and latency-bearing; callers must treat every
// returned case as the canonical remote representation.
type RemoteCaseGateway interface {
	// ListPage fetches one page of the complete remote case listing
	// starting at offset. It returns the page's cases and the offset of the
	// next page, or [NoNextPage] when no further page exists.
	ListPage(ctx context.Context, offset int) ([]models.Case, int, error)

	// CreateCase creates a case remotely and returns the canonical case,
	// including the remote-assigned id.
	CreateCase(ctx context.Context, attributes json.RawMessage) (models.Case, error)

	// UpdateCase replaces the attributes of an existing remote case and
	// returns the canonical updated case.
	UpdateCase(ctx context.Context, id string, attributes json.RawMessage) (models.Case, error)

	// DeleteCase removes a case remotely.
	DeleteCase(ctx context.Context, id string) error
}
