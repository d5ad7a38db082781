// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors describing the failure kinds of the remote case service.
// Callers match against them with [errors.Is]; the concrete transport detail
// (status code, response body) is carried in the wrapping error message.
var (
	// ErrRemoteUnavailable is a transient network or transport failure:
	// the remote service could not be reached or answered with a server
	// fault. Safe to retry on the next sync cycle.
	ErrRemoteUnavailable = errors.New("remote case service unavailable")

	// ErrRemoteValidation means the remote service rejected the payload.
	// Retrying the same payload will fail again.
	ErrRemoteValidation = errors.New("remote rejected case payload")

	// ErrRemoteNotFound means the addressed case does not exist remotely.
	ErrRemoteNotFound = errors.New("case not found on remote")

	// ErrRemoteUnauthorized means the configured apikey credential was
	// rejected by the remote service.
	ErrRemoteUnauthorized = errors.New("remote rejected credentials")
)
