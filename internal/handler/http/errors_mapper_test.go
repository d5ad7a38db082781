package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/case-mirror/internal/adapter"
	"github.com/MKhiriev/case-mirror/internal/service"
	"github.com/MKhiriev/case-mirror/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError_TableTest(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"remote validation", adapter.ErrRemoteValidation, http.StatusBadRequest},
		{"remote not found", adapter.ErrRemoteNotFound, http.StatusNotFound},
		{"remote unauthorized", adapter.ErrRemoteUnauthorized, http.StatusBadGateway},
		{"remote unavailable", adapter.ErrRemoteUnavailable, http.StatusBadGateway},
		{"partial fetch", service.ErrPartialFetch, http.StatusBadGateway},
		{"local persistence", service.ErrLocalPersistence, http.StatusInternalServerError},
		{"case not found", store.ErrCaseNotFound, http.StatusNotFound},
		{"sql failure", store.ErrExecutingStatement, http.StatusInternalServerError},
		{"unknown error", errors.New("something odd"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFromError(tc.err))
		})
	}
}

// Wrapped sentinels must still map to their status: handlers receive errors
// decorated by the service layer, never bare sentinels.
func TestStatusFromError_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("delete case %s remotely: %w", "42", adapter.ErrRemoteNotFound)

	assert.Equal(t, http.StatusNotFound, statusFromError(err))
}
