package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/case-mirror/internal/adapter"
	"github.com/MKhiriev/case-mirror/internal/service"
	"github.com/MKhiriev/case-mirror/internal/store"
	"github.com/MKhiriev/case-mirror/models"
)

var errorStatusMap = map[error]int{
	adapter.ErrRemoteValidation:   http.StatusBadRequest,
	adapter.ErrRemoteNotFound:     http.StatusNotFound,
	adapter.ErrRemoteUnauthorized: http.StatusBadGateway,
	adapter.ErrRemoteUnavailable:  http.StatusBadGateway,

	service.ErrPartialFetch:     http.StatusBadGateway,
	service.ErrLocalPersistence: http.StatusInternalServerError,

	store.ErrCaseNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the structured error
// body shared with the remote case service.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	writeErrorStatus(w, status, err.Error())
}

func writeErrorStatus(w http.ResponseWriter, status int, detail string) {
	body := models.ErrorResponse{
		Title:         http.StatusText(status),
		StatusCode:    status,
		Detail:        detail,
		ErrorMessages: []models.ErrorMessageItem{{Message: detail}},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
