package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/models"
)

func (h *Handler) createCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	attributes, ok := h.readAttributes(w, r)
	if !ok {
		return
	}

	created, err := h.services.CaseWriteService.CreateCase(r.Context(), attributes)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCase").Msg("error creating case")
		writeError(w, err)
		return
	}

	writeCase(w, http.StatusCreated, created)
}

func (h *Handler) updateCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	caseID := chi.URLParam(r, "caseID")

	attributes, ok := h.readAttributes(w, r)
	if !ok {
		return
	}

	updated, err := h.services.CaseWriteService.UpdateCase(r.Context(), caseID, attributes)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateCase").Str("case_id", caseID).Msg("error updating case")
		writeError(w, err)
		return
	}

	writeCase(w, http.StatusOK, updated)
}

func (h *Handler) deleteCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	caseID := chi.URLParam(r, "caseID")

	if err := h.services.CaseWriteService.DeleteCase(r.Context(), caseID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCase").Str("case_id", caseID).Msg("error deleting case")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	caseID := chi.URLParam(r, "caseID")

	c, err := h.services.CaseWriteService.GetCase(r.Context(), caseID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCase").Str("case_id", caseID).Msg("error reading mirrored case")
		writeError(w, err)
		return
	}

	writeCase(w, http.StatusOK, c)
}

func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cases, err := h.services.CaseWriteService.ListCases(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCases").Msg("error listing mirrored cases")
		writeError(w, err)
		return
	}

	objects := make([]json.RawMessage, 0, len(cases))
	for _, c := range cases {
		objects = append(objects, c.Attributes)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(objects); err != nil {
		log.Err(err).Str("func", "*Handler.listCases").Msg("error encoding case listing")
	}
}

// readAttributes reads the request body and ensures it is a syntactically
// valid JSON document. Deeper validation belongs to the remote service,
// which owns the case schema.
func (h *Handler) readAttributes(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.readAttributes").Msg("failed to read request body")
		writeErrorStatus(w, http.StatusBadRequest, "failed to read request body")
		return nil, false
	}

	if len(body) == 0 || !json.Valid(body) {
		log.Warn().Str("func", "*Handler.readAttributes").Msg("invalid JSON was passed")
		writeErrorStatus(w, http.StatusBadRequest, "invalid JSON was passed")
		return nil, false
	}

	return body, true
}

func writeCase(w http.ResponseWriter, status int, c models.Case) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(c.Attributes)
}
