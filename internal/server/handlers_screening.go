package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/crew-screening/internal/types"
)

// handleScreenApplication runs the screening pipeline for one application
// and returns the persisted fit score.
func (s *Server) handleScreenApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid application ID")
		return
	}

	score, err := s.screener.ScreenApplication(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// handleScreenBatch screens a list of applications, isolating per-item
// failures, and returns ordered per-item outcomes plus aggregate counts.
func (s *Server) handleScreenBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.ApplicationIDs))
	for _, raw := range req.ApplicationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid application ID: "+raw)
			return
		}
		ids = append(ids, id)
	}

	result := s.screener.ScreenBatch(r.Context(), ids)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetScore returns the persisted fit score for an application, or 404
// if the application is unknown and 204 if it has not been screened yet.
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid application ID")
		return
	}

	score, err := s.db.GetFitScore(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if score == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}
