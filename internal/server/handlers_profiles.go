package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/match-engine/internal/db"
	"github.com/jonathan/match-engine/internal/types"
)

// requireStore answers 503 when the profile store is not configured.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.db == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}

// parseQueryInt parses an integer query parameter with default and max values.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// parseQueryFloat parses a float query parameter with a default value.
func parseQueryFloat(r *http.Request, key string, defaultValue float64) float64 {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil || val < 0 {
		return defaultValue
	}
	return val
}

// handleUpsertCandidate stores or replaces a candidate profile.
func (s *Server) handleUpsertCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	candidate, err := s.decodeCandidate(raw)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.UpsertCandidate(r.Context(), candidate); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": candidate.ID})
}

// handleGetCandidate retrieves a stored candidate by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Candidate ID is required")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		notFound := &ErrProfileNotFound{Kind: "candidate", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleListCandidates lists stored candidates with optional filters.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	filter := db.CandidateFilter{
		City:     r.URL.Query().Get("city"),
		MinYears: parseQueryFloat(r, "min_years", 0),
		Limit:    parseQueryInt(r, "limit", 50, 200),
	}

	candidates, err := s.db.ListCandidates(r.Context(), filter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// handleDeleteCandidate removes a stored candidate.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Candidate ID is required")
		return
	}

	deleted, err := s.db.DeleteCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		notFound := &ErrProfileNotFound{Kind: "candidate", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleUpsertPosition stores or replaces a position profile.
func (s *Server) handleUpsertPosition(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	position, err := s.decodePosition(raw)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.UpsertPosition(r.Context(), position); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": position.ID})
}

// handleGetPosition retrieves a stored position by ID.
func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Position ID is required")
		return
	}

	position, err := s.db.GetPosition(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if position == nil {
		notFound := &ErrProfileNotFound{Kind: "position", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, position)
}

// handleListPositions lists stored positions with optional filters.
func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	filter := db.PositionFilter{
		Company:    r.URL.Query().Get("company"),
		City:       r.URL.Query().Get("city"),
		RemoteOnly: r.URL.Query().Get("remote") == "true",
		Limit:      parseQueryInt(r, "limit", 50, 200),
	}

	positions, err := s.db.ListPositions(r.Context(), filter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"positions": positions,
		"count":     len(positions),
	})
}

// handleDeletePosition removes a stored position.
func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Position ID is required")
		return
	}

	deleted, err := s.db.DeletePosition(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		notFound := &ErrProfileNotFound{Kind: "position", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// positionMatchesRequest is the POST /v1/positions/{id}/matches request body.
// Candidate filters narrow the stored pool before scoring.
type positionMatchesRequest struct {
	Limit    int     `json:"limit,omitempty"`
	MinScore float64 `json:"min_score,omitempty"`
	City     string  `json:"city,omitempty"`
	MinYears float64 `json:"min_years,omitempty"`
}

// handlePositionMatches scores a stored position against stored candidates.
// Results are computed and returned, never persisted.
func (s *Server) handlePositionMatches(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Position ID is required")
		return
	}

	var req positionMatchesRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	stored, err := s.db.GetPosition(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if stored == nil {
		notFound := &ErrProfileNotFound{Kind: "position", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	candidates, err := s.db.ListCandidates(r.Context(), db.CandidateFilter{
		City:     req.City,
		MinYears: req.MinYears,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	pool := make([]types.Candidate, 0, len(candidates))
	for _, c := range candidates {
		pool = append(pool, c.Candidate)
	}

	results, err := s.service.FindBestCandidates(r.Context(), stored.Position, pool, req.Limit, req.MinScore)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"position_id": id,
		"results":     results,
		"count":       len(results),
	})
}
