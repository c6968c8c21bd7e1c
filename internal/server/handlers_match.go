package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/match-engine/internal/schemas"
	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/types"
)

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeCandidate validates a raw candidate document against the JSON schema
// before decoding it into the domain type.
func (s *Server) decodeCandidate(raw json.RawMessage) (types.Candidate, error) {
	var candidate types.Candidate
	if err := schemas.ValidateBytes(s.candidateSchema, raw); err != nil {
		return candidate, err
	}
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return candidate, &ErrValidation{Field: "candidate", Message: err.Error()}
	}
	return candidate, nil
}

// decodePosition validates a raw position document against the JSON schema
// before decoding it into the domain type.
func (s *Server) decodePosition(raw json.RawMessage) (types.Position, error) {
	var position types.Position
	if err := schemas.ValidateBytes(s.positionSchema, raw); err != nil {
		return position, err
	}
	if err := json.Unmarshal(raw, &position); err != nil {
		return position, &ErrValidation{Field: "position", Message: err.Error()}
	}
	return position, nil
}

// resolveOverride turns a request's weights map into an override vector.
// A nil or empty map means no override.
func resolveOverride(weights map[string]float64) (*scoring.Weights, error) {
	if len(weights) == 0 {
		return nil, nil
	}
	w, err := scoring.WeightsFromMap(weights)
	if err != nil {
		return nil, &ErrValidation{Field: "weights", Message: err.Error()}
	}
	return &w, nil
}

// matchRequest is the POST /v1/match request body.
type matchRequest struct {
	Candidate json.RawMessage    `json:"candidate" validate:"required"`
	Position  json.RawMessage    `json:"position" validate:"required"`
	Weights   map[string]float64 `json:"weights,omitempty"`
}

// handleMatch scores a single candidate/position pair.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidate, err := s.decodeCandidate(req.Candidate)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	position, err := s.decodePosition(req.Position)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	override, err := resolveOverride(req.Weights)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.service.CalculateCompatibility(r.Context(), candidate, position, override)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// batchRequest is the POST /v1/match/batch request body.
type batchRequest struct {
	Candidates []json.RawMessage `json:"candidates" validate:"required,min=1"`
	Positions  []json.RawMessage `json:"positions" validate:"required,min=1"`
}

// handleMatchBatch scores the full cross product of candidates and positions.
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidates := make([]types.Candidate, 0, len(req.Candidates))
	for _, raw := range req.Candidates {
		candidate, err := s.decodeCandidate(raw)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		candidates = append(candidates, candidate)
	}
	positions := make([]types.Position, 0, len(req.Positions))
	for _, raw := range req.Positions {
		position, err := s.decodePosition(raw)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		positions = append(positions, position)
	}

	results, err := s.service.BatchCalculateCompatibility(r.Context(), candidates, positions)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// bestPositionsRequest is the POST /v1/match/best-positions request body.
type bestPositionsRequest struct {
	Candidate json.RawMessage   `json:"candidate" validate:"required"`
	Positions []json.RawMessage `json:"positions" validate:"required,min=1"`
	Limit     int               `json:"limit,omitempty"`
	MinScore  float64           `json:"min_score,omitempty"`
}

// handleBestPositions ranks positions for one candidate.
func (s *Server) handleBestPositions(w http.ResponseWriter, r *http.Request) {
	var req bestPositionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidate, err := s.decodeCandidate(req.Candidate)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	positions := make([]types.Position, 0, len(req.Positions))
	for _, raw := range req.Positions {
		position, err := s.decodePosition(raw)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		positions = append(positions, position)
	}

	results, err := s.service.FindBestMatches(r.Context(), candidate, positions, req.Limit, req.MinScore)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// bestCandidatesRequest is the POST /v1/match/best-candidates request body.
type bestCandidatesRequest struct {
	Position   json.RawMessage   `json:"position" validate:"required"`
	Candidates []json.RawMessage `json:"candidates" validate:"required,min=1"`
	Limit      int               `json:"limit,omitempty"`
	MinScore   float64           `json:"min_score,omitempty"`
}

// handleBestCandidates ranks candidates for one position.
func (s *Server) handleBestCandidates(w http.ResponseWriter, r *http.Request) {
	var req bestCandidatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	position, err := s.decodePosition(req.Position)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	candidates := make([]types.Candidate, 0, len(req.Candidates))
	for _, raw := range req.Candidates {
		candidate, err := s.decodeCandidate(raw)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		candidates = append(candidates, candidate)
	}

	results, err := s.service.FindBestCandidates(r.Context(), position, candidates, req.Limit, req.MinScore)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// hybridRequest is the POST /v1/match/hybrid request body. An empty strategy
// list runs every registered strategy.
type hybridRequest struct {
	Candidate  json.RawMessage `json:"candidate" validate:"required"`
	Position   json.RawMessage `json:"position" validate:"required"`
	Strategies []string        `json:"strategies,omitempty"`
}

// handleHybrid runs an ensemble of strategies and returns the consensus result.
func (s *Server) handleHybrid(w http.ResponseWriter, r *http.Request) {
	var req hybridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidate, err := s.decodeCandidate(req.Candidate)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	position, err := s.decodePosition(req.Position)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.manager.ExecuteHybrid(r.Context(), req.Strategies, candidate, position)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleListStrategies lists the registered strategy names.
func (s *Server) handleListStrategies(w http.ResponseWriter, _ *http.Request) {
	names := s.manager.Strategies()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"strategies": names,
		"count":      len(names),
	})
}

// handleStrategyStats returns per-strategy usage counters.
func (s *Server) handleStrategyStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.manager.GetUsageStats())
}

// handleHealth reports server health: strategy smoke tests plus, when a
// profile store is configured, a database ping.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	strategies := s.manager.HealthCheck(r.Context())

	status := "ok"
	for _, health := range strategies {
		if !health.Healthy {
			status = "degraded"
			break
		}
	}

	response := map[string]any{
		"status":     status,
		"strategies": strategies,
	}

	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			response["database"] = "unreachable"
			response["status"] = "degraded"
		} else {
			response["database"] = "ok"
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}
