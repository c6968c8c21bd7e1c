// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/match-engine/internal/config"
)

// AuthHandler handles the client-credential token exchange. The expected
// client ID and a bcrypt hash of its secret come from the
// MATCH_CLIENT_ID / MATCH_CLIENT_SECRET_HASH environment variables.
type AuthHandler struct {
	clientID         string
	clientSecretHash string
	secretConfig     *config.SecretConfig
	jwtService       *JWTService
	validator        *validator.Validate
}

// tokenRequest is the POST /auth/token request body.
type tokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// tokenResponse is the POST /auth/token response body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService *JWTService, secretConfig *config.SecretConfig) (*AuthHandler, error) {
	clientID := os.Getenv("MATCH_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("MATCH_CLIENT_ID environment variable is required")
	}
	clientSecretHash := os.Getenv("MATCH_CLIENT_SECRET_HASH")
	if clientSecretHash == "" {
		return nil, fmt.Errorf("MATCH_CLIENT_SECRET_HASH environment variable is required")
	}

	return &AuthHandler{
		clientID:         clientID,
		clientSecretHash: clientSecretHash,
		secretConfig:     secretConfig,
		jwtService:       jwtService,
		validator:        validator.New(),
	}, nil
}

// Token handles client-credential token requests.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	// Verify the secret even when the client ID is wrong so both failure
	// modes take comparable time.
	secretOK := h.secretConfig.VerifySecret(req.ClientSecret, h.clientSecretHash)
	if req.ClientID != h.clientID || !secretOK {
		err := &ErrInvalidClientCredentials{}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, err := h.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.jwtService.TokenLifetime().Seconds()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
