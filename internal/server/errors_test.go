package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/match-engine/internal/ensemble"
	"github.com/jonathan/match-engine/internal/schemas"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid client credentials",
			err:  &ErrInvalidClientCredentials{},
			want: http.StatusUnauthorized,
		},
		{
			name: "profile not found",
			err:  &ErrProfileNotFound{Kind: "candidate", ID: "c1"},
			want: http.StatusNotFound,
		},
		{
			name: "validation failure",
			err:  &ErrValidation{Field: "weights", Message: "unknown criterion"},
			want: http.StatusBadRequest,
		},
		{
			name: "store unavailable",
			err:  &ErrStoreUnavailable{},
			want: http.StatusServiceUnavailable,
		},
		{
			name: "unknown strategy",
			err:  &ensemble.UnknownStrategyError{Name: "astrology"},
			want: http.StatusBadRequest,
		},
		{
			name: "all strategies failed",
			err:  &ensemble.AllStrategiesFailedError{},
			want: http.StatusBadGateway,
		},
		{
			name: "schema violation",
			err:  &schemas.ValidationError{},
			want: http.StatusBadRequest,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrProfileNotFound{Kind: "position", ID: "p9"}).Error(), "position not found: p9")
	assert.Contains(t, (&ErrValidation{Field: "candidate", Message: "bad json"}).Error(), "candidate")
	assert.Contains(t, (&ErrStoreUnavailable{}).Error(), "DATABASE_URL")
}
