package db

import (
	"time"

	"github.com/jonathan/match-engine/internal/types"
)

// StoredCandidate is a candidate profile with its storage timestamps.
type StoredCandidate struct {
	types.Candidate
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoredPosition is a position profile with its storage timestamps.
type StoredPosition struct {
	types.Position
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CandidateFilter narrows candidate listings. Zero values mean no filter.
type CandidateFilter struct {
	City     string
	MinYears float64
	Limit    int
}

// PositionFilter narrows position listings. Zero values mean no filter.
type PositionFilter struct {
	Company    string
	City       string
	RemoteOnly bool
	Limit      int
}
