// Package scoring implements the per-criterion compatibility calculators
// and the adaptive weight vectors used to combine them.
package scoring

import "github.com/jonathan/match-engine/internal/types"

// TravelTimeProvider supplies commute minutes between two locations.
// Implementations must be safe for concurrent use and should be backed by
// precomputed data; the calculators call this synchronously on the hot
// path.
type TravelTimeProvider interface {
	GetTravelMinutes(origin, destination types.Location) (minutes int, ok bool)
}

// TravelTimeFunc adapts a plain function to the TravelTimeProvider
// interface.
type TravelTimeFunc func(origin, destination types.Location) (int, bool)

// GetTravelMinutes calls the wrapped function.
func (f TravelTimeFunc) GetTravelMinutes(origin, destination types.Location) (int, bool) {
	return f(origin, destination)
}
