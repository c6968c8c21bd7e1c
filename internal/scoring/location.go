package scoring

import "github.com/jonathan/match-engine/internal/types"

// Neutral score when location data is missing on either side or no travel
// estimate is available.
const neutralLocationScore = 0.5

const sameRegionScore = 0.85

// travelBreakpoints degrade the score by one-way commute minutes. Entries
// are checked in order; commutes beyond the last entry score
// beyondTravelScore.
var travelBreakpoints = []struct {
	maxMinutes int
	score      float64
}{
	{30, 1.0},
	{45, 0.9},
	{60, 0.8},
	{90, 0.6},
	{120, 0.4},
}

const beyondTravelScore = 0.2

// LocationScore rates geographic fit. A remote position fits any candidate,
// including one with no recorded location. On-site fit runs from exact city
// match through same-region down to a commute-time breakpoint table backed
// by the injected provider; missing data on either side is neutral.
func LocationScore(candidate types.Location, position types.Position, travel TravelTimeProvider) float64 {
	if position.OffersRemote || position.EffectiveWorkMode() == types.WorkModeRemote {
		return 1.0
	}
	if candidate.SameCity(position.Location) {
		return 1.0
	}
	if candidate.IsZero() || position.Location.IsZero() {
		return neutralLocationScore
	}
	if candidate.SameRegion(position.Location) {
		return sameRegionScore
	}
	if travel != nil {
		if minutes, ok := travel.GetTravelMinutes(candidate, position.Location); ok {
			return travelScore(minutes)
		}
	}
	return neutralLocationScore
}

func travelScore(minutes int) float64 {
	for _, bp := range travelBreakpoints {
		if minutes <= bp.maxMinutes {
			return bp.score
		}
	}
	return beyondTravelScore
}
