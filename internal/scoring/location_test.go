package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/match-engine/internal/types"
)

func TestLocationScore_RemotePositionFitsAnyLocation(t *testing.T) {
	remote := types.Position{ID: "p1", OffersRemote: true, Location: types.Location{City: "Berlin"}}

	assert.Equal(t, 1.0, LocationScore(types.Location{City: "Lisbon"}, remote, nil))
	assert.Equal(t, 1.0, LocationScore(types.Location{}, remote, nil))
}

func TestLocationScore_RemoteWorkModeCountsAsRemote(t *testing.T) {
	p := types.Position{ID: "p1", Requirements: types.JobRequirements{WorkMode: types.WorkModeRemote}}
	assert.Equal(t, 1.0, LocationScore(types.Location{City: "Oslo"}, p, nil))
}

func TestLocationScore_ExactCityMatch(t *testing.T) {
	p := types.Position{ID: "p1", Location: types.Location{City: "Lyon", Country: "France"}}
	assert.Equal(t, 1.0, LocationScore(types.Location{City: "lyon"}, p, nil))
}

func TestLocationScore_MissingDataIsNeutral(t *testing.T) {
	onsite := types.Position{ID: "p1", Location: types.Location{City: "Paris"}}

	assert.Equal(t, neutralLocationScore, LocationScore(types.Location{}, onsite, nil))
	assert.Equal(t, neutralLocationScore, LocationScore(types.Location{City: "Paris2"}, types.Position{ID: "p2"}, nil))
}

func TestLocationScore_SameRegion(t *testing.T) {
	p := types.Position{ID: "p1", Location: types.Location{City: "Grenoble", Region: "Auvergne-Rhone-Alpes", Country: "France"}}
	candidate := types.Location{City: "Lyon", Region: "Auvergne-Rhone-Alpes", Country: "France"}

	assert.Equal(t, sameRegionScore, LocationScore(candidate, p, nil))
}

func TestLocationScore_TravelBreakpoints(t *testing.T) {
	p := types.Position{ID: "p1", Location: types.Location{City: "Paris", Country: "France"}}
	candidate := types.Location{City: "Chartres", Country: "France"}

	for _, tt := range []struct {
		minutes  int
		expected float64
	}{
		{10, 1.0},
		{30, 1.0},
		{31, 0.9},
		{45, 0.9},
		{60, 0.8},
		{90, 0.6},
		{120, 0.4},
		{121, 0.2},
		{300, 0.2},
	} {
		provider := TravelTimeFunc(func(_, _ types.Location) (int, bool) {
			return tt.minutes, true
		})
		assert.Equal(t, tt.expected, LocationScore(candidate, p, provider), "minutes %d", tt.minutes)
	}
}

func TestLocationScore_ProviderMissIsNeutral(t *testing.T) {
	p := types.Position{ID: "p1", Location: types.Location{City: "Paris", Country: "France"}}
	candidate := types.Location{City: "Lille", Country: "France"}
	provider := TravelTimeFunc(func(_, _ types.Location) (int, bool) { return 0, false })

	assert.Equal(t, neutralLocationScore, LocationScore(candidate, p, provider))
}

func TestLocationScore_NoProviderIsNeutral(t *testing.T) {
	p := types.Position{ID: "p1", Location: types.Location{City: "Paris", Country: "France"}}
	candidate := types.Location{City: "Lille", Country: "France"}

	assert.Equal(t, neutralLocationScore, LocationScore(candidate, p, nil))
}
