package ensemble

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/matching"
)

func TestHealthCheck_HealthyStrategy(t *testing.T) {
	m := NewManager(nil)
	m.Register(NewWeightedStrategy(matching.NewService(nil, nil)), 0)

	health := m.HealthCheck(context.Background())

	require.Contains(t, health, StrategyWeighted)
	assert.True(t, health[StrategyWeighted].Healthy)
	assert.Empty(t, health[StrategyWeighted].Error)
}

func TestHealthCheck_ReportsFailures(t *testing.T) {
	m := NewManager(nil)
	m.Register(&stubStrategy{name: "broken", err: errors.New("model unavailable")}, 0)
	m.Register(&stubStrategy{name: "panicky", panicWith: "oops"}, 0)
	m.Register(&stubStrategy{name: "out_of_range", score: 1.5}, 0)

	health := m.HealthCheck(context.Background())

	assert.False(t, health["broken"].Healthy)
	assert.Contains(t, health["broken"].Error, "model unavailable")
	assert.False(t, health["panicky"].Healthy)
	assert.False(t, health["out_of_range"].Healthy)
}

func TestHealthCheck_DoesNotTouchUsageStats(t *testing.T) {
	m := NewManager(nil)
	m.Register(&stubStrategy{name: "a", score: 0.5}, 0)

	m.HealthCheck(context.Background())

	assert.NotContains(t, m.GetUsageStats(), "a")
}

func TestSmokeTestPair_IsValid(t *testing.T) {
	candidate, position := SmokeTestPair()
	assert.NoError(t, candidate.Validate())
	assert.NoError(t, position.Validate())
}
