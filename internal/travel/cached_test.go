package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

// countingProvider tracks how many times the backend was consulted.
type countingProvider struct {
	backend *StaticProvider
	calls   int
}

func (c *countingProvider) GetTravelMinutes(origin, destination types.Location) (int, bool) {
	c.calls++
	return c.backend.GetTravelMinutes(origin, destination)
}

func TestCachedProvider_MemoizesHits(t *testing.T) {
	static := NewStaticProvider()
	require.NoError(t, static.Set("Paris", "Versailles", 25))
	backend := &countingProvider{backend: static}
	cached := NewCachedProvider(backend)

	for i := 0; i < 3; i++ {
		minutes, ok := cached.GetTravelMinutes(loc("Paris"), loc("Versailles"))
		require.True(t, ok)
		assert.Equal(t, 25, minutes)
	}

	assert.Equal(t, 1, backend.calls)
	hits, misses := cached.Stats()
	assert.EqualValues(t, 2, hits)
	assert.EqualValues(t, 1, misses)
}

func TestCachedProvider_MemoizesMisses(t *testing.T) {
	backend := &countingProvider{backend: NewStaticProvider()}
	cached := NewCachedProvider(backend)

	for i := 0; i < 3; i++ {
		_, ok := cached.GetTravelMinutes(loc("Paris"), loc("Tokyo"))
		assert.False(t, ok)
	}

	assert.Equal(t, 1, backend.calls)
}

func TestCachedProvider_SymmetricKeysShareEntries(t *testing.T) {
	static := NewStaticProvider()
	require.NoError(t, static.Set("Paris", "Versailles", 25))
	backend := &countingProvider{backend: static}
	cached := NewCachedProvider(backend)

	_, _ = cached.GetTravelMinutes(loc("Paris"), loc("Versailles"))
	_, _ = cached.GetTravelMinutes(loc("Versailles"), loc("Paris"))

	assert.Equal(t, 1, backend.calls)
}

func TestCachedProvider_EmptyCityShortCircuits(t *testing.T) {
	backend := &countingProvider{backend: NewStaticProvider()}
	cached := NewCachedProvider(backend)

	_, ok := cached.GetTravelMinutes(types.Location{}, loc("Paris"))
	assert.False(t, ok)
	assert.Equal(t, 0, backend.calls)
}
