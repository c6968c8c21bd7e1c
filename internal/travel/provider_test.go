package travel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-engine/internal/types"
)

func loc(city string) types.Location {
	return types.Location{City: city}
}

func TestStaticProvider_SymmetricLookup(t *testing.T) {
	p := NewStaticProvider()
	require.NoError(t, p.Set("Paris", "Versailles", 25))

	minutes, ok := p.GetTravelMinutes(loc("Paris"), loc("Versailles"))
	require.True(t, ok)
	assert.Equal(t, 25, minutes)

	minutes, ok = p.GetTravelMinutes(loc("Versailles"), loc("Paris"))
	require.True(t, ok)
	assert.Equal(t, 25, minutes)
}

func TestStaticProvider_LookupIsCaseInsensitive(t *testing.T) {
	p := NewStaticProvider()
	require.NoError(t, p.Set("Lyon", "Grenoble", 70))

	_, ok := p.GetTravelMinutes(loc("  LYON "), loc("grenoble"))
	assert.True(t, ok)
}

func TestStaticProvider_UnknownRoute(t *testing.T) {
	p := NewStaticProvider()
	_, ok := p.GetTravelMinutes(loc("Paris"), loc("Tokyo"))
	assert.False(t, ok)
}

func TestStaticProvider_EmptyCityNeverMatches(t *testing.T) {
	p := NewStaticProvider()
	require.NoError(t, p.Set("Paris", "Versailles", 25))

	_, ok := p.GetTravelMinutes(types.Location{}, loc("Paris"))
	assert.False(t, ok)
}

func TestStaticProvider_RejectsBadRoutes(t *testing.T) {
	p := NewStaticProvider()
	assert.Error(t, p.Set("", "Paris", 10))
	assert.Error(t, p.Set("Paris", "Lyon", -5))
}

func TestLoadStaticProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travel.json")
	doc := `[
		{"from": "Paris", "to": "Versailles", "minutes": 25},
		{"from": "Paris", "to": "Chartres", "minutes": 75}
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	p, err := LoadStaticProvider(path)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	minutes, ok := p.GetTravelMinutes(loc("Chartres"), loc("Paris"))
	require.True(t, ok)
	assert.Equal(t, 75, minutes)
}

func TestLoadStaticProvider_BadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "travel.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o600))

	_, err := LoadStaticProvider(path)
	assert.Error(t, err)
}

func TestLoadStaticProvider_MissingFile(t *testing.T) {
	_, err := LoadStaticProvider(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
