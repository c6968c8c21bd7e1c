// Package travel supplies commute-time data to the location calculator.
// Providers are backed by precomputed tables so the scoring hot path never
// performs network I/O.
package travel

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/jonathan/match-engine/internal/types"
)

// StaticProvider answers travel-time lookups from an in-memory symmetric
// table keyed by city pair. Safe for concurrent use.
type StaticProvider struct {
	mu     sync.RWMutex
	routes map[string]int
}

// NewStaticProvider returns an empty provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{routes: make(map[string]int)}
}

// Route is one entry in a travel table document.
type Route struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Minutes int    `json:"minutes"`
}

// LoadStaticProvider reads a JSON array of routes from a file.
func LoadStaticProvider(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read travel table %s: %w", path, err)
	}

	var routes []Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("failed to parse travel table %s: %w", path, err)
	}

	p := NewStaticProvider()
	for _, r := range routes {
		if err := p.Set(r.From, r.To, r.Minutes); err != nil {
			return nil, fmt.Errorf("travel table %s: %w", path, err)
		}
	}
	return p, nil
}

// Set records the travel time between two cities. Routes are symmetric.
func (p *StaticProvider) Set(from, to string, minutes int) error {
	key, ok := routeKey(from, to)
	if !ok {
		return fmt.Errorf("route needs two city names, got %q and %q", from, to)
	}
	if minutes < 0 {
		return fmt.Errorf("negative travel time %d for %s", minutes, key)
	}
	p.mu.Lock()
	p.routes[key] = minutes
	p.mu.Unlock()
	return nil
}

// GetTravelMinutes looks up the commute between the two locations' cities.
func (p *StaticProvider) GetTravelMinutes(origin, destination types.Location) (int, bool) {
	key, ok := routeKey(origin.City, destination.City)
	if !ok {
		return 0, false
	}
	p.mu.RLock()
	minutes, found := p.routes[key]
	p.mu.RUnlock()
	return minutes, found
}

// Len returns the number of known routes.
func (p *StaticProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.routes)
}

// routeKey builds the canonical symmetric key for a city pair. Same-city
// pairs are valid and map to themselves.
func routeKey(a, b string) (string, bool) {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return "", false
	}
	if a > b {
		a, b = b, a
	}
	return a + "|" + b, true
}
