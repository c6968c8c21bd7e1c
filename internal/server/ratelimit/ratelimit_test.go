package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(limit, burst int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  limit,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/v1/match", Method: "POST", Limit: limit, Window: time.Minute, Burst: burst},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig(60, 3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/v1/match", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 60, info.Limit)
	}
}

func TestLimiter_BlocksBeyondBurst(t *testing.T) {
	l := NewLimiter(testConfig(60, 2))
	defer l.Stop()

	l.Allow("1.2.3.4", "/v1/match", "POST")
	l.Allow("1.2.3.4", "/v1/match", "POST")
	allowed, info := l.Allow("1.2.3.4", "/v1/match", "POST")

	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(60, 1))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/v1/match", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/v1/match", "POST")
	require.False(t, allowed)

	// A different client still has its full burst.
	allowed, _ = l.Allow("2.2.2.2", "/v1/match", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/v1/match", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig(60, 1)
	cfg.Whitelist["9.9.9.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/v1/match", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig(60, 1)
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("6.6.6.6", "/v1/match", "POST")
	assert.False(t, allowed)
}

func TestLimiter_NilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/v1/anything", "GET")
	assert.True(t, allowed)
}

func TestMatchEndpoint_HealthAndMetricsUnlimited(t *testing.T) {
	configs := DefaultEndpointConfigs()

	for _, path := range []string{"/v1/health", "/metrics"} {
		match := MatchEndpoint(path, "GET", configs)
		require.NotNil(t, match, path)
		assert.Equal(t, 0, match.Limit, path)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/v1/match/batch", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 60, match.Limit)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/v1/positions/pos-1/matches", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, "/v1/positions/", match.Path)
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	assert.Nil(t, MatchEndpoint("/v1/strategies", "GET", configs))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_IPLists(t *testing.T) {
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")
	t.Setenv("RATE_LIMIT_BLACKLIST", "6.6.6.6")

	cfg := LoadConfig()
	assert.True(t, cfg.Whitelist["1.1.1.1"])
	assert.True(t, cfg.Whitelist["2.2.2.2"])
	assert.True(t, cfg.Blacklist["6.6.6.6"])
}
