package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecretConfig(t *testing.T) *SecretConfig {
	t.Helper()
	// Cost 10 keeps hashing fast in tests.
	t.Setenv("MATCH_BCRYPT_COST", "10")
	cfg, err := NewSecretConfig()
	require.NoError(t, err)
	return cfg
}

func TestNewSecretConfig_Default(t *testing.T) {
	t.Setenv("MATCH_BCRYPT_COST", "")
	cfg, err := NewSecretConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewSecretConfig_RejectsOutOfRangeCost(t *testing.T) {
	t.Setenv("MATCH_BCRYPT_COST", "9")
	_, err := NewSecretConfig()
	assert.Error(t, err)

	t.Setenv("MATCH_BCRYPT_COST", "15")
	_, err = NewSecretConfig()
	assert.Error(t, err)

	t.Setenv("MATCH_BCRYPT_COST", "twelve")
	_, err = NewSecretConfig()
	assert.Error(t, err)
}

func TestHashAndVerifySecret(t *testing.T) {
	cfg := testSecretConfig(t)

	hash, err := cfg.HashSecret("client-secret-value")
	require.NoError(t, err)
	assert.NotEqual(t, "client-secret-value", hash)

	assert.True(t, cfg.VerifySecret("client-secret-value", hash))
	assert.False(t, cfg.VerifySecret("wrong-secret", hash))
	assert.False(t, cfg.VerifySecret("client-secret-value", "not-a-hash"))
}

func TestHashSecret_DistinctHashes(t *testing.T) {
	cfg := testSecretConfig(t)

	first, err := cfg.HashSecret("same-input")
	require.NoError(t, err)
	second, err := cfg.HashSecret("same-input")
	require.NoError(t, err)

	// bcrypt salts every hash.
	assert.NotEqual(t, first, second)
}
