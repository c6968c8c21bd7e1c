// Package config - secret.go provides hashing for API client secrets.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// SecretConfig holds configuration for client-secret hashing and
// verification.
type SecretConfig struct {
	BcryptCost int
}

// NewSecretConfig reads MATCH_BCRYPT_COST (default 12).
func NewSecretConfig() (*SecretConfig, error) {
	costStr := os.Getenv("MATCH_BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_BCRYPT_COST: %v", err)
	}

	config := &SecretConfig{BcryptCost: cost}
	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SecretConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashSecret hashes a client secret with bcrypt.
func (c *SecretConfig) HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

// VerifySecret checks a client secret against a stored hash.
func (c *SecretConfig) VerifySecret(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
