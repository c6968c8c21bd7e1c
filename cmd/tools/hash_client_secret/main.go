// Command hash_client_secret hashes an API client secret with bcrypt so it
// can be stored in MATCH_CLIENT_SECRET_HASH.
//
// Usage:
//
//	go run cmd/tools/hash_client_secret/main.go <secret>
//
// MATCH_BCRYPT_COST tunes the cost (default 12).
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/match-engine/internal/config"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "Usage: hash_client_secret <secret>")
		os.Exit(1)
	}

	secretConfig, err := config.NewSecretConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	hash, err := secretConfig.HashSecret(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to hash secret: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
