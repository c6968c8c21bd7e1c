package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/db"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load candidate and position profiles into the database",
	Long:  "Upserts JSON arrays of candidate and/or position profiles into the PostgreSQL profile store. Requires DATABASE_URL (or database_url in the config file).",
	RunE:  runLoad,
}

var (
	loadCandidates string
	loadPositions  string
)

func init() {
	loadCmd.Flags().StringVarP(&loadCandidates, "candidates", "c", "", "Path to a JSON array of Candidate profiles")
	loadCmd.Flags().StringVarP(&loadPositions, "positions", "p", "", "Path to a JSON array of Position profiles")

	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	if loadCandidates == "" && loadPositions == "" {
		return fmt.Errorf("nothing to load: pass --candidates and/or --positions")
	}

	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if loadCandidates != "" {
		candidates, err := readCandidatesFile(loadCandidates)
		if err != nil {
			return err
		}
		for _, candidate := range candidates {
			if err := database.UpsertCandidate(cmd.Context(), candidate); err != nil {
				return fmt.Errorf("failed to upsert candidate %s: %w", candidate.ID, err)
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Loaded %d candidates\n", len(candidates))
	}

	if loadPositions != "" {
		positions, err := readPositionsFile(loadPositions)
		if err != nil {
			return err
		}
		for _, position := range positions {
			if err := database.UpsertPosition(cmd.Context(), position); err != nil {
				return fmt.Errorf("failed to upsert position %s: %w", position.ID, err)
			}
		}
		_, _ = fmt.Fprintf(os.Stdout, "Loaded %d positions\n", len(positions))
	}

	return nil
}
