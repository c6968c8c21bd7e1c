package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/observability"
)

var bestPositionsCmd = &cobra.Command{
	Use:   "best-positions",
	Short: "Rank positions for one candidate",
	Long:  "Scores a candidate against a pool of positions and returns the top matches at or above the score cutoff, best first.",
	RunE:  runBestPositions,
}

var (
	bestPositionsCandidate string
	bestPositionsPool      string
	bestPositionsLimit     int
	bestPositionsMinScore  float64
	bestPositionsOutput    string
	bestPositionsPretty    bool
)

func init() {
	bestPositionsCmd.Flags().StringVarP(&bestPositionsCandidate, "candidate", "c", "", "Path to input Candidate JSON file (required)")
	bestPositionsCmd.Flags().StringVarP(&bestPositionsPool, "positions", "p", "", "Path to a JSON array of Position profiles (required)")
	bestPositionsCmd.Flags().IntVarP(&bestPositionsLimit, "limit", "n", 0, "Maximum results (default from config, 0 = config default)")
	bestPositionsCmd.Flags().Float64Var(&bestPositionsMinScore, "min-score", -1, "Minimum overall score in [0,1] (default from config)")
	bestPositionsCmd.Flags().StringVarP(&bestPositionsOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	bestPositionsCmd.Flags().BoolVar(&bestPositionsPretty, "pretty", false, "Render the ranking as a formatted report instead of JSON")

	if err := bestPositionsCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := bestPositionsCmd.MarkFlagRequired("positions"); err != nil {
		panic(fmt.Sprintf("failed to mark positions flag as required: %v", err))
	}

	rootCmd.AddCommand(bestPositionsCmd)
}

func runBestPositions(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	limit := bestPositionsLimit
	if limit <= 0 {
		limit = cfg.Limit
	}
	minScore := bestPositionsMinScore
	if minScore < 0 {
		minScore = cfg.MinScore
	}

	candidate, err := readCandidateFile(bestPositionsCandidate)
	if err != nil {
		return err
	}
	positions, err := readPositionsFile(bestPositionsPool)
	if err != nil {
		return err
	}

	engine, closer, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	results, err := engine.FindBestMatches(cmd.Context(), candidate, positions, limit, minScore)
	if err != nil {
		return err
	}

	if bestPositionsPretty {
		observability.NewPrinter(os.Stdout).PrintMatchList(
			fmt.Sprintf("Best positions for %s", candidate.ID), results)
		if bestPositionsOutput == "" {
			return nil
		}
	}

	return writeJSONOutput(bestPositionsOutput, results)
}
