package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/observability"
)

var bestCandidatesCmd = &cobra.Command{
	Use:   "best-candidates",
	Short: "Rank candidates for one position",
	Long:  "Scores a pool of candidates against a position and returns the top matches at or above the score cutoff, best first.",
	RunE:  runBestCandidates,
}

var (
	bestCandidatesPosition string
	bestCandidatesPool     string
	bestCandidatesLimit    int
	bestCandidatesMinScore float64
	bestCandidatesOutput   string
	bestCandidatesPretty   bool
)

func init() {
	bestCandidatesCmd.Flags().StringVarP(&bestCandidatesPosition, "position", "p", "", "Path to input Position JSON file (required)")
	bestCandidatesCmd.Flags().StringVarP(&bestCandidatesPool, "candidates", "c", "", "Path to a JSON array of Candidate profiles (required)")
	bestCandidatesCmd.Flags().IntVarP(&bestCandidatesLimit, "limit", "n", 0, "Maximum results (default from config, 0 = config default)")
	bestCandidatesCmd.Flags().Float64Var(&bestCandidatesMinScore, "min-score", -1, "Minimum overall score in [0,1] (default from config)")
	bestCandidatesCmd.Flags().StringVarP(&bestCandidatesOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	bestCandidatesCmd.Flags().BoolVar(&bestCandidatesPretty, "pretty", false, "Render the ranking as a formatted report instead of JSON")

	if err := bestCandidatesCmd.MarkFlagRequired("position"); err != nil {
		panic(fmt.Sprintf("failed to mark position flag as required: %v", err))
	}
	if err := bestCandidatesCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(bestCandidatesCmd)
}

func runBestCandidates(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	limit := bestCandidatesLimit
	if limit <= 0 {
		limit = cfg.Limit
	}
	minScore := bestCandidatesMinScore
	if minScore < 0 {
		minScore = cfg.MinScore
	}

	position, err := readPositionFile(bestCandidatesPosition)
	if err != nil {
		return err
	}
	candidates, err := readCandidatesFile(bestCandidatesPool)
	if err != nil {
		return err
	}

	engine, closer, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	results, err := engine.FindBestCandidates(cmd.Context(), position, candidates, limit, minScore)
	if err != nil {
		return err
	}

	if bestCandidatesPretty {
		observability.NewPrinter(os.Stdout).PrintMatchList(
			fmt.Sprintf("Best candidates for %s", position.ID), results)
		if bestCandidatesOutput == "" {
			return nil
		}
	}

	return writeJSONOutput(bestCandidatesOutput, results)
}
