// Package main implements the match_agent CLI for compatibility scoring.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/observability"
	"github.com/jonathan/match-engine/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one candidate against one position",
	Long:  "Scores a single candidate/position pair across skills, location, experience, education and preferences, producing a MatchResult JSON with detailed scores and insights.",
	RunE:  runScore,
}

var (
	scoreCandidate string
	scorePosition  string
	scoreWeights   string
	scoreOutput    string
	scorePretty    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to input Candidate JSON file (required)")
	scoreCmd.Flags().StringVarP(&scorePosition, "position", "p", "", "Path to input Position JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreWeights, "weights", "w", "", "Path to a criterion weights JSON file (optional, default adapts to seniority)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output MatchResult JSON file (default stdout)")
	scoreCmd.Flags().BoolVar(&scorePretty, "pretty", false, "Render the result as a formatted report instead of JSON")

	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("position"); err != nil {
		panic(fmt.Sprintf("failed to mark position flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	candidate, err := readCandidateFile(scoreCandidate)
	if err != nil {
		return err
	}
	position, err := readPositionFile(scorePosition)
	if err != nil {
		return err
	}

	var override *scoring.Weights
	if scoreWeights != "" {
		override, err = readWeightsFile(scoreWeights)
		if err != nil {
			return err
		}
	}

	engine, closer, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	result, err := engine.MatchOne(cmd.Context(), candidate, position, override)
	if err != nil {
		return err
	}

	if scorePretty {
		observability.NewPrinter(os.Stdout).PrintMatchResult(&result)
		if scoreOutput == "" {
			return nil
		}
	}

	return writeJSONOutput(scoreOutput, result)
}
