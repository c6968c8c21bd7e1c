package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every candidate against every position",
	Long:  "Scores the full cross product of a candidate pool and a position pool over a worker pool, producing a JSON array of MatchResults ordered best first.",
	RunE:  runBatch,
}

var (
	batchCandidates string
	batchPositions  string
	batchOutput     string
)

func init() {
	batchCmd.Flags().StringVarP(&batchCandidates, "candidates", "c", "", "Path to a JSON array of Candidate profiles (required)")
	batchCmd.Flags().StringVarP(&batchPositions, "positions", "p", "", "Path to a JSON array of Position profiles (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := batchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("positions"); err != nil {
		panic(fmt.Sprintf("failed to mark positions flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	candidates, err := readCandidatesFile(batchCandidates)
	if err != nil {
		return err
	}
	positions, err := readPositionsFile(batchPositions)
	if err != nil {
		return err
	}

	engine, closer, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	results, err := engine.MatchBatch(cmd.Context(), candidates, positions)
	if err != nil {
		return err
	}

	if err := writeJSONOutput(batchOutput, results); err != nil {
		return err
	}

	if batchOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Scored %d pairs to %s\n", len(results), batchOutput)
	}
	return nil
}
