package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/observability"
)

var hybridCmd = &cobra.Command{
	Use:   "hybrid",
	Short: "Score a pair with an ensemble of strategies",
	Long:  "Runs several scoring strategies over the same candidate/position pair and combines the surviving scores into a consensus-adjusted hybrid result. Agreement between strategies raises the overall score by up to ten percentage points.",
	RunE:  runHybrid,
}

var (
	hybridCandidate  string
	hybridPosition   string
	hybridStrategies []string
	hybridOutput     string
	hybridPretty     bool
	hybridShowStats  bool
)

func init() {
	hybridCmd.Flags().StringVarP(&hybridCandidate, "candidate", "c", "", "Path to input Candidate JSON file (required)")
	hybridCmd.Flags().StringVarP(&hybridPosition, "position", "p", "", "Path to input Position JSON file (required)")
	hybridCmd.Flags().StringSliceVarP(&hybridStrategies, "strategies", "s", nil, "Strategies to run (default: all registered)")
	hybridCmd.Flags().StringVarP(&hybridOutput, "out", "o", "", "Path to output HybridResult JSON file (default stdout)")
	hybridCmd.Flags().BoolVar(&hybridPretty, "pretty", false, "Render the result as a formatted report instead of JSON")
	hybridCmd.Flags().BoolVar(&hybridShowStats, "show-stats", false, "Print per-strategy usage statistics after the run")

	if err := hybridCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := hybridCmd.MarkFlagRequired("position"); err != nil {
		panic(fmt.Sprintf("failed to mark position flag as required: %v", err))
	}

	rootCmd.AddCommand(hybridCmd)
}

func runHybrid(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	candidate, err := readCandidateFile(hybridCandidate)
	if err != nil {
		return err
	}
	position, err := readPositionFile(hybridPosition)
	if err != nil {
		return err
	}

	engine, closer, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	result, err := engine.ExecuteHybrid(cmd.Context(), hybridStrategies, candidate, position)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if hybridPretty {
		printer.PrintMatchResult(&result.MatchResult)
		_, _ = fmt.Fprintf(os.Stdout, "Execution %s: weighted mean %.4f, consensus bonus %.1fpp\n",
			result.ExecutionID, result.WeightedMean, result.ConsensusBonus)
		for name, score := range result.StrategyScores {
			_, _ = fmt.Fprintf(os.Stdout, "  %-14s %.4f\n", name, score)
		}
	}

	if !hybridPretty || hybridOutput != "" {
		if err := writeJSONOutput(hybridOutput, result); err != nil {
			return err
		}
	}

	if hybridShowStats {
		printer.PrintUsageStats(engine.GetUsageStats())
	}
	return nil
}
