package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/match-engine/internal/observability"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Smoke-test every registered strategy",
	Long:  "Runs each registered scoring strategy against a fixed reference pair and reports per-strategy health and latency. Exits with an error when any strategy is unhealthy.",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	engine, closer, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer()

	health := engine.HealthCheck(cmd.Context())
	observability.NewPrinter(os.Stdout).PrintHealth(health)

	for name, h := range health {
		if !h.Healthy {
			return fmt.Errorf("strategy %s is unhealthy: %s", name, h.Error)
		}
	}
	return nil
}
