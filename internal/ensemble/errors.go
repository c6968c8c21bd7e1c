package ensemble

import (
	"fmt"
	"strings"
)

// UnknownStrategyError indicates a hybrid execution named a strategy that
// was never registered.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy: %s", e.Name)
}

// StrategyExecutionError wraps the failure (error or recovered panic) of a
// single strategy during hybrid execution. It is logged and counted but not
// surfaced to the caller unless every strategy fails.
type StrategyExecutionError struct {
	Strategy string
	Cause    error
}

func (e *StrategyExecutionError) Error() string {
	return fmt.Sprintf("strategy %s failed: %v", e.Strategy, e.Cause)
}

func (e *StrategyExecutionError) Unwrap() error {
	return e.Cause
}

// AllStrategiesFailedError indicates that no strategy in a hybrid execution
// produced a score.
type AllStrategiesFailedError struct {
	Failures []*StrategyExecutionError
}

func (e *AllStrategiesFailedError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.Strategy)
	}
	return fmt.Sprintf("all strategies failed: %s", strings.Join(names, ", "))
}
