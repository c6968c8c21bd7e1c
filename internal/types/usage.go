package types

import "time"

// StrategyUsage is a snapshot of one scoring strategy's ensemble
// statistics.
type StrategyUsage struct {
	Calls          int64      `json:"calls"`
	Errors         int64      `json:"errors"`
	TotalLatencyMS int64      `json:"total_latency_ms"`
	LastUsedAt     *time.Time `json:"last_used_at,omitempty"`
}

// AverageLatencyMS returns the mean execution latency in milliseconds, or 0
// before the first call.
func (u StrategyUsage) AverageLatencyMS() float64 {
	if u.Calls == 0 {
		return 0
	}
	return float64(u.TotalLatencyMS) / float64(u.Calls)
}

// StrategyHealth is the outcome of running one strategy against the
// smoke-test pair.
type StrategyHealth struct {
	Healthy   bool   `json:"healthy"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}
