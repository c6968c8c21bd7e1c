package scoring

import "fmt"

// InvalidWeightConfigurationError represents a weight override that cannot
// be normalized into a valid vector.
type InvalidWeightConfigurationError struct {
	Reason string
}

func (e *InvalidWeightConfigurationError) Error() string {
	return fmt.Sprintf("invalid weight configuration: %s", e.Reason)
}
