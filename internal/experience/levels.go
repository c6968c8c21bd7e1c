// Package experience classifies candidate experience into seniority levels
// and provides helpers for reasoning about experience gaps.
package experience

// Seniority is a coarse experience bucket derived from total years of
// professional experience.
type Seniority string

const (
	// SeniorityJunior covers candidates with fewer than 3 years of experience.
	SeniorityJunior Seniority = "junior"
	// SeniorityConfirmed covers candidates with 3 to 7 years of experience.
	SeniorityConfirmed Seniority = "confirmed"
	// SenioritySenior covers candidates with 7 or more years of experience.
	SenioritySenior Seniority = "senior"
)

const (
	juniorMaxYears = 3.0
	seniorMinYears = 7.0
)

// Classify maps total years of experience to a Seniority bucket.
// Negative inputs are treated as zero.
func Classify(years float64) Seniority {
	if years < 0 {
		years = 0
	}
	switch {
	case years < juniorMaxYears:
		return SeniorityJunior
	case years < seniorMinYears:
		return SeniorityConfirmed
	default:
		return SenioritySenior
	}
}

// Valid reports whether s is one of the known seniority buckets.
func (s Seniority) Valid() bool {
	switch s {
	case SeniorityJunior, SeniorityConfirmed, SenioritySenior:
		return true
	}
	return false
}

// String returns the bucket name.
func (s Seniority) String() string {
	return string(s)
}
