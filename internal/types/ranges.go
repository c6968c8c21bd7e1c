package types

import (
	"fmt"
	"math"
	"strings"
)

// ExperienceRange is a required band of professional experience in years.
// A nil Max means open-ended.
type ExperienceRange struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

// ExactYears builds a range requiring exactly the given years.
func ExactYears(years float64) (ExperienceRange, error) {
	return BetweenYears(years, years)
}

// BetweenYears builds a closed range of required years.
func BetweenYears(min, max float64) (ExperienceRange, error) {
	r := ExperienceRange{Min: min, Max: &max}
	if err := r.Validate(); err != nil {
		return ExperienceRange{}, err
	}
	return r, nil
}

// AtLeastYears builds an open-ended range with only a lower bound.
func AtLeastYears(min float64) (ExperienceRange, error) {
	r := ExperienceRange{Min: min}
	if err := r.Validate(); err != nil {
		return ExperienceRange{}, err
	}
	return r, nil
}

// Validate checks the range invariants: bounds are finite, non-negative and
// ordered.
func (r ExperienceRange) Validate() error {
	if r.Min < 0 || math.IsNaN(r.Min) || math.IsInf(r.Min, 0) {
		return fmt.Errorf("experience range: invalid minimum %v", r.Min)
	}
	if r.Max != nil {
		if *r.Max < 0 || math.IsNaN(*r.Max) || math.IsInf(*r.Max, 0) {
			return fmt.Errorf("experience range: invalid maximum %v", *r.Max)
		}
		if *r.Max < r.Min {
			return fmt.Errorf("experience range: maximum %v below minimum %v", *r.Max, r.Min)
		}
	}
	return nil
}

// Contains reports whether the given years fall inside the range.
func (r ExperienceRange) Contains(years float64) bool {
	if years < r.Min {
		return false
	}
	if r.Max != nil && years > *r.Max {
		return false
	}
	return true
}

// GapBelow returns how many years the given experience falls short of the
// minimum, or 0 when it meets it.
func (r ExperienceRange) GapBelow(years float64) float64 {
	if years >= r.Min {
		return 0
	}
	return r.Min - years
}

// ExcessAbove returns how many years the given experience exceeds the
// maximum, or 0 when the range is open-ended or not exceeded.
func (r ExperienceRange) ExcessAbove(years float64) float64 {
	if r.Max == nil || years <= *r.Max {
		return 0
	}
	return years - *r.Max
}

// String renders the range as "3-5y" or "7+y".
func (r ExperienceRange) String() string {
	if r.Max == nil {
		return fmt.Sprintf("%g+y", r.Min)
	}
	if *r.Max == r.Min {
		return fmt.Sprintf("%gy", r.Min)
	}
	return fmt.Sprintf("%g-%gy", r.Min, *r.Max)
}

// Salary periods understood by SalaryRange.
const (
	PeriodYear  = "year"
	PeriodMonth = "month"
)

// SalaryRange is a compensation band in a single currency. A nil Max means
// open-ended. Amounts are whole currency units.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      *int   `json:"max,omitempty"`
	Currency string `json:"currency"`
	Period   string `json:"period"`
}

// SalaryBetween builds a closed salary band.
func SalaryBetween(min, max int, currency, period string) (SalaryRange, error) {
	r := SalaryRange{Min: min, Max: &max, Currency: normalizeCurrency(currency), Period: normalizePeriod(period)}
	if err := r.Validate(); err != nil {
		return SalaryRange{}, err
	}
	return r, nil
}

// SalaryAtLeast builds an open-ended salary band with only a floor.
func SalaryAtLeast(min int, currency, period string) (SalaryRange, error) {
	r := SalaryRange{Min: min, Currency: normalizeCurrency(currency), Period: normalizePeriod(period)}
	if err := r.Validate(); err != nil {
		return SalaryRange{}, err
	}
	return r, nil
}

// SalaryExactly builds a band collapsed to a single amount.
func SalaryExactly(amount int, currency, period string) (SalaryRange, error) {
	return SalaryBetween(amount, amount, currency, period)
}

// Validate checks the band invariants: non-negative ordered bounds and a
// known period.
func (r SalaryRange) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("salary range: negative minimum %d", r.Min)
	}
	if r.Max != nil {
		if *r.Max < 0 {
			return fmt.Errorf("salary range: negative maximum %d", *r.Max)
		}
		if *r.Max < r.Min {
			return fmt.Errorf("salary range: maximum %d below minimum %d", *r.Max, r.Min)
		}
	}
	switch normalizePeriod(r.Period) {
	case PeriodYear, PeriodMonth:
		return nil
	default:
		return fmt.Errorf("salary range: unknown period %q", r.Period)
	}
}

// Comparable reports whether two bands share a currency and period and can
// be compared amount to amount.
func (r SalaryRange) Comparable(other SalaryRange) bool {
	return normalizeCurrency(r.Currency) == normalizeCurrency(other.Currency) &&
		normalizePeriod(r.Period) == normalizePeriod(other.Period)
}

// String renders the band as "50000-70000 EUR/year".
func (r SalaryRange) String() string {
	bound := fmt.Sprintf("%d+", r.Min)
	if r.Max != nil {
		if *r.Max == r.Min {
			bound = fmt.Sprintf("%d", r.Min)
		} else {
			bound = fmt.Sprintf("%d-%d", r.Min, *r.Max)
		}
	}
	return fmt.Sprintf("%s %s/%s", bound, normalizeCurrency(r.Currency), normalizePeriod(r.Period))
}

func normalizeCurrency(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}

func normalizePeriod(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" {
		return PeriodYear
	}
	return p
}
