package types

import "strings"

// Location describes a geographic place at city granularity.
type Location struct {
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"` // state, province or metro area
	Country string `json:"country,omitempty"`
}

// IsZero reports whether the location carries no information.
func (l Location) IsZero() bool {
	return normalizePlace(l.City) == "" && normalizePlace(l.Region) == "" && normalizePlace(l.Country) == ""
}

// SameCity reports whether both locations name the same city. Empty cities
// never match.
func (l Location) SameCity(other Location) bool {
	c := normalizePlace(l.City)
	return c != "" && c == normalizePlace(other.City)
}

// SameRegion reports whether both locations fall in the same region. Empty
// regions never match. Countries must also agree when both are set.
func (l Location) SameRegion(other Location) bool {
	r := normalizePlace(l.Region)
	if r == "" || r != normalizePlace(other.Region) {
		return false
	}
	lc, oc := normalizePlace(l.Country), normalizePlace(other.Country)
	if lc != "" && oc != "" && lc != oc {
		return false
	}
	return true
}

// String renders the location as "City, Region, Country", skipping empty
// parts.
func (l Location) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.Region, l.Country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func normalizePlace(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
