package enums

import "fmt"

// TickerSeverity tags a ticker notice for display emphasis.
type TickerSeverity string

const (
	TickerInfo    TickerSeverity = "info"
	TickerAlerte  TickerSeverity = "alerte"
	TickerUrgence TickerSeverity = "urgence"
)

var validTickerSeverities = []TickerSeverity{
	TickerInfo,
	TickerAlerte,
	TickerUrgence,
}

// String implements fmt.Stringer.
func (t TickerSeverity) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TickerSeverity.
func (t TickerSeverity) IsValid() bool {
	for _, candidate := range validTickerSeverities {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTickerSeverity converts raw input into a TickerSeverity.
func ParseTickerSeverity(value string) (TickerSeverity, error) {
	for _, candidate := range validTickerSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ticker severity %q", value)
}
