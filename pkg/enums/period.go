package enums

import "fmt"

// Period names a relative time window evaluated against the current date.
type Period string

const (
	PeriodJour    Period = "jour"
	PeriodSemaine Period = "semaine"
	PeriodMois    Period = "mois"
	PeriodAnnee   Period = "annee"
)

var validPeriods = []Period{
	PeriodJour,
	PeriodSemaine,
	PeriodMois,
	PeriodAnnee,
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Period.
func (p Period) IsValid() bool {
	for _, candidate := range validPeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePeriod converts raw input into a Period.
func ParsePeriod(value string) (Period, error) {
	for _, candidate := range validPeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid period %q", value)
}
