package periods

import (
	"testing"
	"time"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// Wednesday.
var wednesday = time.Date(2024, 4, 17, 14, 30, 0, 0, time.UTC)

func TestDayMatchesExactDateOnly(t *testing.T) {
	if !Contains("2024-04-17", enums.PeriodJour, wednesday) {
		t.Fatalf("today should match jour")
	}
	if Contains("2024-04-16", enums.PeriodJour, wednesday) {
		t.Fatalf("yesterday should not match jour")
	}
}

func TestWeekCoversMondayToFriday(t *testing.T) {
	cases := map[string]bool{
		"2024-04-15": true,  // Monday
		"2024-04-17": true,  // Wednesday
		"2024-04-19": true,  // Friday
		"2024-04-20": false, // Saturday
		"2024-04-21": false, // Sunday
		"2024-04-14": false, // previous Sunday
		"2024-04-22": false, // next Monday
	}
	for date, want := range cases {
		if got := Contains(date, enums.PeriodSemaine, wednesday); got != want {
			t.Fatalf("Contains(%s, semaine) = %v, want %v", date, got, want)
		}
	}
}

func TestWeekendDateFailsEvenWhenNowIsWeekend(t *testing.T) {
	saturday := time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)
	if Contains("2024-04-20", enums.PeriodSemaine, saturday) {
		t.Fatalf("a Saturday must stay outside the business week, even on Saturday")
	}
	// The business week around that Saturday still works.
	if !Contains("2024-04-19", enums.PeriodSemaine, saturday) {
		t.Fatalf("Friday of the same week should match")
	}
}

func TestMonthMatchesMonthAndYear(t *testing.T) {
	if !Contains("2024-04-01", enums.PeriodMois, wednesday) {
		t.Fatalf("same month should match")
	}
	if Contains("2023-04-17", enums.PeriodMois, wednesday) {
		t.Fatalf("same month of another year must not match")
	}
}

func TestYearMatchesYear(t *testing.T) {
	if !Contains("2024-12-31", enums.PeriodAnnee, wednesday) {
		t.Fatalf("same year should match")
	}
	if Contains("2025-01-01", enums.PeriodAnnee, wednesday) {
		t.Fatalf("next year must not match")
	}
}

func TestUnknownPeriodPassesThrough(t *testing.T) {
	if !Contains("1999-01-01", enums.Period("quinzaine"), wednesday) {
		t.Fatalf("unknown periods are a pass-through")
	}
}

func TestEmptyOrInvalidDateNeverMatches(t *testing.T) {
	for _, date := range []string{"", "   ", "17/04/2024", "not-a-date"} {
		for _, period := range []enums.Period{enums.PeriodJour, enums.PeriodSemaine, enums.PeriodMois, enums.PeriodAnnee, enums.Period("autre")} {
			if Contains(date, period, wednesday) {
				t.Fatalf("Contains(%q, %s) should be false", date, period)
			}
		}
	}
}
