package periods

import (
	"strings"
	"time"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// DateLayout is the single interchange format for calendar dates.
const DateLayout = "2006-01-02"

// Contains reports whether the ISO date falls inside the named period
// relative to now. The week window is the business week: Monday through
// Friday of now's week, so weekend dates are always outside it. Unknown
// periods pass everything through; empty or unparseable dates never match.
func Contains(date string, period enums.Period, now time.Time) bool {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return false
	}
	day, err := time.ParseInLocation(DateLayout, trimmed, now.Location())
	if err != nil {
		return false
	}

	switch period {
	case enums.PeriodJour:
		return sameDay(day, now)
	case enums.PeriodSemaine:
		monday, friday := businessWeek(now)
		return !day.Before(monday) && !day.After(friday)
	case enums.PeriodMois:
		return day.Year() == now.Year() && day.Month() == now.Month()
	case enums.PeriodAnnee:
		return day.Year() == now.Year()
	default:
		return true
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// businessWeek returns midnight Monday and midnight Friday of now's week.
func businessWeek(now time.Time) (time.Time, time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(now.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := midnight.AddDate(0, 0, -offset)
	friday := monday.AddDate(0, 0, 4)
	return monday, friday
}
