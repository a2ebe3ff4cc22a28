package dateutil

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar day. All journal dates go
// through this function before they are stored or compared, so a stored
// date is always comparable with equality.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return Day(time.Now())
}

func Yesterday() time.Time {
	return PrevDay(Today())
}

func NextDay(d time.Time) time.Time {
	return Day(d.AddDate(0, 0, 1))
}

func PrevDay(d time.Time) time.Time {
	return Day(d.AddDate(0, 0, -1))
}

func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

func Format(d time.Time) string {
	return Day(d).Format(Layout)
}

// MonthRange returns the first day of the month and the first day of the
// following month, forming a half-open [start, end) range.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// PeriodValue renders the bucket a moment in time falls into for a ranking
// period of week, month, or total.
func PeriodValue(period string, t time.Time) (string, error) {
	switch period {
	case "week":
		year, week := t.UTC().ISOWeek()
		return fmt.Sprintf("week/%d/%d", week, year), nil
	case "month":
		return fmt.Sprintf("month/%d/%d", int(t.UTC().Month()), t.UTC().Year()), nil
	case "total":
		return "total", nil
	default:
		return "", fmt.Errorf("period must be week, month, or total, but got %s", period)
	}
}

// PeriodRange returns the half-open [start, end) range of the period
// containing t. For "total" both bounds are zero, meaning unbounded.
func PeriodRange(period string, t time.Time) (time.Time, time.Time, error) {
	switch period {
	case "week":
		day := Day(t)
		// time.Weekday starts the week on Sunday, ISO weeks on Monday.
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), nil
	case "month":
		start, end := MonthRange(t.UTC().Year(), t.UTC().Month())
		return start, end, nil
	case "total":
		return time.Time{}, time.Time{}, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("period must be week, month, or total, but got %s", period)
	}
}
