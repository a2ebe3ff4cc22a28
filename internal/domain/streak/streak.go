package streak

import (
	"time"

	"github.com/lepetitglacon/moyenne-sub000/pkg/dateutil"
)

type Streak struct {
	Current  int
	Longest  int
	LastDate time.Time
}

// Calculate derives streaks from a user's entry dates, which must be in
// ascending order, relative to the given today. The current streak counts
// back from today, or from yesterday when today has no entry yet: a streak
// in progress is not broken by a day that is not over.
func Calculate(dates []time.Time, today time.Time) Streak {
	if len(dates) == 0 {
		return Streak{}
	}

	days := make([]time.Time, len(dates))
	seen := make(map[time.Time]struct{}, len(dates))
	for i, d := range dates {
		days[i] = dateutil.Day(d)
		seen[days[i]] = struct{}{}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(dateutil.NextDay(days[i-1])) {
			run++
		} else {
			run = 1
		}

		if run > longest {
			longest = run
		}
	}

	cursor := dateutil.Day(today)
	if _, ok := seen[cursor]; !ok {
		cursor = dateutil.PrevDay(cursor)
	}

	current := 0
	for {
		if _, ok := seen[cursor]; !ok {
			break
		}

		current++
		cursor = dateutil.PrevDay(cursor)
	}

	return Streak{
		Current:  current,
		Longest:  longest,
		LastDate: days[len(days)-1],
	}
}
