package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func dates(ss ...string) []time.Time {
	result := make([]time.Time, len(ss))
	for i, s := range ss {
		result[i] = date(s)
	}

	return result
}

func Test_Calculate(t *testing.T) {
	tests := []struct {
		name        string
		dates       []time.Time
		today       time.Time
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "no entries",
			dates:       nil,
			today:       date("2024-01-15"),
			wantCurrent: 0,
			wantLongest: 0,
		},
		{
			name:        "three consecutive days ending today",
			dates:       dates("2024-01-13", "2024-01-14", "2024-01-15"),
			today:       date("2024-01-15"),
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "today missing keeps the streak alive",
			dates:       dates("2024-01-13", "2024-01-14"),
			today:       date("2024-01-15"),
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "gap before yesterday breaks the current streak",
			dates:       dates("2024-01-10", "2024-01-11", "2024-01-13"),
			today:       date("2024-01-15"),
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "longest streak in the past",
			dates:       dates("2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08", "2024-01-14", "2024-01-15"),
			today:       date("2024-01-15"),
			wantCurrent: 2,
			wantLongest: 4,
		},
		{
			name:        "streak across a year boundary",
			dates:       dates("2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02"),
			today:       date("2024-01-02"),
			wantCurrent: 4,
			wantLongest: 4,
		},
		{
			name:        "streak across a leap day",
			dates:       dates("2024-02-28", "2024-02-29", "2024-03-01"),
			today:       date("2024-03-01"),
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "single entry long ago",
			dates:       dates("2024-01-01"),
			today:       date("2024-01-15"),
			wantCurrent: 0,
			wantLongest: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.dates, tt.today)
			require.Equal(t, tt.wantCurrent, got.Current)
			require.Equal(t, tt.wantLongest, got.Longest)

			if len(tt.dates) > 0 {
				require.Equal(t, tt.dates[len(tt.dates)-1], got.LastDate)
			}
		})
	}
}

func Test_Calculate_timeOfDayIsIrrelevant(t *testing.T) {
	entries := []time.Time{
		date("2024-01-14").Add(9 * time.Hour),
		date("2024-01-15").Add(23 * time.Hour),
	}

	got := Calculate(entries, date("2024-01-15").Add(5*time.Minute))
	require.Equal(t, 2, got.Current)
	require.Equal(t, 2, got.Longest)
}
