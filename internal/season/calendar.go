package season

import (
	"fmt"
	"time"
)

// The season calendar. Picks open with week 2 (week 1 airs before the league
// starts) and close after week 10. Update these for a new season.
var weekLabels = map[int]string{
	2:  "Week 2 (9/12)",
	3:  "Week 3 (9/19)",
	4:  "Week 4 (9/26)",
	5:  "Week 5 (10/3)",
	6:  "Week 6 (10/10)",
	7:  "Week 7 (10/17)",
	8:  "Week 8 (10/24)",
	9:  "Week 9 (10/31)",
	10: "Week 10 (11/7)",
}

// Submission deadlines, Friday 00:00 Pacific expressed in UTC.
// DST ends Nov 2, so week 10 shifts from UTC-7 to UTC-8.
var deadlines = map[int]time.Time{
	2:  time.Date(2025, 9, 12, 7, 0, 0, 0, time.UTC),
	3:  time.Date(2025, 9, 19, 7, 0, 0, 0, time.UTC),
	4:  time.Date(2025, 9, 26, 7, 0, 0, 0, time.UTC),
	5:  time.Date(2025, 10, 3, 7, 0, 0, 0, time.UTC),
	6:  time.Date(2025, 10, 10, 7, 0, 0, 0, time.UTC),
	7:  time.Date(2025, 10, 17, 7, 0, 0, 0, time.UTC),
	8:  time.Date(2025, 10, 24, 7, 0, 0, 0, time.UTC),
	9:  time.Date(2025, 10, 31, 7, 0, 0, 0, time.UTC),
	10: time.Date(2025, 11, 7, 8, 0, 0, 0, time.UTC),
}

const (
	FirstWeek = 2
	LastWeek  = 10
)

func Weeks() []int {
	weeks := make([]int, 0, LastWeek-FirstWeek+1)
	for w := FirstWeek; w <= LastWeek; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

func IsValidWeek(week int) bool {
	_, ok := deadlines[week]
	return ok
}

func Label(week int) string {
	if label, ok := weekLabels[week]; ok {
		return label
	}
	return fmt.Sprintf("Week %d", week)
}

func Deadline(week int) (time.Time, bool) {
	deadline, ok := deadlines[week]
	return deadline, ok
}

// Open reports whether the submission window for a week is still open at the
// given time. Unknown weeks are never open.
func Open(week int, now time.Time) bool {
	deadline, ok := deadlines[week]
	if !ok {
		return false
	}
	return now.Before(deadline)
}
