package gamification

import (
	"sort"
	"time"

	"github.com/Yuvanesh-03/maverick-backend/internal/models"
)

// CurrentStreak counts consecutive active calendar days ending today.
// Events are collapsed into a set of distinct IST day keys, then we walk
// backward from the clock's today until the first gap. No activity today
// means streak 0 — yesterday alone earns no partial credit.
//
// The function is pure: order of events and same-day duplicates do not
// matter, and the input slice is never mutated. Zero-valued timestamps
// are skipped instead of breaking the count.
func CurrentStreak(events []models.ActivityEvent, clock Clock) int {
	if len(events) == 0 {
		return 0
	}

	days := activeDays(events)
	if len(days) == 0 {
		return 0
	}

	streak := 0
	cursor := clock.Now().In(istLocation)
	for days[DateKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak scans the sorted distinct-day set for the maximal run of
// consecutive days. Unlike CurrentStreak it is not anchored at today, so
// it is a separate pass rather than a reuse of the current-streak walk.
func LongestStreak(events []models.ActivityEvent) int {
	days := activeDays(events)
	if len(days) == 0 {
		return 0
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	longest, run := 1, 1
	prev, _ := time.ParseInLocation("2006-01-02", keys[0], istLocation)
	for _, k := range keys[1:] {
		day, err := time.ParseInLocation("2006-01-02", k, istLocation)
		if err != nil {
			continue
		}
		if day.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

func activeDays(events []models.ActivityEvent) map[string]bool {
	days := make(map[string]bool, len(events))
	for _, e := range events {
		if e.OccurredAt.IsZero() {
			continue
		}
		days[DateKey(e.OccurredAt)] = true
	}
	return days
}
