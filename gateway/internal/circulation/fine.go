package circulation

import (
	"fmt"
	"math"
	"time"
)

// DaysOverdue is the number of whole calendar days now lies after due,
// never negative.
func DaysOverdue(due, now time.Time) int {
	days := daysSince(due, now)
	if days < 0 {
		return 0
	}
	return days
}

// Fine is the suggested overdue fine. Without a due date there is nothing
// to charge.
func Fine(due *time.Time, now time.Time, finePerDay float64) float64 {
	if due == nil || finePerDay <= 0 {
		return 0
	}
	return roundCents(float64(DaysOverdue(*due, now)) * finePerDay)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

const noDue = "—"

// DueDescriptor is the short relative label shown next to a due date.
func DueDescriptor(due *time.Time, now time.Time) string {
	if due == nil {
		return noDue
	}
	diff := -daysSince(*due, now)
	switch {
	case diff < 0:
		return fmt.Sprintf("Overdue %dd", -diff)
	case diff == 0:
		return "Due today"
	case diff == 1:
		return "Due tomorrow"
	}
	return fmt.Sprintf("Due in %dd", diff)
}
