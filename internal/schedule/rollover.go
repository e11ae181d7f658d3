package schedule

import (
	"time"

	"github.com/remnd/remnd/internal/models"
)

// NextDue advances a repeating reminder's due time by one interval. Months
// move by calendar arithmetic, so monthly reminders track the day-of-month
// rather than a fixed number of seconds; every other unit is exact duration
// arithmetic (a week is exactly 7×86400 seconds). The interval is always
// applied to the stored due time, never the completion time, so a reminder
// completed late keeps its original cadence.
func NextDue(due time.Time, every int64, unit models.RepeatUnit) time.Time {
	switch unit {
	case models.RepeatMonths:
		return due.AddDate(0, int(every), 0)
	case models.RepeatWeeks:
		return due.Add(time.Duration(every) * 7 * 24 * time.Hour)
	case models.RepeatDays:
		return due.Add(time.Duration(every) * 24 * time.Hour)
	case models.RepeatHours:
		return due.Add(time.Duration(every) * time.Hour)
	case models.RepeatMinutes:
		return due.Add(time.Duration(every) * time.Minute)
	default:
		return due.Add(time.Duration(every) * time.Second)
	}
}
