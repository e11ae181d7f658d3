package schedule

import (
	"fmt"
	"time"

	"github.com/remnd/remnd/internal/models"
)

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// CriticalAfter is how long a reminder must be overdue before first and
// re-notification alerts escalate from normal to critical urgency.
const CriticalAfter = 48 * time.Hour

// DefaultRenotifyInterval is the default staleness window before an
// already-notified reminder gets a fresh nudge.
const DefaultRenotifyInterval = 24 * time.Hour

// Notification is a fully decided alert. Building one has no side effects;
// delivery is the transport's job.
type Notification struct {
	Title    string
	Body     string
	Urgency  Urgency
	DedupKey string
	Icon     string
	Expire   time.Duration // zero means the transport's default timeout
}

// FirstAlert builds the one-time notification for a reminder that has just
// become due.
func FirstAlert(r models.Reminder, now time.Time) Notification {
	return Notification{
		Title:    r.DisplayTitle(),
		Body:     alertBody(r),
		Urgency:  alertUrgency(r, now),
		DedupKey: dedupKey(r),
		Icon:     "appointment-soon",
	}
}

// RenotifyAlert builds the repeated nudge for a reminder that was already
// notified but is still due past the staleness interval.
func RenotifyAlert(r models.Reminder, now time.Time) Notification {
	return Notification{
		Title:    "Still due: " + r.DisplayTitle(),
		Body:     alertBody(r),
		Urgency:  alertUrgency(r, now),
		DedupKey: dedupKey(r),
		Icon:     "appointment-missed",
	}
}

// CatchupAlert builds the session-start sweep notification. Catch-up alerts
// are a convenience, not an alarm: always low urgency with a short expiry,
// and sending one never updates the reminder's notified time.
func CatchupAlert(r models.Reminder, expire time.Duration) Notification {
	return Notification{
		Title:    r.DisplayTitle(),
		Body:     alertBody(r),
		Urgency:  UrgencyLow,
		DedupKey: dedupKey(r),
		Icon:     "appointment-soon",
		Expire:   expire,
	}
}

func alertUrgency(r models.Reminder, now time.Time) Urgency {
	if r.Overdue(now) > CriticalAfter {
		return UrgencyCritical
	}
	return UrgencyNormal
}

func alertBody(r models.Reminder) string {
	if r.Note != "" {
		return r.Note
	}
	return "Due " + time.Unix(r.DueAt, 0).Local().Format("2006-01-02 15:04")
}

// dedupKey is stable per reminder so a desktop notifier replaces an earlier
// toast for the same reminder instead of stacking duplicates.
func dedupKey(r models.Reminder) string {
	return fmt.Sprintf("remnd-%d", r.ID)
}
