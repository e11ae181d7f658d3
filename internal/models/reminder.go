package models

import "time"

type RepeatUnit string

const (
	RepeatSeconds RepeatUnit = "seconds"
	RepeatMinutes RepeatUnit = "minutes"
	RepeatHours   RepeatUnit = "hours"
	RepeatDays    RepeatUnit = "days"
	RepeatWeeks   RepeatUnit = "weeks"
	RepeatMonths  RepeatUnit = "months"
)

// Reminder represents one reminder row. All timestamps are epoch seconds
// (UTC); NotifiedAt and CompletedAt are zero when unset. RepeatEvery and
// RepeatUnit are set together or not at all: a reminder is either one-shot
// or repeating. For a repeating reminder DueAt is the next occurrence.
type Reminder struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Note        string     `json:"note,omitempty"`
	DueAt       int64      `json:"due_at"`
	CreatedAt   int64      `json:"created_at"`
	NotifiedAt  int64      `json:"notified_at,omitempty"`
	CompletedAt int64      `json:"completed_at,omitempty"`
	RepeatEvery int64      `json:"repeat_every,omitempty"`
	RepeatUnit  RepeatUnit `json:"repeat_unit,omitempty"`
}

func (r Reminder) Completed() bool {
	return r.CompletedAt != 0
}

func (r Reminder) Notified() bool {
	return r.NotifiedAt != 0
}

func (r Reminder) Repeats() bool {
	return r.RepeatEvery > 0 && r.RepeatUnit != ""
}

// Due reports whether the reminder is due at the given time: past its due
// time and not completed.
func (r Reminder) Due(now time.Time) bool {
	return !r.Completed() && r.DueAt <= now.Unix()
}

// Overdue returns how long the reminder has been past its due time. The
// result is negative for a reminder that is not yet due.
func (r Reminder) Overdue(now time.Time) time.Duration {
	return now.Sub(time.Unix(r.DueAt, 0))
}

// DisplayTitle returns the title to show the user, substituting a generic
// name when the stored title is empty.
func (r Reminder) DisplayTitle() string {
	if r.Title == "" {
		return "Reminder"
	}
	return r.Title
}
