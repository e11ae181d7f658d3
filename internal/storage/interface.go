package storage

import (
	"errors"
	"time"

	"github.com/remnd/remnd/internal/models"
)

// ErrNotFound is returned by Get when no reminder has the requested id.
var ErrNotFound = errors.New("reminder not found")

// ErrValidation is returned by Create when the supplied fields are
// inconsistent, before anything is written.
var ErrValidation = errors.New("invalid reminder")

// CreateParams are the caller-writable fields of a new reminder. RepeatEvery
// and RepeatUnit must be supplied together or not at all.
type CreateParams struct {
	Title       string
	Note        string
	DueAt       int64
	RepeatEvery int64
	RepeatUnit  models.RepeatUnit
}

// Provider is the persistence boundary for reminders. Every mutation is a
// single fully-committed transaction, so concurrent short-lived processes
// (the CLI and the timer-triggered passes) can share one database safely.
// The boolean results report whether a matching row was affected; a missing
// or already-terminal id is a false outcome, not an error.
type Provider interface {
	Init() error
	Close() error

	Create(p CreateParams) (int64, error)
	Get(id int64) (models.Reminder, error)
	List(includeCompleted bool) ([]models.Reminder, error)
	Delete(id int64) (bool, error)

	MarkNotified(id, at int64) (bool, error)
	MarkComplete(id, at int64) (bool, error)

	// Selection queries, each bounded by "now" (epoch seconds) and a row
	// limit, ordered by due_at then id ascending.
	DueUnnotified(now int64, limit int) ([]models.Reminder, error)
	DueActive(now int64, limit int) ([]models.Reminder, error)
	DueRenotify(now int64, interval time.Duration, limit int) ([]models.Reminder, error)

	Path() string
}
