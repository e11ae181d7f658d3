package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/remnd/remnd/internal/models"
	"github.com/remnd/remnd/internal/schedule"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reminders (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    title        TEXT NOT NULL,
    note         TEXT,
    due_at       INTEGER NOT NULL,
    created_at   INTEGER NOT NULL,
    notified_at  INTEGER,
    completed_at INTEGER,
    repeat_every INTEGER,
    repeat_unit  TEXT
);
CREATE INDEX IF NOT EXISTS idx_reminders_due_at ON reminders(due_at);
`

const reminderCols = "id, title, note, due_at, created_at, notified_at, completed_at, repeat_every, repeat_unit"

// SQLiteStore persists reminders in a single SQLite database. The schema is
// created idempotently on Init, so there is no separate initialization step
// for first use.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps concurrent timer-triggered processes from blocking each other.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		db.Close()
		return fmt.Errorf("failed to set synchronous mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Create(p CreateParams) (int64, error) {
	if (p.RepeatEvery != 0) != (p.RepeatUnit != "") {
		return 0, fmt.Errorf("%w: repeat magnitude and unit must be set together", ErrValidation)
	}
	if p.RepeatEvery < 0 {
		return 0, fmt.Errorf("%w: repeat magnitude must be positive", ErrValidation)
	}

	now := time.Now().Unix()
	res, err := s.db.Exec(
		`INSERT INTO reminders (title, note, due_at, created_at, repeat_every, repeat_unit)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.Title, nullString(p.Note), p.DueAt, now, nullInt(p.RepeatEvery), nullString(string(p.RepeatUnit)),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert reminder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) Get(id int64) (models.Reminder, error) {
	row := s.db.QueryRow("SELECT "+reminderCols+" FROM reminders WHERE id = ?", id)
	r, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return models.Reminder{}, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}
	return r, nil
}

// List returns reminders ordered by due time then id. The default view only
// includes active reminders; with includeCompleted, active rows still sort
// before completed ones.
func (s *SQLiteStore) List(includeCompleted bool) ([]models.Reminder, error) {
	query := `SELECT ` + reminderCols + ` FROM reminders
		WHERE completed_at IS NULL
		ORDER BY due_at ASC, id ASC`
	if includeCompleted {
		query = `SELECT ` + reminderCols + ` FROM reminders
			ORDER BY CASE WHEN completed_at IS NULL THEN 0 ELSE 1 END, due_at ASC, id ASC`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (s *SQLiteStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkNotified records the time of the most recent notification. It is safe
// to call repeatedly; each call just moves the timestamp.
func (s *SQLiteStore) MarkNotified(id, at int64) (bool, error) {
	res, err := s.db.Exec("UPDATE reminders SET notified_at = ? WHERE id = ?", at, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark notified: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkComplete completes an active reminder. A one-shot reminder gets its
// completed_at set; a repeating reminder instead rolls due_at forward by one
// interval from the stored due time and clears notified_at, staying active.
// Returns false when the id does not exist or is already completed.
func (s *SQLiteStore) MarkComplete(id, at int64) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	row := tx.QueryRow("SELECT "+reminderCols+" FROM reminders WHERE id = ? AND completed_at IS NULL", id)
	r, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load reminder: %w", err)
	}

	if r.Repeats() {
		next := schedule.NextDue(time.Unix(r.DueAt, 0).UTC(), r.RepeatEvery, r.RepeatUnit).Unix()
		_, err = tx.Exec("UPDATE reminders SET due_at = ?, notified_at = NULL WHERE id = ?", next, id)
	} else {
		_, err = tx.Exec("UPDATE reminders SET completed_at = ? WHERE id = ?", at, id)
	}
	if err != nil {
		return false, fmt.Errorf("failed to complete reminder: %w", err)
	}

	return true, tx.Commit()
}

// DueUnnotified selects active, due reminders that have never been notified.
func (s *SQLiteStore) DueUnnotified(now int64, limit int) ([]models.Reminder, error) {
	rows, err := s.db.Query(`SELECT `+reminderCols+` FROM reminders
		WHERE completed_at IS NULL
		  AND due_at <= ?
		  AND (notified_at IS NULL OR notified_at = 0)
		ORDER BY due_at ASC, id ASC
		LIMIT ?`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// DueActive selects every active, due reminder regardless of notification
// state. Used by the one-time login catch-up sweep.
func (s *SQLiteStore) DueActive(now int64, limit int) ([]models.Reminder, error) {
	rows, err := s.db.Query(`SELECT `+reminderCols+` FROM reminders
		WHERE completed_at IS NULL
		  AND due_at <= ?
		ORDER BY due_at ASC, id ASC
		LIMIT ?`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// DueRenotify selects active, due reminders whose last notification is at
// least the staleness interval in the past.
func (s *SQLiteStore) DueRenotify(now int64, interval time.Duration, limit int) ([]models.Reminder, error) {
	threshold := now - int64(interval/time.Second)
	rows, err := s.db.Query(`SELECT `+reminderCols+` FROM reminders
		WHERE completed_at IS NULL
		  AND due_at <= ?
		  AND notified_at IS NOT NULL
		  AND notified_at > 0
		  AND notified_at <= ?
		ORDER BY due_at ASC, id ASC
		LIMIT ?`, now, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var r models.Reminder
	var note, unit sql.NullString
	var notified, completed, every sql.NullInt64

	err := row.Scan(&r.ID, &r.Title, &note, &r.DueAt, &r.CreatedAt, &notified, &completed, &every, &unit)
	if err != nil {
		return models.Reminder{}, err
	}

	r.Note = note.String
	r.NotifiedAt = notified.Int64
	r.CompletedAt = completed.Int64
	r.RepeatEvery = every.Int64
	r.RepeatUnit = models.RepeatUnit(unit.String)

	return r, nil
}

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	var reminders []models.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: n != 0}
}
