package schedule

import (
	"testing"
	"time"

	"github.com/remnd/remnd/internal/models"
)

func reminderDueAgo(overdue time.Duration, now time.Time) models.Reminder {
	return models.Reminder{
		ID:    7,
		Title: "Pay rent",
		DueAt: now.Add(-overdue).Unix(),
	}
}

func TestFirstAlert_UrgencyEscalation(t *testing.T) {
	// Whole seconds, so the 48h boundary case is exact.
	now := time.Unix(time.Now().Unix(), 0)

	cases := []struct {
		overdue time.Duration
		want    Urgency
	}{
		{time.Minute, UrgencyNormal},
		{47 * time.Hour, UrgencyNormal},
		{48 * time.Hour, UrgencyNormal}, // escalates strictly past 48h
		{48*time.Hour + time.Second, UrgencyCritical},
		{72 * time.Hour, UrgencyCritical},
	}

	for _, tc := range cases {
		alert := FirstAlert(reminderDueAgo(tc.overdue, now), now)
		if alert.Urgency != tc.want {
			t.Errorf("overdue %v: urgency = %s, want %s", tc.overdue, alert.Urgency, tc.want)
		}
	}
}

func TestRenotifyAlert_SharesEscalationAndDedupKey(t *testing.T) {
	now := time.Now()
	r := reminderDueAgo(72*time.Hour, now)

	first := FirstAlert(r, now)
	again := RenotifyAlert(r, now)

	if again.Urgency != UrgencyCritical {
		t.Errorf("renotify urgency = %s, want critical", again.Urgency)
	}
	if first.DedupKey == "" || first.DedupKey != again.DedupKey {
		t.Errorf("dedup keys differ: %q vs %q", first.DedupKey, again.DedupKey)
	}
}

func TestCatchupAlert_AlwaysLowWithExpiry(t *testing.T) {
	now := time.Now()
	// Even a long-overdue reminder stays low urgency in the catch-up pass.
	r := reminderDueAgo(100*time.Hour, now)

	alert := CatchupAlert(r, 10*time.Second)
	if alert.Urgency != UrgencyLow {
		t.Errorf("catch-up urgency = %s, want low", alert.Urgency)
	}
	if alert.Expire != 10*time.Second {
		t.Errorf("catch-up expire = %v, want 10s", alert.Expire)
	}
}

func TestAlertBody_PrefersNote(t *testing.T) {
	now := time.Now()
	r := reminderDueAgo(time.Minute, now)
	r.Note = "transfer before 5pm"

	if alert := FirstAlert(r, now); alert.Body != "transfer before 5pm" {
		t.Errorf("body = %q, want the note", alert.Body)
	}

	r.Note = ""
	if alert := FirstAlert(r, now); alert.Body == "" {
		t.Error("body is empty without a note, want a due-time phrase")
	}
}

func TestFirstAlert_EmptyTitleFallsBack(t *testing.T) {
	now := time.Now()
	r := models.Reminder{ID: 1, DueAt: now.Unix()}

	if alert := FirstAlert(r, now); alert.Title != "Reminder" {
		t.Errorf("title = %q, want %q", alert.Title, "Reminder")
	}
}
