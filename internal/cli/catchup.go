package cli

import (
	"time"

	"github.com/remnd/remnd/internal/schedule"
)

// CatchupCmd is the once-per-session sweep: every currently due reminder
// gets a low-urgency, short-lived toast regardless of notification state.
// It deliberately does not mark anything notified, so the first-notification
// and renotify passes are unaffected; a reminder due right at login can
// therefore receive both a catch-up toast and a first notification.
type CatchupCmd struct{}

func (c *CatchupCmd) Run(ctx *Context) error {
	now := time.Now()
	due, err := ctx.Store.DueActive(now.Unix(), ctx.Config.CatchupLimit)
	if err != nil {
		return err
	}

	for _, r := range due {
		alert := schedule.CatchupAlert(r, ctx.Config.CatchupExpire)
		if err := ctx.Notifier.Send(alert); err != nil {
			ctx.Logger.Error().Err(err).Int64("id", r.ID).Msg("catch-up notification failed")
			continue
		}
		ctx.Logger.Info().Int64("id", r.ID).Msg("catch-up notified")
	}
	return nil
}
