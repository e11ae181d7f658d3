package cli

import (
	"time"

	"github.com/remnd/remnd/internal/schedule"
)

// RenotifyCmd nudges reminders that were already notified but are still due
// past the staleness interval. A successful send restarts the interval clock.
type RenotifyCmd struct {
	Interval time.Duration `help:"Staleness interval before a reminder is nudged again (defaults to the configured renotify_interval)."`
}

func (c *RenotifyCmd) Run(ctx *Context) error {
	interval := c.Interval
	if interval <= 0 {
		interval = ctx.Config.RenotifyInterval
	}

	now := time.Now()
	stale, err := ctx.Store.DueRenotify(now.Unix(), interval, ctx.Config.RenotifyLimit)
	if err != nil {
		return err
	}

	for _, r := range stale {
		alert := schedule.RenotifyAlert(r, now)
		if err := ctx.Notifier.Send(alert); err != nil {
			ctx.Logger.Error().Err(err).Int64("id", r.ID).Msg("re-notification failed")
			continue
		}
		if _, err := ctx.Store.MarkNotified(r.ID, now.Unix()); err != nil {
			return err
		}
		ctx.Logger.Info().
			Int64("id", r.ID).
			Str("urgency", string(alert.Urgency)).
			Msg("re-notified")
	}
	return nil
}
