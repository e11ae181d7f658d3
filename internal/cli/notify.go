package cli

import (
	"time"

	"github.com/remnd/remnd/internal/schedule"
)

// NotifyCmd is the first-notification pass: each due reminder that has never
// been notified gets one alert, then its notified time is recorded so the
// next run skips it.
type NotifyCmd struct{}

func (c *NotifyCmd) Run(ctx *Context) error {
	now := time.Now()
	due, err := ctx.Store.DueUnnotified(now.Unix(), ctx.Config.NotifyLimit)
	if err != nil {
		return err
	}

	for _, r := range due {
		alert := schedule.FirstAlert(r, now)
		if err := ctx.Notifier.Send(alert); err != nil {
			ctx.Logger.Error().Err(err).Int64("id", r.ID).Msg("notification failed")
			continue
		}
		if _, err := ctx.Store.MarkNotified(r.ID, now.Unix()); err != nil {
			return err
		}
		ctx.Logger.Info().
			Int64("id", r.ID).
			Str("urgency", string(alert.Urgency)).
			Msg("notified")
	}
	return nil
}
