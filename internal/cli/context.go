package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/remnd/remnd/internal/config"
	"github.com/remnd/remnd/internal/models"
	"github.com/remnd/remnd/internal/notify"
	"github.com/remnd/remnd/internal/storage"
)

// Context carries the per-invocation dependencies shared by all commands.
type Context struct {
	Store    storage.Provider
	Config   *config.Config
	Notifier notify.Notifier
	Logger   zerolog.Logger
}

func formatLocal(epoch int64) string {
	return time.Unix(epoch, 0).Local().Format("2006-01-02 15:04:05")
}

func formatRepeat(r models.Reminder) string {
	if !r.Repeats() {
		return ""
	}
	unit := string(r.RepeatUnit)
	if r.RepeatEvery == 1 {
		unit = unit[:len(unit)-1]
	}
	return fmt.Sprintf("every %d %s", r.RepeatEvery, unit)
}
