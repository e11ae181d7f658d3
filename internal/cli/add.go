package cli

import (
	"fmt"
	"time"

	"github.com/remnd/remnd/internal/schedule"
	"github.com/remnd/remnd/internal/storage"
)

type AddCmd struct {
	In    string `arg:"" help:"Duration until due, like \"10m\", \"1h30m\", or a bare number of minutes."`
	Title string `arg:"" help:"Reminder title."`
	Note  string `short:"n" help:"Optional note."`
	Every string `short:"e" help:"Repeat interval, like \"1d\" or \"2weeks\"."`
}

func (c *AddCmd) Run(ctx *Context) error {
	d, err := schedule.ParseDuration(c.In)
	if err != nil {
		return err
	}
	due := time.Now().Add(d)

	params := storage.CreateParams{
		Title: c.Title,
		Note:  c.Note,
		DueAt: due.Unix(),
	}
	if c.Every != "" {
		every, unit, err := schedule.ParseInterval(c.Every)
		if err != nil {
			return err
		}
		params.RepeatEvery = every
		params.RepeatUnit = unit
	}

	id, err := ctx.Store.Create(params)
	if err != nil {
		return err
	}

	fmt.Printf("added #%d due %s\n", id, due.Format("2006-01-02 15:04:05"))
	return nil
}
