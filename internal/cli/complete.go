package cli

import (
	"fmt"
	"time"
)

type CompCmd struct {
	ID int64 `arg:"" help:"Reminder ID."`
}

func (c *CompCmd) Run(ctx *Context) error {
	ok, err := ctx.Store.MarkComplete(c.ID, time.Now().Unix())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no active reminder #%d (maybe already done or wrong id)", c.ID)
	}

	// A repeating reminder stays active with its due time rolled forward.
	if r, err := ctx.Store.Get(c.ID); err == nil && r.Repeats() && !r.Completed() {
		fmt.Printf("rescheduled #%d for %s\n", c.ID, formatLocal(r.DueAt))
		return nil
	}

	fmt.Printf("marked #%d as done\n", c.ID)
	return nil
}
