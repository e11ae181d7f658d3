package cli

import "fmt"

type DelCmd struct {
	ID int64 `arg:"" help:"Reminder ID."`
}

func (c *DelCmd) Run(ctx *Context) error {
	ok, err := ctx.Store.Delete(c.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no reminder #%d", c.ID)
	}
	fmt.Printf("deleted #%d\n", c.ID)
	return nil
}
