package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type ListCmd struct {
	All bool `help:"Include completed reminders."`
}

func (c *ListCmd) Run(ctx *Context) error {
	reminders, err := ctx.Store.List(c.All)
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		fmt.Println("No reminders.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style { return tableCellStyle }).
		Headers("ID", "DUE", "TITLE", "REPEAT", "DONE", "NOTE")

	for _, r := range reminders {
		done := ""
		if r.Completed() {
			done = "✓"
		}
		t.Row(
			strconv.FormatInt(r.ID, 10),
			formatLocal(r.DueAt),
			r.DisplayTitle(),
			formatRepeat(r),
			done,
			r.Note,
		)
	}

	fmt.Println(t)
	return nil
}
