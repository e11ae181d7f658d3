package cli

import (
	"fmt"
	"os"

	"github.com/remnd/remnd/internal/systemd"
)

type InstallCmd struct{}

func (c *InstallCmd) Run(ctx *Context) error {
	bin, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve binary path: %w", err)
	}

	written, err := systemd.Install(bin)
	for _, path := range written {
		fmt.Printf("wrote %s\n", path)
	}
	if err != nil {
		return err
	}

	fmt.Println("timers enabled: due-check every minute, renotify hourly, catch-up at login")
	return nil
}

type UninstallCmd struct{}

func (c *UninstallCmd) Run(ctx *Context) error {
	bin, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve binary path: %w", err)
	}

	if err := systemd.Uninstall(bin); err != nil {
		return err
	}
	fmt.Println("removed remnd systemd user units")
	return nil
}
