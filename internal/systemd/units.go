package systemd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Unit is one systemd user unit file to install.
type Unit struct {
	Name     string
	Contents string
	// Enable lists the unit in `systemctl --user enable --now` after install.
	Enable bool
}

// Units returns the user units driving the three notification passes: a
// minutely due-check timer, an hourly renotify timer, and a catch-up service
// run once at session start.
func Units(binPath string) []Unit {
	return []Unit{
		{
			Name: "remnd-due.service",
			Contents: fmt.Sprintf(`[Unit]
Description=remnd due-reminder check

[Service]
Type=oneshot
ExecStart=%s notify
`, binPath),
		},
		{
			Name: "remnd-due.timer",
			Contents: `[Unit]
Description=Run the remnd due-reminder check every minute

[Timer]
OnBootSec=1min
OnUnitActiveSec=1min

[Install]
WantedBy=timers.target
`,
			Enable: true,
		},
		{
			Name: "remnd-renotify.service",
			Contents: fmt.Sprintf(`[Unit]
Description=remnd re-notification sweep

[Service]
Type=oneshot
ExecStart=%s renotify
`, binPath),
		},
		{
			Name: "remnd-renotify.timer",
			Contents: `[Unit]
Description=Run the remnd re-notification sweep hourly

[Timer]
OnBootSec=5min
OnUnitActiveSec=1h

[Install]
WantedBy=timers.target
`,
			Enable: true,
		},
		{
			Name: "remnd-catchup.service",
			Contents: fmt.Sprintf(`[Unit]
Description=remnd login catch-up notifications

[Service]
Type=oneshot
ExecStart=%s catchup

[Install]
WantedBy=default.target
`, binPath),
			Enable: true,
		},
	}
}

// UserUnitDir returns the systemd user unit directory, creating it if needed.
func UserUnitDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	dir := filepath.Join(configDir, "systemd", "user")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create unit directory: %w", err)
	}
	return dir, nil
}

// Install writes the unit files and enables the timers and the catch-up
// service. Returns the paths written.
func Install(binPath string) ([]string, error) {
	dir, err := UserUnitDir()
	if err != nil {
		return nil, err
	}

	units := Units(binPath)
	var written []string
	for _, u := range units {
		path := filepath.Join(dir, u.Name)
		if err := os.WriteFile(path, []byte(u.Contents), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", u.Name, err)
		}
		written = append(written, path)
	}

	if err := systemctl("daemon-reload"); err != nil {
		return written, err
	}
	for _, u := range units {
		if !u.Enable {
			continue
		}
		if err := systemctl("enable", "--now", u.Name); err != nil {
			return written, err
		}
	}
	return written, nil
}

// Uninstall disables the units and removes their files. Missing files are
// not an error, so uninstall is safe to repeat.
func Uninstall(binPath string) error {
	dir, err := UserUnitDir()
	if err != nil {
		return err
	}

	units := Units(binPath)
	for _, u := range units {
		if u.Enable {
			// Ignore failures here: the unit may never have been enabled.
			_ = systemctl("disable", "--now", u.Name)
		}
	}
	for _, u := range units {
		path := filepath.Join(dir, u.Name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", u.Name, err)
		}
	}
	return systemctl("daemon-reload")
}

func systemctl(args ...string) error {
	args = append([]string{"--user"}, args...)
	out, err := exec.Command("systemctl", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %v failed: %w: %s", args, err, out)
	}
	return nil
}
