package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/remnd/remnd/internal/cli"
	"github.com/remnd/remnd/internal/config"
	"github.com/remnd/remnd/internal/notify"
	"github.com/remnd/remnd/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/remnd/config.yaml"`

	Add  cli.AddCmd  `cmd:"" help:"Add a reminder due after a duration."`
	List cli.ListCmd `cmd:"" help:"List reminders."`
	Comp cli.CompCmd `cmd:"" help:"Mark a reminder as completed by ID."`
	Del  cli.DelCmd  `cmd:"" help:"Delete a reminder by ID."`

	Notify   cli.NotifyCmd   `cmd:"" help:"Send first notifications for newly due reminders."`
	Renotify cli.RenotifyCmd `cmd:"" help:"Re-notify reminders still due past the staleness interval."`
	Catchup  cli.CatchupCmd  `cmd:"" help:"Send low-urgency notifications for everything currently due."`

	Install   cli.InstallCmd   `cmd:"" help:"Install systemd user timers for the notification passes."`
	Uninstall cli.UninstallCmd `cmd:"" help:"Remove the remnd systemd user units."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("remnd"),
		kong.Description("Personal reminder tracker with desktop notifications"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewSQLiteStore(cfg.DBPath)
	if err := store.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	appCtx := &cli.Context{
		Store:    store,
		Config:   cfg,
		Notifier: notify.New(os.Stdout),
		Logger:   logger,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger opens the file-backed logger for the timer-driven passes; stdout
// stays reserved for user-facing command output. Falls back to stderr when
// the log file cannot be opened.
func newLogger(cfg *config.Config) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	logFile, err := os.OpenFile(cfg.LogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(0o644))
	if err == nil {
		out = logFile
		closeLog = func() { logFile.Close() }
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out: out, TimeFormat: "2006-01-02_15:04:05", NoColor: true,
	}).With().Timestamp().Logger().Level(level)

	return logger, closeLog
}
