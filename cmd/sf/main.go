package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apppkg "github.com/felipeagc/sf/internal/app"
	"github.com/felipeagc/sf/internal/config"
)

var version = "dev"

func main() {
	var (
		configPath string
		showHidden bool
	)

	root := &cobra.Command{
		Use:           "sf",
		Short:         "sf is a multi-tab terminal file browser",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				if p, err := config.Path(); err == nil {
					path = p
				}
			}

			cfg := config.Default()
			if path != "" {
				var err error
				if cfg, err = config.Load(path); err != nil {
					return err
				}
			}
			if showHidden {
				cfg.ShowHidden = true
			}

			app, err := apppkg.New(cfg, newLogger())
			if err != nil {
				return fmt.Errorf("initialize: %w", err)
			}
			defer func() { _ = app.Close() }()

			app.Run()
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().BoolVar(&showHidden, "hidden", false, "start with hidden files visible")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger writes debug output to a state-dir log file; the terminal
// belongs to the UI. Logging is silently dropped when no file can be
// opened.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)

	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return log
		}
		dir = filepath.Join(home, ".local", "state")
	}

	logPath := filepath.Join(dir, "sf", "sf.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return log
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log
	}
	log.SetOutput(f)
	return log
}
