package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/xqrs/wheel"
)

// defaultConfigPath returns where the wheel settings are looked up when no
// --config flag is given.
func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "wheel-demo", "config.yaml")
}

// defaultLogPath returns the debug log used by --debug.
func defaultLogPath() string {
	return filepath.Join(xdg.StateHome, "wheel-demo", "debug.log")
}

// loadConfig reads the wheel settings from path. A missing file at the
// default location yields the default settings.
func loadConfig(path string, explicit bool) (wheel.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return wheel.DefaultConfig(), nil
		}
		return wheel.Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := wheel.LoadConfig(f)
	if err != nil {
		return wheel.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// openLog points the wheel logger at a file. The returned function closes
// it.
func openLog(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	wheel.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() error {
		wheel.SetLogger(nil)
		return f.Close()
	}, nil
}
