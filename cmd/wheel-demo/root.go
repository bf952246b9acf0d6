package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xqrs/wheel"
	"github.com/xqrs/wheel/picker"
)

var (
	configFile string
	logFile    string
	debug      bool
	startAt    string
)

var rootCmd = &cobra.Command{
	Use:   "wheel-demo",
	Short: "Pick a time of day with three wheels",
	Long: `Pick a time of day with an hour, a minute and a second wheel.

Drag a wheel with the mouse, fling it, scroll it or click an item. The
focused wheel also follows the keyboard.

KEYBINDINGS:
    ↑/k ↓/j     Previous/next item
    pgup/pgdn   Half a wheel up/down
    ←/h →/l     Previous/next wheel
    enter       Print the picked value and quit
    esc/q       Quit without a value

Settings are read from $XDG_CONFIG_HOME/wheel-demo/config.yaml unless
--config names another file. A border setting there frames each wheel
and titles it with its field name.

Example:
  wheel-demo --at 07:30:00`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !debug && logFile == "" {
			return nil
		}
		path := logFile
		if path == "" {
			path = defaultLogPath()
		}
		closeLog, err := openLog(path)
		if err != nil {
			return err
		}
		cobra.OnFinalize(func() { closeLog() })
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		at := time.Now()
		if startAt != "" {
			parsed, err := time.Parse(time.TimeOnly, startAt)
			if err != nil {
				return fmt.Errorf("invalid --at: %w", err)
			}
			at = parsed
		}

		cfg, err := loadConfig(configPath(cmd), cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		p := picker.New().SetShowHelp(true)
		for _, field := range []struct {
			name  string
			last  int
			value int
		}{
			{"hh", 23, at.Hour()},
			{"mm", 59, at.Minute()},
			{"ss", 59, at.Second()},
		} {
			adapter := wheel.NewNumericAdapter(0, field.last).
				SetFormatFunc(func(v int) string { return fmt.Sprintf("%02d", v) })
			w := wheel.NewWheel().SetAdapter(adapter)
			columnCfg := cfg
			if columnCfg.Border != "" && columnCfg.Border != "none" && columnCfg.Title == "" {
				columnCfg.Title = field.name
			}
			if err := w.ApplyConfig(columnCfg); err != nil {
				return err
			}
			// Time fields always wrap around.
			w.SetCyclic(true).SetCurrentItem(field.value, false)
			p.AddColumn(w, picker.WithName(field.name), picker.WithWidth(6))
		}

		values, ok, err := choose(p)
		if err != nil || !ok {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%02d:%02d:%02d\n", values["hh"], values["mm"], values["ss"])
		return nil
	},
}

func configPath(cmd *cobra.Command) string {
	if cmd.Flags().Changed("config") {
		return configFile
	}
	return defaultConfigPath()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "wheel settings file (default $XDG_CONFIG_HOME/wheel-demo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write debug records to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug records to $XDG_STATE_HOME/wheel-demo/debug.log")
	rootCmd.Flags().StringVar(&startAt, "at", "", "initial time as hh:mm:ss (default now)")
}
