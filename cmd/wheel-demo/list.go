package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xqrs/wheel"
	"github.com/xqrs/wheel/picker"
)

var listCyclic bool

var listCmd = &cobra.Command{
	Use:   "list <item>...",
	Short: "Pick one of the given items",
	Long: `Pick one of the given items with a single wheel and print it.

Example:
  wheel-demo list --cyclic red green blue`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath(cmd), cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("cyclic") {
			cfg.Cyclic = listCyclic
		}

		w := wheel.NewWheel().SetAdapter(wheel.NewStringAdapter(args...))
		if err := w.ApplyConfig(cfg); err != nil {
			return err
		}
		p := picker.New().SetShowHelp(true).AddColumn(w, picker.WithName("item"))

		values, ok, err := choose(p)
		if err != nil || !ok {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[values["item"]])
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listCyclic, "cyclic", false, "wrap around at the ends")
	rootCmd.AddCommand(listCmd)
}
