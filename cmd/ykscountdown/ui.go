package main

import (
	"github.com/spf13/cobra"

	"github.com/asalkapakli/ykscountdown/internal/tui"
)

func newUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the countdown dashboard",
		Long: `Launch the interactive countdown dashboard.

Keys: s opens the settings drawer, y copies a text summary to the
clipboard, ? toggles help and q quits. Changes made in the drawer are
previewed live and saved only when applied with enter.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(flags)
		},
	}
}

func runDashboard(flags *rootFlags) error {
	a, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(&tui.AppState{
		Store:          a.store,
		Location:       a.cfg.Location(),
		Tick:           a.cfg.Tick(),
		Counter:        a.counterClient(),
		CounterTimeout: a.cfg.CounterTimeout(),
		Logger:         a.logger,
	})
}
