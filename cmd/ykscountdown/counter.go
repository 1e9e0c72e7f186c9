package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asalkapakli/ykscountdown/internal/counter"
	"github.com/asalkapakli/ykscountdown/internal/errors"
)

func newCounterCmd(root *rootFlags) *cobra.Command {
	var (
		dryRun bool
		title  string
	)
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Register a visit and print the visit count",
		Long: `Send one increment to the visit counter for the school title and print
the new count. --dry-run prints the counter key and URL without sending.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			defer a.Close()

			if title == "" {
				title = a.store.Current().School.Title
			}
			key := counter.Slug(title)
			client := counter.NewClient(a.cfg.Counter.BaseURL, a.cfg.Counter.Namespace, a.cfg.CounterTimeout(), a.logger)
			url := client.URL(key)

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "key: %s\n", key)
				fmt.Fprintf(out, "url: %s\n", url)
				return nil
			}
			if !a.cfg.Counter.Enabled {
				return fmt.Errorf("visit counter is disabled (counter.enabled is false)")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout := a.cfg.CounterTimeout(); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			n, err := client.Hit(ctx, title)
			if err != nil {
				return errors.WrapCounterError(err, url)
			}
			fmt.Fprintln(out, counter.Format(n))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the counter key and URL without sending a request")
	cmd.Flags().StringVar(&title, "title", "", "School title to count (default: the stored title)")
	return cmd
}
