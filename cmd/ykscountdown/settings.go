package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/asalkapakli/ykscountdown/internal/errors"
)

func newSettingsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect, export, import or reset the stored settings",
		Long: `Manage the persisted dashboard settings outside the dashboard.

Use 'ykscountdown settings show' to print the committed settings.
Use 'ykscountdown settings export' and 'import' to move them between machines.
Older exports in the legacy link layout are migrated on import.`,
	}

	cmd.AddCommand(newSettingsShowCmd(root))
	cmd.AddCommand(newSettingsPathCmd(root))
	cmd.AddCommand(newSettingsExportCmd(root))
	cmd.AddCommand(newSettingsImportCmd(root))
	cmd.AddCommand(newSettingsResetCmd(root))

	return cmd
}

func newSettingsShowCmd(root *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the committed settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			defer a.Close()

			var data []byte
			switch strings.ToLower(format) {
			case "json":
				data, err = a.store.Export()
			case "yaml":
				data, err = yaml.Marshal(a.store.Current())
			default:
				return fmt.Errorf("--format: %q is not json or yaml", format)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(data))
			if len(data) > 0 && data[len(data)-1] != '\n' {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: json|yaml")
	return cmd
}

func newSettingsPathCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file and settings live",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:   %s\n", a.configPath)
			fmt.Fprintf(out, "settings: %s\n", a.settingsPath())
			return nil
		},
	}
}

func newSettingsExportCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the committed settings as JSON",
		Long:  `Write the committed settings as JSON to file, or to stdout when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.store.Export()
			if err != nil {
				return err
			}
			data = append(data, '\n')
			if len(args) == 0 || args[0] == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings exported to %s\n", args[0])
			return nil
		},
	}
}

func newSettingsImportCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the settings with an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			a, err := loadApp(root)
			if err != nil {
				return err
			}
			defer a.Close()

			cfg, err := a.store.Import(data)
			if err != nil {
				return errors.WrapImportError(err, args[0], a.cfg.Storage.Dir)
			}
			a.logger.LogSettingsEvent("imported", a.cfg.Storage.Key, nil)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported settings for %q (%d exams, %d links)\n",
				cfg.School.Title, len(cfg.Exams), len(cfg.SocialLinks))
			return nil
		},
	}
}

func newSettingsResetCmd(root *rootFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset discards every saved change; pass --yes to confirm")
			}
			a, err := loadApp(root)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.store.Reset(); err != nil {
				return errors.WrapStorageError(err, a.cfg.Storage.Dir)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
