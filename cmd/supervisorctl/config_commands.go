package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/axondata/go-supervisor/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	cmd.AddCommand(newConfigInitCommand(ctx))
	cmd.AddCommand(newConfigShowCommand(ctx))
	return cmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var (
		path      string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				target = strings.TrimSpace(ctx.configPath)
			}
			if target == "" {
				var err error
				target, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			} else {
				var err error
				target, err = config.ExpandPath(target)
				if err != nil {
					return err
				}
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace)", target)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Destination path (defaults to --config or ~/.config/supervisorctl/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite the file if it already exists")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			source := ctx.resolvedPath
			if !ctx.configExists {
				source += " (not found, using defaults)"
			}
			fmt.Fprintf(out, "config:         %s\n", source)
			fmt.Fprintf(out, "default server: %s\n", cfg.DefaultServer)
			fmt.Fprintf(out, "logging:        %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
			fmt.Fprintf(out, "poll interval:  %s\n\n", cfg.Watch.PollInterval())

			rows := make([][]string, 0, len(cfg.Servers))
			for _, s := range cfg.Servers {
				auth := "-"
				if s.Username != "" {
					auth = s.Username + ":****"
				}
				timeout := "default"
				if t := s.Timeout(); t > 0 {
					timeout = t.String()
				}
				rows = append(rows, []string{s.Name, s.URL, auth, timeout})
			}
			writeRows(out, []tableColumn{{Header: "NAME"}, {Header: "URL"}, {Header: "AUTH"}, {Header: "TIMEOUT"}}, rows)
			return nil
		},
	}
}
