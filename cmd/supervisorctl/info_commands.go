package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
)

func newInfoCommands(ctx *commandContext) []*cobra.Command {
	pid := &cobra.Command{
		Use:   "pid [name]",
		Short: "Print the PID of supervisord or of a process",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				if len(args) == 0 {
					pid, err := client.GetPID(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), pid)
					return nil
				}
				info, err := client.GetProcessInfo(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("%s: %s", args[0], faultText(err))
				}
				fmt.Fprintln(cmd.OutOrStdout(), info.PID)
				return nil
			})
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the supervisord and client versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				server, err := client.GetSupervisorVersion(cmd.Context())
				if err != nil {
					return err
				}
				api, err := client.GetAPIVersion(cmd.Context())
				if err != nil {
					return err
				}
				local := supervisor.GetVersion()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "supervisord: %s\n", server)
				fmt.Fprintf(out, "api:         %s\n", api)
				fmt.Fprintf(out, "client:      %s\n", local.Version)
				return nil
			})
		},
	}

	methods := &cobra.Command{
		Use:   "methods",
		Short: "List the remote methods supervisord exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				names, err := client.ListMethods(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
				return nil
			})
		},
	}

	help := &cobra.Command{
		Use:   "help-method <name>",
		Short: "Print the documentation and signature of a remote method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !strings.Contains(name, ".") {
				name = supervisor.MethodName(name)
			}
			return ctx.withClient(func(client *supervisor.Client) error {
				doc, err := client.MethodHelp(cmd.Context(), name)
				if err != nil {
					return err
				}
				sigs, err := client.MethodSignature(cmd.Context(), name)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, sig := range sigs {
					if len(sig) == 0 {
						continue
					}
					fmt.Fprintf(out, "%s(%s) -> %s\n", name, strings.Join(sig[1:], ", "), sig[0])
				}
				fmt.Fprintln(out, strings.TrimSpace(doc))
				return nil
			})
		},
	}

	return []*cobra.Command{pid, version, methods, help}
}

func newReloadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "reload",
		Aliases: []string{"reread"},
		Short:   "Reload the supervisord configuration without applying it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				changes, err := client.ReloadConfig(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(changes.Added)+len(changes.Changed)+len(changes.Removed) == 0 {
					fmt.Fprintln(out, "No config updates to processes")
					return nil
				}
				for _, name := range changes.Added {
					fmt.Fprintf(out, "%s: available\n", name)
				}
				for _, name := range changes.Changed {
					fmt.Fprintf(out, "%s: changed\n", name)
				}
				for _, name := range changes.Removed {
					fmt.Fprintf(out, "%s: disappeared\n", name)
				}
				return nil
			})
		},
	}
}

func newShutdownCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shutdown",
		Short: "Shut supervisord down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				if _, err := client.Shutdown(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Shut down")
				return nil
			})
		},
	}
}
