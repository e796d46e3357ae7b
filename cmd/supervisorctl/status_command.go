package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [name...]",
		Short: "Show process status",
		Long:  "Show the status of all processes, or of the named processes. Use group:* for every process in a group.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				infos, err := selectProcesses(cmd.Context(), client, args)
				if err != nil {
					return err
				}
				writeRows(cmd.OutOrStdout(), statusColumns, statusRows(infos))
				return nil
			})
		},
	}
}

var statusColumns = []tableColumn{
	{Header: "NAME"},
	{Header: "STATE", Colors: stateColors},
	{Header: "PID", Align: text.AlignRight},
	{Header: "UPTIME", Align: text.AlignRight},
	{Header: "DESCRIPTION"},
}

// selectProcesses returns every process when names is empty. Otherwise it
// resolves each name, expanding group:* against the full listing.
func selectProcesses(ctx context.Context, client *supervisor.Client, names []string) ([]supervisor.ProcessInfo, error) {
	if len(names) == 0 {
		return client.GetAllProcessInfo(ctx)
	}

	var all []supervisor.ProcessInfo
	var out []supervisor.ProcessInfo
	for _, name := range names {
		group, ok := strings.CutSuffix(name, ":*")
		if !ok {
			info, err := client.GetProcessInfo(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out = append(out, info)
			continue
		}

		if all == nil {
			var err error
			if all, err = client.GetAllProcessInfo(ctx); err != nil {
				return nil, err
			}
		}
		matched := false
		for _, info := range all {
			if info.Group == group {
				out = append(out, info)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("%s: no such group", group)
		}
	}
	return out, nil
}

func statusRows(infos []supervisor.ProcessInfo) [][]string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		pid, uptime := "-", "-"
		if info.State.IsRunning() && info.PID > 0 {
			pid = strconv.Itoa(info.PID)
			uptime = formatUptime(info.Uptime())
		}
		rows = append(rows, []string{
			info.FullName(),
			info.State.String(),
			pid,
			uptime,
			info.Description,
		})
	}
	return rows
}
