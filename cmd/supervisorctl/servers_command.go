package main

import (
	"errors"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
)

func newServersCommand(ctx *commandContext) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Summarize every configured server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			mgr, err := supervisor.NewManager(cfg.ManagerServers(),
				supervisor.WithConcurrency(concurrency),
				supervisor.WithClientOptions(supervisor.WithLogger(logger)),
			)
			if err != nil {
				return err
			}

			states, stateErr := mgr.State(cmd.Context())
			infos, infoErr := mgr.AllProcessInfo(cmd.Context())

			failures := serverFailures(stateErr, infoErr)
			rows := make([][]string, 0, len(mgr.Servers()))
			for _, name := range mgr.Servers() {
				client, _ := mgr.Client(name)
				if err, ok := failures[name]; ok {
					rows = append(rows, []string{name, client.URI(), "ERROR", "-", "-", err.Error()})
					continue
				}
				running := 0
				for _, p := range infos[name] {
					if p.State == supervisor.ProcessRunning {
						running++
					}
				}
				rows = append(rows, []string{
					name,
					client.URI(),
					states[name].Name,
					strconv.Itoa(len(infos[name])),
					strconv.Itoa(running),
					"",
				})
			}

			writeRows(cmd.OutOrStdout(), serverColumns, rows)
			if len(failures) > 0 {
				return errors.Join(stateErr, infoErr)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", supervisor.DefaultConcurrency, "Maximum servers queried at once")
	return cmd
}

var serverColumns = []tableColumn{
	{Header: "SERVER"},
	{Header: "URL"},
	{Header: "STATE", Colors: stateColors},
	{Header: "PROCESSES", Align: text.AlignRight},
	{Header: "RUNNING", Align: text.AlignRight},
	{Header: "ERROR"},
}

// serverFailures indexes the first failure per server.
func serverFailures(errs ...error) map[string]error {
	out := map[string]error{}
	for _, err := range errs {
		var merr *supervisor.MultiError
		if !errors.As(err, &merr) {
			continue
		}
		for _, e := range merr.Errors {
			var serr *supervisor.ServerError
			if errors.As(e, &serr) {
				if _, seen := out[serr.Server]; !seen {
					out[serr.Server] = serr.Err
				}
			}
		}
	}
	return out
}
