package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
)

// processAction binds one verb to the single, group and bulk remote calls.
type processAction struct {
	name   string
	past   string
	single func(context.Context, *supervisor.Client, string, bool) (bool, error)
	group  func(context.Context, *supervisor.Client, string, bool) ([]supervisor.ProcessStatus, error)
	all    func(context.Context, *supervisor.Client, bool) ([]supervisor.ProcessStatus, error)
	// ignore lists fault codes that are not reported as failures
	ignore []int
}

var (
	startAction = processAction{
		name: "start",
		past: "started",
		single: func(ctx context.Context, c *supervisor.Client, name string, wait bool) (bool, error) {
			return c.StartProcess(ctx, name, wait)
		},
		group: func(ctx context.Context, c *supervisor.Client, name string, wait bool) ([]supervisor.ProcessStatus, error) {
			return c.StartProcessGroup(ctx, name, wait)
		},
		all: func(ctx context.Context, c *supervisor.Client, wait bool) ([]supervisor.ProcessStatus, error) {
			return c.StartAllProcesses(ctx, wait)
		},
	}
	stopAction = processAction{
		name: "stop",
		past: "stopped",
		single: func(ctx context.Context, c *supervisor.Client, name string, wait bool) (bool, error) {
			return c.StopProcess(ctx, name, wait)
		},
		group: func(ctx context.Context, c *supervisor.Client, name string, wait bool) ([]supervisor.ProcessStatus, error) {
			return c.StopProcessGroup(ctx, name, wait)
		},
		all: func(ctx context.Context, c *supervisor.Client, wait bool) ([]supervisor.ProcessStatus, error) {
			return c.StopAllProcesses(ctx, wait)
		},
	}
)

func newControlCommands(ctx *commandContext) []*cobra.Command {
	start := newProcessActionCommand(ctx, "Start processes", startAction)
	stop := newProcessActionCommand(ctx, "Stop processes", stopAction)

	var noWait bool
	restart := &cobra.Command{
		Use:   "restart <name|group:*|all>...",
		Short: "Stop then start processes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				quietStop := stopAction
				quietStop.ignore = []int{supervisor.FaultNotRunning}
				failed := runProcessAction(cmd.Context(), cmd.OutOrStdout(), client, quietStop, args, !noWait)
				failed += runProcessAction(cmd.Context(), cmd.OutOrStdout(), client, startAction, args, !noWait)
				return failureError(failed)
			})
		},
	}
	restart.Flags().BoolVar(&noWait, "no-wait", false, "Return without waiting for state transitions")

	return []*cobra.Command{start, stop, restart}
}

func newProcessActionCommand(ctx *commandContext, short string, action processAction) *cobra.Command {
	var noWait bool
	cmd := &cobra.Command{
		Use:   action.name + " <name|group:*|all>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *supervisor.Client) error {
				failed := runProcessAction(cmd.Context(), cmd.OutOrStdout(), client, action, args, !noWait)
				return failureError(failed)
			})
		},
	}
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "Return without waiting for state transitions")
	return cmd
}

// runProcessAction applies action to every target and prints one line per
// process. It returns the number of failures.
func runProcessAction(ctx context.Context, w io.Writer, client *supervisor.Client, action processAction, targets []string, wait bool) int {
	failed := 0
	for _, target := range targets {
		var statuses []supervisor.ProcessStatus
		var err error

		switch group, isGroup := strings.CutSuffix(target, ":*"); {
		case target == "all":
			statuses, err = action.all(ctx, client, wait)
		case isGroup:
			statuses, err = action.group(ctx, client, group, wait)
		default:
			_, err = action.single(ctx, client, target, wait)
			if err == nil {
				fmt.Fprintf(w, "%s: %s\n", target, action.past)
				continue
			}
		}

		if err != nil {
			if action.ignores(err) {
				continue
			}
			fmt.Fprintf(w, "%s: ERROR (%s)\n", target, faultText(err))
			failed++
			continue
		}

		for _, st := range statuses {
			name := processStatusName(st)
			if st.OK() {
				fmt.Fprintf(w, "%s: %s\n", name, action.past)
				continue
			}
			if action.ignoresCode(st.Status) {
				continue
			}
			fmt.Fprintf(w, "%s: ERROR (%s)\n", name, st.Description)
			failed++
		}
	}
	return failed
}

func (a processAction) ignores(err error) bool {
	code, ok := supervisor.FaultCode(err)
	return ok && a.ignoresCode(code)
}

func (a processAction) ignoresCode(code int) bool {
	for _, c := range a.ignore {
		if c == code {
			return true
		}
	}
	return false
}

func processStatusName(st supervisor.ProcessStatus) string {
	return supervisor.ProcessInfo{Name: st.Name, Group: st.Group}.FullName()
}

// faultText renders supervisord faults the way supervisorctl does.
func faultText(err error) string {
	code, ok := supervisor.FaultCode(err)
	if !ok {
		return err.Error()
	}
	switch code {
	case supervisor.FaultBadName:
		return "no such process"
	case supervisor.FaultAlreadyStarted:
		return "already started"
	case supervisor.FaultNotRunning:
		return "not running"
	case supervisor.FaultSpawnError:
		return "spawn error"
	case supervisor.FaultAbnormalTermination:
		return "abnormal termination"
	case supervisor.FaultBadSignal:
		return "bad signal"
	}
	return err.Error()
}

func failureError(failed int) error {
	if failed == 0 {
		return nil
	}
	if failed == 1 {
		return errors.New("1 process failed")
	}
	return fmt.Errorf("%d processes failed", failed)
}

func newSignalCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "signal <signal> <name|group:*|all>...",
		Short: "Send a signal to processes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := strings.ToUpper(args[0])
			action := processAction{
				name: "signal",
				past: "signalled",
				single: func(ctx context.Context, c *supervisor.Client, name string, _ bool) (bool, error) {
					return c.SignalProcess(ctx, name, sig)
				},
				group: func(ctx context.Context, c *supervisor.Client, name string, _ bool) ([]supervisor.ProcessStatus, error) {
					return c.SignalProcessGroup(ctx, name, sig)
				},
				all: func(ctx context.Context, c *supervisor.Client, _ bool) ([]supervisor.ProcessStatus, error) {
					return c.SignalAllProcesses(ctx, sig)
				},
			}
			return ctx.withClient(func(client *supervisor.Client) error {
				return failureError(runProcessAction(cmd.Context(), cmd.OutOrStdout(), client, action, args[1:], false))
			})
		},
	}
}
