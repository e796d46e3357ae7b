package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
)

const defaultTailBytes = 1600

func newTailCommand(ctx *commandContext) *cobra.Command {
	var (
		stderr   bool
		bytes    int
		follow   bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tail <name>",
		Short: "Print the end of a process log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bytes <= 0 {
				return errors.New("--bytes must be positive")
			}
			return ctx.withClient(func(client *supervisor.Client) error {
				tail := client.TailProcessStdoutLog
				if stderr {
					tail = client.TailProcessStderrLog
				}
				return tailLog(cmd.Context(), cmd.OutOrStdout(), tail, args[0], bytes, follow, interval)
			})
		},
	}

	cmd.Flags().BoolVar(&stderr, "stderr", false, "Read the stderr log instead of stdout")
	cmd.Flags().IntVar(&bytes, "bytes", defaultTailBytes, "Number of bytes to read")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new output")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Poll interval when following")
	return cmd
}

type tailFunc func(ctx context.Context, name string, offset, length int) (supervisor.TailResult, error)

// tailLog prints the last length bytes, then, when following, everything
// written after the returned offset until ctx is done.
func tailLog(ctx context.Context, w io.Writer, tail tailFunc, name string, length int, follow bool, interval time.Duration) error {
	res, err := tail(ctx, name, 0, length)
	if err != nil {
		return fmt.Errorf("%s: %s", name, faultText(err))
	}
	fmt.Fprint(w, res.Bytes)
	if !follow {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	offset := res.Offset
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		res, err := tail(ctx, name, offset, length)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("%s: %s", name, faultText(err))
		}
		fmt.Fprint(w, res.Bytes)
		offset = res.Offset
	}
}

func newMaintailCommand(ctx *commandContext) *cobra.Command {
	var bytes int
	cmd := &cobra.Command{
		Use:   "maintail",
		Short: "Print the end of the supervisord main log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bytes <= 0 {
				return errors.New("--bytes must be positive")
			}
			return ctx.withClient(func(client *supervisor.Client) error {
				// A negative offset with zero length reads from the end.
				data, err := client.ReadLog(cmd.Context(), -bytes, 0)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), data)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&bytes, "bytes", defaultTailBytes, "Number of bytes to read")
	return cmd
}

func newClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <name|all>...",
		Short: "Clear process log files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := processAction{
				name: "clear",
				past: "cleared",
				single: func(ctx context.Context, c *supervisor.Client, name string, _ bool) (bool, error) {
					return c.ClearProcessLogs(ctx, name)
				},
				group: func(ctx context.Context, c *supervisor.Client, name string, _ bool) ([]supervisor.ProcessStatus, error) {
					return nil, errors.New("clearing a group is not supported; name processes or use all")
				},
				all: func(ctx context.Context, c *supervisor.Client, _ bool) ([]supervisor.ProcessStatus, error) {
					return c.ClearAllProcessLogs(ctx)
				},
			}
			return ctx.withClient(func(client *supervisor.Client) error {
				return failureError(runProcessAction(cmd.Context(), cmd.OutOrStdout(), client, action, args, false))
			})
		},
	}
}
