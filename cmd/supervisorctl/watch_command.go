package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	supervisor "github.com/axondata/go-supervisor"
	"github.com/axondata/go-supervisor/internal/config"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var (
		interval     time.Duration
		followConfig bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print process state changes as they happen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes <-chan struct{}
			if followConfig {
				if !ctx.configExists {
					return fmt.Errorf("--follow-config requires a config file (run `supervisorctl config init`)")
				}
				var err error
				changes, err = config.WatchFile(cmd.Context(), ctx.resolvedPath)
				if err != nil {
					return err
				}
			}
			return runWatch(cmd.Context(), cmd.OutOrStdout(), ctx, interval, changes)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Poll interval (default from config)")
	cmd.Flags().BoolVar(&followConfig, "follow-config", false, "Reconnect when the config file changes")
	return cmd
}

// runWatch prints events until ctx is done. Each value on changes reloads
// the configuration and restarts the watch against the new client.
func runWatch(ctx context.Context, w io.Writer, cc *commandContext, interval time.Duration, changes <-chan struct{}) error {
	logger, err := cc.logger()
	if err != nil {
		return err
	}

	for {
		client, err := cc.client()
		if err != nil {
			return err
		}
		poll := interval
		if poll <= 0 {
			poll = cc.config.Watch.PollInterval()
		}

		events, cleanup, err := supervisor.Watch(ctx, client, supervisor.WithPollInterval(poll))
		if err != nil {
			return err
		}
		logger.Info("watching", "server", client.URI(), "interval", poll)

		restart, err := pumpEvents(ctx, w, events, changes)
		if cerr := cleanup(); err == nil {
			err = cerr
		}
		if err != nil || !restart {
			return err
		}

		if _, err := cc.reloadConfig(); err != nil {
			logger.Warn("config reload failed, keeping previous settings", "error", err)
			continue
		}
		logger.Info("config reloaded", "path", cc.resolvedPath)
	}
}

// pumpEvents copies events to w. It reports true when the config changed.
func pumpEvents(ctx context.Context, w io.Writer, events <-chan supervisor.WatchEvent, changes <-chan struct{}) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, nil
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			return true, nil
		case ev, ok := <-events:
			if !ok {
				return false, nil
			}
			fmt.Fprintln(w, formatEvent(time.Now(), ev))
		}
	}
}

func formatEvent(now time.Time, ev supervisor.WatchEvent) string {
	ts := now.Format(time.RFC3339)
	switch {
	case ev.Err != nil:
		return fmt.Sprintf("%s ERROR %v", ts, ev.Err)
	case ev.Removed:
		return fmt.Sprintf("%s %s REMOVED", ts, ev.Process.FullName())
	case ev.Initial:
		return fmt.Sprintf("%s %s %s pid=%d", ts, ev.Process.FullName(), ev.Process.State, ev.Process.PID)
	}
	return fmt.Sprintf("%s %s %s -> %s pid=%d", ts, ev.Process.FullName(), ev.Previous, ev.Process.State, ev.Process.PID)
}
