package supervisor

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
	"vawter.tech/stopper"
)

// WatchEvent represents a process state change seen while watching a server
type WatchEvent struct {
	// Process is the latest info for the process that changed
	Process ProcessInfo
	// Previous is the state before the change; equal to Process.State on the initial snapshot
	Previous ProcessState
	// Initial is set for events from the first poll
	Initial bool
	// Removed is set when the process disappeared from the process list
	Removed bool
	// Err is set when a poll failed; the other fields are then empty
	Err error
}

// WatchCleanupFunc stops a watch and waits for its goroutine to exit
type WatchCleanupFunc func() error

// WatchOption configures Watch
type WatchOption func(*watchConfig)

type watchConfig struct {
	interval time.Duration
	buffer   int
}

// WithPollInterval sets the minimum interval between polls
func WithPollInterval(d time.Duration) WatchOption {
	return func(c *watchConfig) {
		c.interval = d
	}
}

// WithWatchBuffer sets the capacity of the event channel
func WithWatchBuffer(n int) WatchOption {
	return func(c *watchConfig) {
		c.buffer = n
	}
}

// ErrInvalidPollInterval indicates a non-positive Watch interval
var ErrInvalidPollInterval = errors.New("supervisor: poll interval must be positive")

// Watch polls lister for the process list and emits an event for every
// process whose state or PID changed since the previous poll. The first
// poll emits every process with Initial set. Poll errors are delivered as
// events and polling continues. The channel is closed once ctx is done or
// the cleanup function is called.
func Watch(ctx context.Context, lister ProcessLister, opts ...WatchOption) (<-chan WatchEvent, WatchCleanupFunc, error) {
	cfg := watchConfig{
		interval: DefaultPollInterval,
		buffer:   DefaultWatchBuffer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.interval <= 0 {
		return nil, nil, ErrInvalidPollInterval
	}
	if cfg.buffer < 0 {
		cfg.buffer = 0
	}

	ch := make(chan WatchEvent, cfg.buffer)
	limiter := rate.NewLimiter(rate.Every(cfg.interval), 1)

	pollCtx, cancel := context.WithCancel(ctx)
	sctx := stopper.WithContext(ctx)

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	// Bridge stopper shutdown into the poll context so a blocked call or
	// limiter wait returns promptly.
	sctx.Go(func(sctx *stopper.Context) error {
		select {
		case <-sctx.Stopping():
		case <-pollCtx.Done():
		}
		cancel()
		return nil
	})

	sctx.Go(func(sctx *stopper.Context) error {
		defer close(ch)
		defer cancel()

		send := func(ev WatchEvent) bool {
			select {
			case ch <- ev:
				return true
			case <-pollCtx.Done():
				return false
			}
		}

		var last map[string]ProcessInfo
		for {
			if err := limiter.Wait(pollCtx); err != nil {
				return nil
			}

			infos, err := lister.GetAllProcessInfo(pollCtx)
			if err != nil {
				if pollCtx.Err() != nil {
					return nil
				}
				if !send(WatchEvent{Err: err}) {
					return nil
				}
				continue
			}

			for _, ev := range diffProcesses(last, infos) {
				if !send(ev) {
					return nil
				}
			}

			next := make(map[string]ProcessInfo, len(infos))
			for _, p := range infos {
				next[p.FullName()] = p
			}
			last = next
		}
	})

	return ch, cleanup, nil
}

// diffProcesses returns the events between two polls. A nil prev marks
// the initial snapshot.
func diffProcesses(prev map[string]ProcessInfo, current []ProcessInfo) []WatchEvent {
	var events []WatchEvent
	seen := make(map[string]struct{}, len(current))

	for _, p := range current {
		key := p.FullName()
		seen[key] = struct{}{}

		if prev == nil {
			events = append(events, WatchEvent{Process: p, Previous: p.State, Initial: true})
			continue
		}

		old, ok := prev[key]
		if !ok {
			events = append(events, WatchEvent{Process: p, Previous: ProcessUnknown})
			continue
		}
		if old.State != p.State || old.PID != p.PID {
			events = append(events, WatchEvent{Process: p, Previous: old.State})
		}
	}

	for key, old := range prev {
		if _, ok := seen[key]; !ok {
			events = append(events, WatchEvent{Process: old, Previous: old.State, Removed: true})
		}
	}

	return events
}
