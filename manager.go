package supervisor

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Server describes one supervisord a Manager talks to
type Server struct {
	// Name identifies the server in results and errors
	Name string
	// URI is the XML-RPC endpoint
	URI string
	// Username and Password are optional basic auth credentials
	Username string
	Password string
	// Timeout overrides DefaultTimeout for this server's client when positive
	Timeout time.Duration
}

// Manager handles operations on multiple supervisord servers concurrently.
// It provides bulk operations with configurable concurrency and timeouts.
type Manager struct {
	// Concurrency is the maximum number of concurrent operations
	Concurrency int
	// Timeout is the per-operation timeout
	Timeout time.Duration

	clientOpts []Option
	names      []string
	clients    map[string]*Client
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithConcurrency sets the maximum number of concurrent operations
func WithConcurrency(n int) ManagerOption {
	return func(m *Manager) {
		m.Concurrency = n
	}
}

// WithOperationTimeout sets the per-operation timeout
func WithOperationTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.Timeout = d
	}
}

// WithClientOptions sets options applied to every server's Client
// before its own credentials and timeout
func WithClientOptions(opts ...Option) ManagerOption {
	return func(m *Manager) {
		m.clientOpts = append(m.clientOpts, opts...)
	}
}

// NewManager creates a Manager for the given servers.
// Every server must have a unique, non-empty name and a valid URI.
func NewManager(servers []Server, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultManagerTimeout,
		clients:     make(map[string]*Client, len(servers)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.Concurrency < 1 {
		m.Concurrency = 1
	}

	merr := &MultiError{}
	for _, srv := range servers {
		if srv.Name == "" {
			merr.Add(fmt.Errorf("server %q: missing name", srv.URI))
			continue
		}
		if _, dup := m.clients[srv.Name]; dup {
			merr.Add(fmt.Errorf("server %q: duplicate name", srv.Name))
			continue
		}

		clientOpts := append([]Option{}, m.clientOpts...)
		clientOpts = append(clientOpts, WithCredentials(srv.Username, srv.Password))
		if srv.Timeout > 0 {
			clientOpts = append(clientOpts, WithTimeout(srv.Timeout))
		}

		client, err := New(srv.URI, clientOpts...)
		if err != nil {
			merr.Add(&ServerError{Server: srv.Name, Method: "new", Err: err})
			continue
		}
		m.clients[srv.Name] = client
		m.names = append(m.names, srv.Name)
	}
	if err := merr.Err(); err != nil {
		return nil, err
	}

	sort.Strings(m.names)
	return m, nil
}

// Servers returns the configured server names in sorted order
func (m *Manager) Servers() []string {
	return append([]string(nil), m.names...)
}

// Client returns the client for the named server
func (m *Manager) Client(name string) (*Client, bool) {
	c, ok := m.clients[name]
	return c, ok
}

// fanOut runs op against every server, at most m.Concurrency at a time.
// Failures are wrapped in ServerError and aggregated.
func fanOut[T any](ctx context.Context, m *Manager, method string, op func(context.Context, *Client) (T, error)) (map[string]T, error) {
	results := make(map[string]T, len(m.names))
	if len(m.names) == 0 {
		return results, nil
	}

	// Semaphore for concurrency control
	sem := make(chan struct{}, m.Concurrency)

	var wg sync.WaitGroup
	var mu sync.Mutex
	merr := &MultiError{}

	for _, name := range m.names {
		client := m.clients[name]

		wg.Add(1)
		go func(name string, client *Client) {
			defer wg.Done()

			// Acquire semaphore slot
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				merr.Add(&ServerError{Server: name, Method: method, Err: ctx.Err()})
				mu.Unlock()
				return
			}

			opCtx := ctx
			if m.Timeout > 0 {
				var cancel context.CancelFunc
				opCtx, cancel = context.WithTimeout(ctx, m.Timeout)
				defer cancel()
			}

			result, err := op(opCtx, client)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				merr.Add(&ServerError{Server: name, Method: method, Err: err})
				return
			}
			results[name] = result
		}(name, client)
	}

	wg.Wait()

	return results, merr.Err()
}

// Call invokes the named method with args on every server
func (m *Manager) Call(ctx context.Context, name string, args ...any) (map[string]any, error) {
	return fanOut(ctx, m, name, func(ctx context.Context, c *Client) (any, error) {
		return c.Call(ctx, name, args...)
	})
}

// AllProcessInfo retrieves the process list of every server
func (m *Manager) AllProcessInfo(ctx context.Context) (map[string][]ProcessInfo, error) {
	return fanOut(ctx, m, "getAllProcessInfo", func(ctx context.Context, c *Client) ([]ProcessInfo, error) {
		return c.GetAllProcessInfo(ctx)
	})
}

// State retrieves the supervisord state of every server
func (m *Manager) State(ctx context.Context) (map[string]StateInfo, error) {
	return fanOut(ctx, m, "getState", func(ctx context.Context, c *Client) (StateInfo, error) {
		return c.GetState(ctx)
	})
}

// StartAll starts all processes on every server
func (m *Manager) StartAll(ctx context.Context, wait bool) (map[string][]ProcessStatus, error) {
	return fanOut(ctx, m, "startAllProcesses", func(ctx context.Context, c *Client) ([]ProcessStatus, error) {
		return c.StartAllProcesses(ctx, wait)
	})
}

// StopAll stops all processes on every server
func (m *Manager) StopAll(ctx context.Context, wait bool) (map[string][]ProcessStatus, error) {
	return fanOut(ctx, m, "stopAllProcesses", func(ctx context.Context, c *Client) ([]ProcessStatus, error) {
		return c.StopAllProcesses(ctx, wait)
	})
}
