package supervisor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kolo/xmlrpc"
)

// Client forwards calls to a single supervisord over XML-RPC.
// Its configuration is fixed at construction, so a Client is safe for
// concurrent use; each call is an independent request/response exchange.
type Client struct {
	uri        string
	endpoint   string
	socketPath string

	username string
	password string

	timeout    time.Duration
	transport  http.RoundTripper
	httpClient *http.Client

	logger *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithCredentials sets the HTTP basic auth credentials.
// An empty username disables authentication.
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithTimeout sets the HTTP timeout for each call.
// Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTransport sets the round tripper used for requests.
// Ignored when WithHTTPClient is used.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithHTTPClient sets the HTTP client used for requests as-is
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger calls are traced to at debug level
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOptions applies transport options given as a key/value map.
// The recognized key is "timeout", in seconds (int or float) or as a
// time.Duration. Other keys are ignored.
func WithOptions(opts map[string]any) Option {
	return func(c *Client) {
		v, ok := opts["timeout"]
		if !ok {
			return
		}
		var d time.Duration
		switch t := v.(type) {
		case time.Duration:
			d = t
		case int:
			d = time.Duration(t) * time.Second
		case int64:
			d = time.Duration(t) * time.Second
		case float64:
			d = time.Duration(t * float64(time.Second))
		}
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a Client for the supervisord XML-RPC endpoint at uri.
// http and https URIs are used as-is; unix:///path/to/supervisor.sock
// dials the socket and posts to DefaultRPCPath.
func New(uri string, opts ...Option) (*Client, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, ErrEmptyURI
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parsing server uri: %w", err)
	}

	c := &Client{
		uri:     uri,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}

	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return nil, fmt.Errorf("server uri %q: missing host", uri)
		}
		c.endpoint = uri
	case "unix":
		if u.Path == "" {
			return nil, fmt.Errorf("server uri %q: missing socket path", uri)
		}
		c.socketPath = u.Path
		c.endpoint = "http://" + DefaultUnixHost + DefaultRPCPath
	default:
		return nil, fmt.Errorf("server uri %q: %w", uri, ErrUnsupportedScheme)
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		rt := c.transport
		if rt == nil {
			rt = c.defaultTransport()
		}
		c.httpClient = &http.Client{Timeout: c.timeout, Transport: rt}
	}

	return c, nil
}

func (c *Client) defaultTransport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if c.socketPath != "" {
		path := c.socketPath
		t.DialContext = func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", path)
		}
	}
	return t
}

// URI returns the server URI the client was constructed with
func (c *Client) URI() string {
	return c.uri
}

// Authenticated reports whether calls carry basic auth credentials
func (c *Client) Authenticated() bool {
	return c.username != ""
}

// Call invokes the named remote method and returns the decoded reply.
// The name is prefixed with its namespace (see NamespaceOf); the
// arguments are forwarded in order and unmodified. Integers decode as
// int64, arrays as []any and structs as map[string]any. Transport,
// HTTP and fault errors are returned exactly as produced.
func (c *Client) Call(ctx context.Context, name string, args ...any) (any, error) {
	var reply any
	if err := c.CallInto(ctx, name, &reply, args...); err != nil {
		return nil, err
	}
	return reply, nil
}

// CallInto invokes the named remote method and unmarshals the reply into
// reply, which must be a non-nil pointer.
func (c *Client) CallInto(ctx context.Context, name string, reply any, args ...any) error {
	method := MethodName(name)

	start := time.Now()
	err := c.invoke(ctx, method, reply, args)
	c.logger.LogAttrs(ctx, slog.LevelDebug, "supervisor call",
		slog.String("method", method),
		slog.Int("args", len(args)),
		slog.Duration("duration", time.Since(start)),
		slog.Any("error", err),
	)
	return err
}

func (c *Client) invoke(ctx context.Context, method string, reply any, args []any) error {
	body, err := xmlrpc.EncodeMethodCall(method, args...)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("User-Agent", userAgent)
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	response := xmlrpc.Response(data)
	if err := response.Err(); err != nil {
		return err
	}
	return response.Unmarshal(reply)
}
