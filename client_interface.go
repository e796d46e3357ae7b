package supervisor

import (
	"context"
)

// Caller is the generic dispatch surface of a Client.
// Code that only forwards calls should accept a Caller.
type Caller interface {
	// Call invokes a remote method and returns the decoded reply
	Call(ctx context.Context, name string, args ...any) (any, error)

	// CallInto invokes a remote method and unmarshals the reply into reply
	CallInto(ctx context.Context, name string, reply any, args ...any) error
}

// ProcessLister returns the state of every process a supervisord manages.
// It is what Watch polls.
type ProcessLister interface {
	GetAllProcessInfo(ctx context.Context) ([]ProcessInfo, error)
}

var (
	_ Caller        = (*Client)(nil)
	_ ProcessLister = (*Client)(nil)
)
