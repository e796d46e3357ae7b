package supervisor

import (
	"time"
)

// Namespace is the prefix prepended, with a dot, to a remote method name.
type Namespace string

const (
	// NamespaceSupervisor is the default namespace for process control methods
	NamespaceSupervisor Namespace = "supervisor"

	// NamespaceSystem holds the XML-RPC introspection and multicall methods
	NamespaceSystem Namespace = "system"
)

// String returns the namespace prefix
func (ns Namespace) String() string {
	return string(ns)
}

// Client defaults
const (
	// DefaultTimeout is the HTTP timeout applied to every call
	DefaultTimeout = 60 * time.Second

	// DefaultUnixHost is the placeholder host used for requests over a unix socket
	DefaultUnixHost = "localhost"

	// DefaultRPCPath is the path supervisord serves XML-RPC on
	DefaultRPCPath = "/RPC2"

	// ContentType is the request content type for XML-RPC calls
	ContentType = "text/xml"
)

// Manager and Watch defaults
const (
	// DefaultConcurrency is the default number of servers a Manager talks to at once
	DefaultConcurrency = 10

	// DefaultManagerTimeout is the default per-server operation timeout for a Manager
	DefaultManagerTimeout = 5 * time.Second

	// DefaultPollInterval is the default interval between Watch polls
	DefaultPollInterval = 1 * time.Second

	// DefaultWatchBuffer is the default capacity of the Watch event channel
	DefaultWatchBuffer = 16
)
