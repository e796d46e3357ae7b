package supervisor

import (
	"errors"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// Common construction errors
var (
	// ErrEmptyURI indicates New was called without a server URI
	ErrEmptyURI = errors.New("supervisor: empty server uri")

	// ErrUnsupportedScheme indicates the server URI is not http, https or unix
	ErrUnsupportedScheme = errors.New("supervisor: unsupported uri scheme")
)

// Fault is an XML-RPC fault returned by supervisord.
// It is the codec's own error type; calls return it unwrapped.
type Fault = xmlrpc.FaultError

// Fault codes defined by supervisord's xmlrpc.Faults
const (
	FaultUnknownMethod        = 1
	FaultIncorrectParameters  = 2
	FaultBadArguments         = 3
	FaultSignatureUnsupported = 4
	FaultShutdownState        = 6
	FaultBadName              = 10
	FaultBadSignal            = 11
	FaultNoFile               = 20
	FaultNotExecutable        = 21
	FaultFailed               = 30
	FaultAbnormalTermination  = 40
	FaultSpawnError           = 50
	FaultAlreadyStarted       = 60
	FaultNotRunning           = 70
	FaultSuccess              = 80
	FaultAlreadyAdded         = 90
	FaultStillRunning         = 91
	FaultCantReread           = 92
)

// FaultCode returns the code of the XML-RPC fault in err's chain
func FaultCode(err error) (int, bool) {
	var f Fault
	if errors.As(err, &f) {
		return f.Code, true
	}
	return 0, false
}

// HTTPError is returned when supervisord answers with a non-2xx status,
// for example 401 when credentials are missing or wrong
type HTTPError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Status is the HTTP status line
	Status string
}

// Error returns a formatted error message
func (e *HTTPError) Error() string {
	return fmt.Sprintf("supervisor: http status %s", e.Status)
}

// ServerError represents a failed call against one server of a Manager
type ServerError struct {
	// Server is the configured server name
	Server string
	// Method is the bare method name that was called
	Method string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *ServerError) Error() string {
	return fmt.Sprintf("supervisor %s on %q: %v", e.Method, e.Server, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ServerError) Unwrap() error {
	return e.Err
}

// MultiError aggregates multiple errors from bulk operations
type MultiError struct {
	// Errors contains all accumulated errors
	Errors []error
}

// Error returns a summary of the accumulated errors
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred", len(m.Errors))
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Add appends an error to the collection if it's not nil
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Err returns nil if no errors occurred, otherwise returns the MultiError itself
func (m *MultiError) Err() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}
