package supervisor

import (
	"fmt"
	"time"
)

// ProcessState is the state code supervisord reports for a process
type ProcessState int

const (
	// ProcessStopped means the process has been stopped or was never started
	ProcessStopped ProcessState = 0
	// ProcessStarting means the process is starting due to a start request
	ProcessStarting ProcessState = 10
	// ProcessRunning means the process is running
	ProcessRunning ProcessState = 20
	// ProcessBackoff means the process entered STARTING but exited too quickly
	ProcessBackoff ProcessState = 30
	// ProcessStopping means the process is stopping due to a stop request
	ProcessStopping ProcessState = 40
	// ProcessExited means the process exited from RUNNING
	ProcessExited ProcessState = 100
	// ProcessFatal means the process could not be started successfully
	ProcessFatal ProcessState = 200
	// ProcessUnknown means the process is in an unknown state
	ProcessUnknown ProcessState = 1000
)

// String returns the supervisord state name
func (s ProcessState) String() string {
	switch s {
	case ProcessStopped:
		return "STOPPED"
	case ProcessStarting:
		return "STARTING"
	case ProcessRunning:
		return "RUNNING"
	case ProcessBackoff:
		return "BACKOFF"
	case ProcessStopping:
		return "STOPPING"
	case ProcessExited:
		return "EXITED"
	case ProcessFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// IsRunning reports whether supervisord considers the process running.
// Matches supervisord's RUNNING_STATES.
func (s ProcessState) IsRunning() bool {
	switch s {
	case ProcessStarting, ProcessRunning, ProcessBackoff, ProcessStopping:
		return true
	default:
		return false
	}
}

// SupervisorState is the state code of supervisord itself
type SupervisorState int

const (
	// SupervisorFatal means supervisord has experienced a serious error
	SupervisorFatal SupervisorState = 2
	// SupervisorRunning means supervisord is working normally
	SupervisorRunning SupervisorState = 1
	// SupervisorRestarting means supervisord is restarting
	SupervisorRestarting SupervisorState = 0
	// SupervisorShutdown means supervisord is shutting down
	SupervisorShutdown SupervisorState = -1
)

// String returns the supervisord state name
func (s SupervisorState) String() string {
	switch s {
	case SupervisorFatal:
		return "FATAL"
	case SupervisorRunning:
		return "RUNNING"
	case SupervisorRestarting:
		return "RESTARTING"
	case SupervisorShutdown:
		return "SHUTDOWN"
	default:
		return fmt.Sprintf("SupervisorState(%d)", int(s))
	}
}

// StateInfo is the reply of getState
type StateInfo struct {
	Code SupervisorState `xmlrpc:"statecode"`
	Name string          `xmlrpc:"statename"`
}

// ProcessInfo is the reply of getProcessInfo, one element of getAllProcessInfo
type ProcessInfo struct {
	Name          string       `xmlrpc:"name"`
	Group         string       `xmlrpc:"group"`
	Description   string       `xmlrpc:"description"`
	Start         int          `xmlrpc:"start"`
	Stop          int          `xmlrpc:"stop"`
	Now           int          `xmlrpc:"now"`
	State         ProcessState `xmlrpc:"state"`
	StateName     string       `xmlrpc:"statename"`
	SpawnErr      string       `xmlrpc:"spawnerr"`
	ExitStatus    int          `xmlrpc:"exitstatus"`
	Logfile       string       `xmlrpc:"logfile"`
	StdoutLogfile string       `xmlrpc:"stdout_logfile"`
	StderrLogfile string       `xmlrpc:"stderr_logfile"`
	PID           int          `xmlrpc:"pid"`
}

// FullName returns the group:name form supervisorctl uses.
// A process alone in a group of the same name is just its name.
func (p ProcessInfo) FullName() string {
	if p.Group == "" || p.Group == p.Name {
		return p.Name
	}
	return p.Group + ":" + p.Name
}

// StartTime returns the time the process was last started, or the zero time
func (p ProcessInfo) StartTime() time.Time {
	if p.Start == 0 {
		return time.Time{}
	}
	return time.Unix(int64(p.Start), 0)
}

// Uptime returns how long a running process has been up, as seen by the server clock
func (p ProcessInfo) Uptime() time.Duration {
	if !p.State.IsRunning() || p.Start == 0 || p.Now < p.Start {
		return 0
	}
	return time.Duration(p.Now-p.Start) * time.Second
}

// ProcessStatus is one element of the bulk start/stop/signal/clear replies
type ProcessStatus struct {
	Name        string `xmlrpc:"name"`
	Group       string `xmlrpc:"group"`
	Status      int    `xmlrpc:"status"`
	Description string `xmlrpc:"description"`
}

// OK reports whether the status code is FaultSuccess
func (s ProcessStatus) OK() bool {
	return s.Status == FaultSuccess
}

// TailResult is the reply of tailProcessStdoutLog and tailProcessStderrLog
type TailResult struct {
	// Bytes is the log data read
	Bytes string
	// Offset is the offset to pass to the next tail call
	Offset int
	// Overflow reports whether more than length bytes were available
	Overflow bool
}

// ConfigChanges is the reply of reloadConfig
type ConfigChanges struct {
	Added   []string
	Changed []string
	Removed []string
}

// MulticallCall is one entry of a system.multicall request
type MulticallCall struct {
	MethodName string `xmlrpc:"methodName"`
	Params     []any  `xmlrpc:"params"`
}

// NewMulticallCall builds a multicall entry, resolving name to its namespaced form
func NewMulticallCall(name string, args ...any) MulticallCall {
	if args == nil {
		args = []any{}
	}
	return MulticallCall{MethodName: MethodName(name), Params: args}
}

func decodeTailResult(raw any, err error) (TailResult, error) {
	if err != nil {
		return TailResult{}, err
	}
	parts, ok := raw.([]any)
	if !ok || len(parts) != 3 {
		return TailResult{}, fmt.Errorf("supervisor: unexpected tail reply %T", raw)
	}
	data, ok := parts[0].(string)
	if !ok {
		return TailResult{}, fmt.Errorf("supervisor: unexpected tail bytes %T", parts[0])
	}
	offset, ok := toInt(parts[1])
	if !ok {
		return TailResult{}, fmt.Errorf("supervisor: unexpected tail offset %T", parts[1])
	}
	overflow, ok := parts[2].(bool)
	if !ok {
		return TailResult{}, fmt.Errorf("supervisor: unexpected tail overflow %T", parts[2])
	}
	return TailResult{Bytes: data, Offset: offset, Overflow: overflow}, nil
}

func decodeConfigChanges(raw any, err error) (ConfigChanges, error) {
	if err != nil {
		return ConfigChanges{}, err
	}
	outer, ok := raw.([]any)
	if !ok || len(outer) != 1 {
		return ConfigChanges{}, fmt.Errorf("supervisor: unexpected reloadConfig reply %T", raw)
	}
	lists, ok := outer[0].([]any)
	if !ok || len(lists) != 3 {
		return ConfigChanges{}, fmt.Errorf("supervisor: unexpected reloadConfig lists %T", outer[0])
	}

	var changes ConfigChanges
	targets := []*[]string{&changes.Added, &changes.Changed, &changes.Removed}
	for i, target := range targets {
		names, ok := lists[i].([]any)
		if !ok {
			return ConfigChanges{}, fmt.Errorf("supervisor: unexpected reloadConfig list %T", lists[i])
		}
		for _, n := range names {
			s, ok := n.(string)
			if !ok {
				return ConfigChanges{}, fmt.Errorf("supervisor: unexpected group name %T", n)
			}
			*target = append(*target, s)
		}
	}
	return changes, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	default:
		return 0, false
	}
}
