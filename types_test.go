package supervisor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessState(t *testing.T) {
	tests := []struct {
		state   ProcessState
		name    string
		running bool
	}{
		{ProcessStopped, "STOPPED", false},
		{ProcessStarting, "STARTING", true},
		{ProcessRunning, "RUNNING", true},
		{ProcessBackoff, "BACKOFF", true},
		{ProcessStopping, "STOPPING", true},
		{ProcessExited, "EXITED", false},
		{ProcessFatal, "FATAL", false},
		{ProcessUnknown, "UNKNOWN", false},
		{ProcessState(12345), "UNKNOWN", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.state.String())
		assert.Equal(t, tt.running, tt.state.IsRunning(), tt.name)
	}
}

func TestSupervisorState(t *testing.T) {
	assert.Equal(t, "RUNNING", SupervisorRunning.String())
	assert.Equal(t, "SHUTDOWN", SupervisorShutdown.String())
	assert.Equal(t, "SupervisorState(9)", SupervisorState(9).String())
}

func TestProcessInfoHelpers(t *testing.T) {
	p := ProcessInfo{Name: "worker_1", Group: "worker", State: ProcessRunning, Start: 100, Now: 160}
	assert.Equal(t, "worker:worker_1", p.FullName())
	assert.Equal(t, 60*time.Second, p.Uptime())
	assert.Equal(t, time.Unix(100, 0), p.StartTime())

	p = ProcessInfo{Name: "web", Group: "web", State: ProcessExited, Start: 100, Now: 160}
	assert.Equal(t, "web", p.FullName())
	assert.Zero(t, p.Uptime())

	assert.True(t, ProcessInfo{}.StartTime().IsZero())
}

func TestNewMulticallCall(t *testing.T) {
	call := NewMulticallCall("getProcessInfo", "web")
	assert.Equal(t, "supervisor.getProcessInfo", call.MethodName)
	assert.Equal(t, []any{"web"}, call.Params)

	call = NewMulticallCall("methodHelp", "supervisor.getPID")
	assert.Equal(t, "system.methodHelp", call.MethodName)

	call = NewMulticallCall("getPID")
	assert.NotNil(t, call.Params)
	assert.Empty(t, call.Params)
}

func TestDecodeTailResult(t *testing.T) {
	got, err := decodeTailResult([]any{"abc", int64(10), true}, nil)
	require.NoError(t, err)
	assert.Equal(t, TailResult{Bytes: "abc", Offset: 10, Overflow: true}, got)

	callErr := errors.New("boom")
	_, err = decodeTailResult(nil, callErr)
	assert.Same(t, callErr, err)

	bad := []any{
		"abc",
		[]any{"abc", int64(1)},
		[]any{1, int64(1), true},
		[]any{"abc", "1", true},
		[]any{"abc", int64(1), "true"},
	}
	for _, raw := range bad {
		_, err := decodeTailResult(raw, nil)
		assert.Error(t, err, "%v", raw)
	}
}

func TestDecodeConfigChanges(t *testing.T) {
	raw := []any{[]any{
		[]any{"a"},
		[]any{"b", "c"},
		[]any{},
	}}
	got, err := decodeConfigChanges(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, ConfigChanges{Added: []string{"a"}, Changed: []string{"b", "c"}}, got)

	callErr := errors.New("boom")
	_, err = decodeConfigChanges(nil, callErr)
	assert.Same(t, callErr, err)

	bad := []any{
		nil,
		[]any{},
		[]any{[]any{[]any{}, []any{}}},
		[]any{[]any{[]any{1}, []any{}, []any{}}},
		[]any{[]any{"a", []any{}, []any{}}},
	}
	for _, raw := range bad {
		_, err := decodeConfigChanges(raw, nil)
		assert.Error(t, err, "%v", raw)
	}
}

func TestMultiError(t *testing.T) {
	merr := &MultiError{}

	if err := merr.Err(); err != nil {
		t.Error("empty MultiError should return nil")
	}

	merr.Add(nil)
	if err := merr.Err(); err != nil {
		t.Error("MultiError with nil errors should return nil")
	}

	err1 := &ServerError{Server: "a", Method: "getPID", Err: Fault{Code: FaultFailed, String: "FAILED"}}
	merr.Add(err1)

	if err := merr.Err(); err == nil {
		t.Error("MultiError with errors should return non-nil")
	}

	if merr.Error() != err1.Error() {
		t.Errorf("single error message = %v, want %v", merr.Error(), err1.Error())
	}

	err2 := &ServerError{Server: "b", Method: "getPID", Err: &HTTPError{StatusCode: 401, Status: "401 Unauthorized"}}
	merr.Add(err2)

	if merr.Error() != "2 errors occurred" {
		t.Errorf("multiple errors message = %v, want '2 errors occurred'", merr.Error())
	}

	var herr *HTTPError
	require.ErrorAs(t, merr, &herr)
	assert.Equal(t, 401, herr.StatusCode)
}
