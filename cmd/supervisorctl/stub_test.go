package main

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubSupervisord answers XML-RPC calls from canned replies keyed by the
// full method name.
type stubSupervisord struct {
	srv *httptest.Server

	mu      sync.Mutex
	replies map[string]string
	status  int
	calls   []stubCall
}

type stubCall struct {
	Method string
	Params []string
	// Auth is "user:password" when basic auth was sent
	Auth string
}

type stubRequest struct {
	MethodName string `xml:"methodName"`
	Params     []struct {
		Value struct {
			Inner string `xml:",innerxml"`
		} `xml:"value"`
	} `xml:"params>param"`
}

func newStub(t *testing.T) *stubSupervisord {
	t.Helper()
	s := &stubSupervisord{replies: map[string]string{}}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *stubSupervisord) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req stubRequest
	if err := xml.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	call := stubCall{Method: req.MethodName}
	if user, pass, ok := r.BasicAuth(); ok {
		call.Auth = user + ":" + pass
	}
	for _, p := range req.Params {
		call.Params = append(call.Params, strings.TrimSpace(p.Value.Inner))
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	status := s.status
	reply, ok := s.replies[req.MethodName]
	s.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	if !ok {
		reply = stubFault(1, "UNKNOWN_METHOD")
	}
	fmt.Fprint(w, reply)
}

func (s *stubSupervisord) URL() string {
	return s.srv.URL + "/RPC2"
}

func (s *stubSupervisord) reply(method, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method] = `<?xml version="1.0"?><methodResponse><params><param><value>` +
		value + `</value></param></params></methodResponse>`
}

func (s *stubSupervisord) fault(method string, code int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method] = stubFault(code, msg)
}

func (s *stubSupervisord) failWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *stubSupervisord) recorded() []stubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stubCall(nil), s.calls...)
}

func stubFault(code int, msg string) string {
	return fmt.Sprintf(`<?xml version="1.0"?><methodResponse><fault><value><struct>`+
		`<member><name>faultCode</name><value><int>%d</int></value></member>`+
		`<member><name>faultString</name><value><string>%s</string></value></member>`+
		`</struct></value></fault></methodResponse>`, code, msg)
}

func xmlStr(s string) string { return "<string>" + s + "</string>" }

func xmlInt(n int) string { return fmt.Sprintf("<int>%d</int>", n) }

func xmlBool(b bool) string {
	if b {
		return "<boolean>1</boolean>"
	}
	return "<boolean>0</boolean>"
}

func xmlArray(values ...string) string {
	var b strings.Builder
	b.WriteString("<array><data>")
	for _, v := range values {
		b.WriteString("<value>" + v + "</value>")
	}
	b.WriteString("</data></array>")
	return b.String()
}

func xmlStruct(pairs ...string) string {
	var b strings.Builder
	b.WriteString("<struct>")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString("<member><name>" + pairs[i] + "</name><value>" + pairs[i+1] + "</value></member>")
	}
	b.WriteString("</struct>")
	return b.String()
}

func xmlProcess(name, group string, state, pid int) string {
	desc := "stopped"
	if pid > 0 {
		desc = fmt.Sprintf("pid %d, uptime 0:01:00", pid)
	}
	return xmlStruct(
		"name", xmlStr(name),
		"group", xmlStr(group),
		"description", xmlStr(desc),
		"start", xmlInt(1700000000),
		"stop", xmlInt(0),
		"now", xmlInt(1700000060),
		"state", xmlInt(state),
		"statename", xmlStr("X"),
		"spawnerr", xmlStr(""),
		"exitstatus", xmlInt(0),
		"logfile", xmlStr(""),
		"stdout_logfile", xmlStr(""),
		"stderr_logfile", xmlStr(""),
		"pid", xmlInt(pid),
	)
}

func xmlStatus(name string, status int, desc string) string {
	return xmlStruct("name", xmlStr(name), "group", xmlStr(name), "status", xmlInt(status), "description", xmlStr(desc))
}

// writeServers writes a config listing the stubs in order; the first is the default.
func writeServers(t *testing.T, servers map[string]*stubSupervisord, order ...string) string {
	t.Helper()
	t.Setenv("SUPERVISOR_URL", "")
	t.Setenv("SUPERVISOR_USERNAME", "")

	var b strings.Builder
	b.WriteString("[logging]\nlevel = \"error\"\n\n[watch]\npoll_interval_ms = 5\n")
	for _, name := range order {
		fmt.Fprintf(&b, "\n[[servers]]\nname = %q\nurl = %q\n", name, servers[name].URL())
		if name == "secure" {
			b.WriteString("username = \"admin\"\npassword = \"hunter2\"\n")
		}
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// syncBuffer is a bytes.Buffer safe for a writer and a concurrent reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
