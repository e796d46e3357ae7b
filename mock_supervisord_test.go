package supervisor

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// recordedCall is one methodCall received by mockSupervisord
type recordedCall struct {
	Method string
	// Params holds the inner XML of each <value>, e.g. "<string>web</string>"
	Params []string
	Header http.Header
}

type wireMethodCall struct {
	XMLName    xml.Name `xml:"methodCall"`
	MethodName string   `xml:"methodName"`
	Params     []struct {
		Value struct {
			Inner string `xml:",innerxml"`
		} `xml:"value"`
	} `xml:"params>param"`
}

// mockSupervisord is a fake supervisord XML-RPC endpoint.
// Replies are keyed by the namespaced method name; unknown methods get
// an UNKNOWN_METHOD fault like the real server.
type mockSupervisord struct {
	t      testing.TB
	server *httptest.Server

	mu      sync.Mutex
	calls   []recordedCall
	replies map[string]string
	status  int
	auth    *[2]string
}

func newMockSupervisord(t testing.TB) *mockSupervisord {
	t.Helper()
	m := &mockSupervisord{
		t:       t,
		replies: make(map[string]string),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

// URL returns the XML-RPC endpoint of the mock
func (m *mockSupervisord) URL() string {
	return m.server.URL + DefaultRPCPath
}

func (m *mockSupervisord) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var call wireMethodCall
	if err := xml.Unmarshal(body, &call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec := recordedCall{Method: call.MethodName, Header: r.Header.Clone()}
	for _, p := range call.Params {
		rec.Params = append(rec.Params, strings.TrimSpace(p.Value.Inner))
	}

	m.mu.Lock()
	m.calls = append(m.calls, rec)
	status := m.status
	auth := m.auth
	reply, ok := m.replies[call.MethodName]
	m.mu.Unlock()

	if auth != nil {
		user, pass, has := r.BasicAuth()
		if !has || user != auth[0] || pass != auth[1] {
			w.Header().Set("WWW-Authenticate", `Basic realm="default"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
	}
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if !ok {
		reply = faultXML(FaultUnknownMethod, "UNKNOWN_METHOD")
	}

	w.Header().Set("Content-Type", "text/xml")
	_, _ = io.WriteString(w, reply)
}

// reply makes method answer with the given XML-RPC value
func (m *mockSupervisord) reply(method, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies[method] = responseXML(value)
}

// fault makes method answer with an XML-RPC fault
func (m *mockSupervisord) fault(method string, code int, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies[method] = faultXML(code, msg)
}

// failWith makes every request answer with an HTTP error status
func (m *mockSupervisord) failWith(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}

// requireAuth makes every request demand the given basic auth credentials
func (m *mockSupervisord) requireAuth(user, pass string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = &[2]string{user, pass}
}

func (m *mockSupervisord) recorded() []recordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]recordedCall(nil), m.calls...)
}

func (m *mockSupervisord) lastCall() recordedCall {
	m.t.Helper()
	calls := m.recorded()
	if len(calls) == 0 {
		m.t.Fatal("no calls recorded")
	}
	return calls[len(calls)-1]
}

func responseXML(value string) string {
	return `<?xml version="1.0"?><methodResponse><params><param><value>` +
		value + `</value></param></params></methodResponse>`
}

func faultXML(code int, msg string) string {
	return fmt.Sprintf(`<?xml version="1.0"?><methodResponse><fault><value><struct>`+
		`<member><name>faultCode</name><value><int>%d</int></value></member>`+
		`<member><name>faultString</name><value><string>%s</string></value></member>`+
		`</struct></value></fault></methodResponse>`, code, msg)
}

func xmlString(s string) string {
	return "<string>" + s + "</string>"
}

func xmlInt(n int) string {
	return fmt.Sprintf("<int>%d</int>", n)
}

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

// xmlStruct renders members given as name, value pairs
func xmlStruct(pairs ...string) string {
	var b strings.Builder
	b.WriteString("<struct>")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString("<member><name>" + pairs[i] + "</name><value>" + pairs[i+1] + "</value></member>")
	}
	b.WriteString("</struct>")
	return b.String()
}

func xmlProcessInfo(name, group string, state ProcessState, pid int) string {
	return xmlStruct(
		"name", xmlString(name),
		"group", xmlString(group),
		"description", xmlString(fmt.Sprintf("pid %d, uptime 0:01:00", pid)),
		"start", xmlInt(1700000000),
		"stop", xmlInt(0),
		"now", xmlInt(1700000060),
		"state", xmlInt(int(state)),
		"statename", xmlString(state.String()),
		"spawnerr", xmlString(""),
		"exitstatus", xmlInt(0),
		"logfile", xmlString("/var/log/"+name+".log"),
		"stdout_logfile", xmlString("/var/log/"+name+".log"),
		"stderr_logfile", xmlString(""),
		"pid", xmlInt(pid),
	)
}
