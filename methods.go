package supervisor

// Param describes one positional argument of a remote method
type Param struct {
	// Name is the Go parameter name used by the typed wrapper
	Name string
	// Type is the Go type of the argument
	Type string
}

// MethodSpec describes one documented supervisord RPC method.
// The typed wrappers in methods_gen.go are generated from Methods.
type MethodSpec struct {
	// Name is the bare remote method name, without namespace
	Name string
	// Namespace is the namespace the method lives in
	Namespace Namespace
	// Params lists the positional arguments in wire order
	Params []Param
	// Result is the Go type the wrapper returns
	Result string
	// Decode names a func(any, error) (Result, error) that converts a raw
	// reply which cannot be unmarshaled into Result directly. Empty means
	// the reply is unmarshaled straight into Result.
	Decode string
	// Doc is the one-line description used for the wrapper's doc comment
	Doc string
}

// FullName returns the namespaced method name sent on the wire
func (m MethodSpec) FullName() string {
	return m.Namespace.String() + "." + m.Name
}

var (
	pName   = Param{Name: "name", Type: "string"}
	pWait   = Param{Name: "wait", Type: "bool"}
	pOffset = Param{Name: "offset", Type: "int"}
	pLength = Param{Name: "length", Type: "int"}
	pSignal = Param{Name: "signal", Type: "string"}
)

// SystemMethods is the fixed set of names that belong to the system namespace.
// Every name not listed here is sent to the supervisor namespace.
var SystemMethods = map[string]struct{}{
	"listMethods":     {},
	"methodHelp":      {},
	"methodSignature": {},
	"multicall":       {},
}

// Methods lists every documented supervisord RPC method in API order
var Methods = []MethodSpec{
	// Status and control
	{Name: "getAPIVersion", Namespace: NamespaceSupervisor, Result: "string",
		Doc: "returns the version of the RPC API used by supervisord."},
	{Name: "getSupervisorVersion", Namespace: NamespaceSupervisor, Result: "string",
		Doc: "returns the version of the supervisor package in use by supervisord."},
	{Name: "getIdentification", Namespace: NamespaceSupervisor, Result: "string",
		Doc: "returns the identifying string of supervisord."},
	{Name: "getState", Namespace: NamespaceSupervisor, Result: "StateInfo",
		Doc: "returns the current state of supervisord."},
	{Name: "getPID", Namespace: NamespaceSupervisor, Result: "int",
		Doc: "returns the PID of supervisord."},
	{Name: "readLog", Namespace: NamespaceSupervisor, Params: []Param{pOffset, pLength}, Result: "string",
		Doc: "reads length bytes from the main log starting at offset."},
	{Name: "clearLog", Namespace: NamespaceSupervisor, Result: "bool",
		Doc: "clears the main log."},
	{Name: "shutdown", Namespace: NamespaceSupervisor, Result: "bool",
		Doc: "shuts down the supervisor process."},
	{Name: "restart", Namespace: NamespaceSupervisor, Result: "bool",
		Doc: "restarts the supervisor process."},

	// Process control
	{Name: "getProcessInfo", Namespace: NamespaceSupervisor, Params: []Param{pName}, Result: "ProcessInfo",
		Doc: "returns info about the named process."},
	{Name: "getAllProcessInfo", Namespace: NamespaceSupervisor, Result: "[]ProcessInfo",
		Doc: "returns info about all processes."},
	{Name: "startProcess", Namespace: NamespaceSupervisor, Params: []Param{pName, pWait}, Result: "bool",
		Doc: "starts the named process."},
	{Name: "startAllProcesses", Namespace: NamespaceSupervisor, Params: []Param{pWait}, Result: "[]ProcessStatus",
		Doc: "starts all processes listed in the configuration file."},
	{Name: "startProcessGroup", Namespace: NamespaceSupervisor, Params: []Param{pName, pWait}, Result: "[]ProcessStatus",
		Doc: "starts all processes in the named group."},
	{Name: "stopProcess", Namespace: NamespaceSupervisor, Params: []Param{pName, pWait}, Result: "bool",
		Doc: "stops the named process."},
	{Name: "stopProcessGroup", Namespace: NamespaceSupervisor, Params: []Param{pName, pWait}, Result: "[]ProcessStatus",
		Doc: "stops all processes in the named group."},
	{Name: "stopAllProcesses", Namespace: NamespaceSupervisor, Params: []Param{pWait}, Result: "[]ProcessStatus",
		Doc: "stops all processes in the process list."},
	{Name: "signalProcess", Namespace: NamespaceSupervisor, Params: []Param{pName, pSignal}, Result: "bool",
		Doc: "sends an arbitrary UNIX signal to the named process."},
	{Name: "signalProcessGroup", Namespace: NamespaceSupervisor, Params: []Param{pName, pSignal}, Result: "[]ProcessStatus",
		Doc: "sends a signal to all processes in the named group."},
	{Name: "signalAllProcesses", Namespace: NamespaceSupervisor, Params: []Param{pSignal}, Result: "[]ProcessStatus",
		Doc: "sends a signal to all processes in the process list."},
	{Name: "sendProcessStdin", Namespace: NamespaceSupervisor,
		Params: []Param{pName, {Name: "chars", Type: "string"}}, Result: "bool",
		Doc: "sends a string of chars to the stdin of the named process."},
	{Name: "sendRemoteCommEvent", Namespace: NamespaceSupervisor,
		Params: []Param{{Name: "typ", Type: "string"}, {Name: "data", Type: "string"}}, Result: "bool",
		Doc: "sends an event to event listeners subscribed to RemoteCommunicationEvent."},
	{Name: "reloadConfig", Namespace: NamespaceSupervisor, Result: "ConfigChanges", Decode: "decodeConfigChanges",
		Doc: "reloads the configuration and reports added, changed and removed groups."},
	{Name: "addProcessGroup", Namespace: NamespaceSupervisor, Params: []Param{pName}, Result: "bool",
		Doc: "activates the named process group from the configuration file."},
	{Name: "removeProcessGroup", Namespace: NamespaceSupervisor, Params: []Param{pName}, Result: "bool",
		Doc: "removes a stopped process group from the active configuration."},

	// Process logging
	{Name: "readProcessStdoutLog", Namespace: NamespaceSupervisor, Params: []Param{pName, pOffset, pLength}, Result: "string",
		Doc: "reads length bytes from the named process's stdout log starting at offset."},
	{Name: "readProcessStderrLog", Namespace: NamespaceSupervisor, Params: []Param{pName, pOffset, pLength}, Result: "string",
		Doc: "reads length bytes from the named process's stderr log starting at offset."},
	{Name: "tailProcessStdoutLog", Namespace: NamespaceSupervisor, Params: []Param{pName, pOffset, pLength},
		Result: "TailResult", Decode: "decodeTailResult",
		Doc: "tails the named process's stdout log."},
	{Name: "tailProcessStderrLog", Namespace: NamespaceSupervisor, Params: []Param{pName, pOffset, pLength},
		Result: "TailResult", Decode: "decodeTailResult",
		Doc: "tails the named process's stderr log."},
	{Name: "clearProcessLogs", Namespace: NamespaceSupervisor, Params: []Param{pName}, Result: "bool",
		Doc: "clears the stdout and stderr logs for the named process and reopens them."},
	{Name: "clearAllProcessLogs", Namespace: NamespaceSupervisor, Result: "[]ProcessStatus",
		Doc: "clears all process log files."},

	// System
	{Name: "listMethods", Namespace: NamespaceSystem, Result: "[]string",
		Doc: "returns the names of the available methods."},
	{Name: "methodHelp", Namespace: NamespaceSystem, Params: []Param{pName}, Result: "string",
		Doc: "returns the documentation of the named method."},
	{Name: "methodSignature", Namespace: NamespaceSystem, Params: []Param{pName}, Result: "[][]string",
		Doc: "returns the signatures of the named method."},
	{Name: "multicall", Namespace: NamespaceSystem,
		Params: []Param{{Name: "calls", Type: "[]MulticallCall"}}, Result: "[]any",
		Doc: "processes an array of calls and returns an array of results."},
}

// NamespaceOf returns the namespace a method name is dispatched to.
// Unknown names default to the supervisor namespace.
func NamespaceOf(name string) Namespace {
	if _, ok := SystemMethods[name]; ok {
		return NamespaceSystem
	}
	return NamespaceSupervisor
}

// MethodName returns the namespaced name sent on the wire for name
func MethodName(name string) string {
	return NamespaceOf(name).String() + "." + name
}

// LookupMethod returns the MethodSpec for name, if any
func LookupMethod(name string) (MethodSpec, bool) {
	for _, m := range Methods {
		if m.Name == name {
			return m, true
		}
	}
	return MethodSpec{}, false
}
