// Package supervisor provides a Go client for the supervisord XML-RPC
// interface.
//
// The core functionality centers around the Client type, which forwards
// calls to a single supervisord instance. Every call is a plain
// request/response exchange: the method name is prefixed with its
// namespace ("supervisor." or "system."), the arguments are encoded as an
// XML-RPC methodCall and the decoded response is handed back unchanged:
//
//	client, err := supervisor.New("http://localhost:9001/RPC2",
//	    supervisor.WithCredentials("user", "123"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Generic dispatch
//	version, err := client.Call(ctx, "getAPIVersion")
//
//	// Typed wrappers
//	procs, err := client.GetAllProcessInfo(ctx)
//	for _, p := range procs {
//	    fmt.Printf("%s: %s (pid %d)\n", p.FullName(), p.StateName, p.PID)
//	}
//
// Names listed in SystemMethods are sent to the "system" namespace; every
// other name, known or not, is sent to the "supervisor" namespace. Errors
// from the transport, the HTTP layer and XML-RPC faults are returned
// exactly as produced; use FaultCode to inspect a fault.
//
// # Manager for Bulk Operations
//
// The Manager type fans a call out across several supervisord servers
// concurrently and aggregates failures into a MultiError:
//
//	manager, err := supervisor.NewManager(servers,
//	    supervisor.WithConcurrency(5),
//	    supervisor.WithOperationTimeout(10 * time.Second),
//	)
//	infos, err := manager.AllProcessInfo(ctx)
//
// # Watching Process State
//
// Watch polls getAllProcessInfo and emits an event whenever a process
// changes state or PID. It is optional; everything it does can be done
// with a Client directly.
package supervisor
