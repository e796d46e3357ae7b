package supervisor

import (
	"context"
	"fmt"
	"testing"
)

// BenchmarkCall measures a full round trip against a local endpoint
func BenchmarkCall(b *testing.B) {
	m := newMockSupervisord(b)
	m.reply("supervisor.getPID", xmlInt(1234))

	client, err := New(m.URL())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := client.GetPID(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGetAllProcessInfo measures decoding of a 50 process listing
func BenchmarkGetAllProcessInfo(b *testing.B) {
	values := make([]string, 50)
	for i := range values {
		values[i] = xmlProcessInfo(fmt.Sprintf("worker_%02d", i), "worker", ProcessRunning, 1000+i)
	}
	m := newMockSupervisord(b)
	m.reply("supervisor.getAllProcessInfo", xmlArray(values...))

	client, err := New(m.URL())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		infos, err := client.GetAllProcessInfo(ctx)
		if err != nil {
			b.Fatal(err)
		}
		if len(infos) != len(values) {
			b.Fatalf("got %d processes", len(infos))
		}
	}
}

// BenchmarkMethodName measures namespace resolution
func BenchmarkMethodName(b *testing.B) {
	names := []string{"getPID", "listMethods", "startProcess", "multicall", "unknownMethod"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = MethodName(names[i%len(names)])
	}
}

// BenchmarkProcessStateString measures ProcessState.String() performance
func BenchmarkProcessStateString(b *testing.B) {
	states := []ProcessState{
		ProcessStopped,
		ProcessStarting,
		ProcessRunning,
		ProcessBackoff,
		ProcessStopping,
		ProcessExited,
		ProcessFatal,
		ProcessUnknown,
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = states[i%len(states)].String()
	}
}

// BenchmarkDiffProcesses measures the per-poll diff of the watcher
func BenchmarkDiffProcesses(b *testing.B) {
	current := make([]ProcessInfo, 200)
	prev := make(map[string]ProcessInfo, len(current))
	for i := range current {
		p := ProcessInfo{Name: fmt.Sprintf("p%03d", i), Group: "g", State: ProcessRunning, PID: i + 1}
		current[i] = p
		prev[p.FullName()] = p
	}
	current[7].State = ProcessBackoff

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if events := diffProcesses(prev, current); len(events) != 1 {
			b.Fatalf("got %d events", len(events))
		}
	}
}
