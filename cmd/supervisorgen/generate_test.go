package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	supervisor "github.com/axondata/go-supervisor"
)

func signatures(src string) []string {
	var out []string
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, "func (c *Client) ") {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"getAPIVersion":        "GetAPIVersion",
		"getPID":               "GetPID",
		"tailProcessStdoutLog": "TailProcessStdoutLog",
		"multicall":            "Multicall",
	}
	for in, want := range tests {
		assert.Equal(t, want, goName(supervisor.MethodSpec{Name: in}))
	}
}

func TestGenerateFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generateFile(supervisor.Methods).Render(&buf))
	src := buf.String()

	assert.True(t, strings.HasPrefix(src, "// "+header))
	assert.Contains(t, src, "func (c *Client) GetPID(ctx context.Context) (int, error) {")
	assert.Contains(t, src, `err := c.CallInto(ctx, "tailProcessStdoutLog", &raw, name, offset, length)`)
	assert.Contains(t, src, "return decodeTailResult(raw, err)")
	assert.Contains(t, src, "// It calls system.multicall.")
	assert.Len(t, signatures(src), len(supervisor.Methods))
}

func TestCheckedInFileIsCurrent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generateFile(supervisor.Methods).Render(&buf))

	current, err := os.ReadFile("../../methods_gen.go")
	require.NoError(t, err)

	assert.Equal(t, signatures(buf.String()), signatures(string(current)),
		"methods_gen.go is stale; run go generate")
}
