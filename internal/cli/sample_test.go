package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CherkashinEvgeny/gintonic/aspect"
)

func run(t *testing.T, args ...string) ([]map[string]any, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "gintonic.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  format: json\n"), 0o644))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()

	var events []map[string]any
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var event map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	return events, err
}

func messages(events []map[string]any) []string {
	var out []string
	for _, e := range events {
		out = append(out, e["tag"].(string)+" "+e["message"].(string))
	}
	return out
}

func TestSampleIdentity(t *testing.T) {
	assert.Equal(t, "MainActivity.testBefore", sampleIdentity(aspect.KindBefore))
	assert.Equal(t, "MainActivity.testAfter", sampleIdentity(aspect.KindAfter))
	assert.Equal(t, "MainActivity.testAround", sampleIdentity(aspect.KindAround))
}

func TestBefore(t *testing.T) {
	events, err := run(t, "before")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"TraceAspect MainActivity.testBefore: before",
		"MainActivity MainActivity.testBefore running",
	}, messages(events))
}

func TestAfterFailure(t *testing.T) {
	events, err := run(t, "after", "--fail")
	assert.True(t, errors.Is(err, errSample))
	assert.Equal(t, []string{
		"MainActivity MainActivity.testAfter running",
		"TraceAspect MainActivity.testAfter: after",
	}, messages(events))
}

func TestAround(t *testing.T) {
	events, err := run(t, "around", "--sleep", "10ms")
	require.NoError(t, err)
	lines := messages(events)
	require.Len(t, lines, 2)
	assert.Equal(t, "MainActivity MainActivity.testAround running", lines[0])
	assert.Regexp(t, `^TraceAspect MainActivity\.testAround --> \[\d{2,}ms\]$`, lines[1])
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "gintonic dev")
}
