package capture

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/accesskit-go/tree"
)

func update(label string, focus tree.NodeID) *tree.TreeUpdate {
	root := tree.NewNode(tree.RoleWindow)
	root.SetChildren([]tree.NodeID{2})
	button := tree.NewNode(tree.RoleButton)
	button.SetLabel(label)

	u := tree.NewTreeUpdate(focus)
	u.PushNode(1, root)
	u.PushNode(2, button)
	u.SetTree(tree.NewTree(1))
	return u
}

func env(values map[string]string) Option {
	return WithGetenv(func(k string) string { return values[k] })
}

func TestCaptureDedup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.jsonl")
	l, err := Open(path, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	defer l.Close()

	l.Update(update("OK", 1))
	l.Update(update("OK", 1))
	assert.Equal(t, 1, l.Records())

	l.Update(update("Cancel", 1))
	l.Update(update("OK", 1))
	assert.Equal(t, 3, l.Records())

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	labels := make([]string, len(records))
	for i, rec := range records {
		n, ok := rec.Update.Node(2)
		require.True(t, ok)
		labels[i], _ = n.Label()
	}
	assert.Equal(t, []string{"OK", "Cancel", "OK"}, labels)
	assert.Equal(t, []int{1, 2, 3}, []int{records[0].Line, records[1].Line, records[2].Line})
}

func TestCaptureNonFiniteFloats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.jsonl")
	core, logs := observer.New(zapcore.ErrorLevel)
	l, err := Open(path, WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer l.Close()

	u := update("OK", 1)
	n, _ := u.Node(2)
	tree.PropScrollX.Set(n, math.NaN())
	l.Update(u)
	assert.Equal(t, 1, l.Records())
	assert.Zero(t, logs.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scrollX":null`)

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	got, _ := records[0].Update.Node(2)
	x, ok := tree.PropScrollX.Get(got)
	require.True(t, ok)
	assert.True(t, math.IsNaN(x))
}

func TestCaptureLazyInitFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazy.jsonl")
	l := New(env(map[string]string{EnvPath: path}), WithLogger(zap.NewNop()))
	assert.Equal(t, StateUninitialized, l.State())

	l.Update(update("OK", 1))
	assert.Equal(t, StateEnabled, l.State())
	assert.Equal(t, path, l.Path())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestCaptureDisabledWhenUnset(t *testing.T) {
	l := New(env(nil), WithLogger(zap.NewNop()))
	l.Update(update("OK", 1))
	assert.Equal(t, StateDisabled, l.State())
	assert.Equal(t, 0, l.Records())
}

func TestCaptureMissingDirectoryDisables(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	path := filepath.Join(t.TempDir(), "missing", "dir", "capture.jsonl")
	l := New(env(map[string]string{EnvPath: path}), WithLogger(zap.New(core)))

	assert.NotPanics(t, func() {
		l.Update(update("OK", 1))
		l.Update(update("Cancel", 1))
	})
	assert.Equal(t, StateDisabled, l.State())
	assert.Equal(t, 1, logs.FilterMessage("failed to open capture file").Len(), "open is not retried")
	assert.NoFileExists(t, path)
}

func TestCaptureTruncatesPriorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	l, err := Open(path, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	l.Update(update("OK", 1))
	require.NoError(t, l.Close())

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCapturePoisoned(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	path := filepath.Join(t.TempDir(), "capture.jsonl")
	l, err := Open(path, WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer l.Close()

	bad := tree.NewTreeUpdate(1)
	bad.PushNode(1, nil)

	assert.NotPanics(t, func() { l.Update(bad) })
	assert.True(t, l.Poisoned())
	assert.Equal(t, 1, logs.FilterMessage("capture panicked").Len())

	before := l.Records()
	l.Update(update("OK", 1))
	assert.Equal(t, before, l.Records())
	assert.Equal(t, 1, logs.FilterMessage("capture skipped").Len())
}

func TestCaptureNilUpdateIgnored(t *testing.T) {
	l := New(env(nil), WithLogger(zap.NewNop()))
	l.Update(nil)
	assert.Equal(t, StateUninitialized, l.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "disabled", StateDisabled.String())
	assert.Equal(t, "enabled", StateEnabled.String())
}
