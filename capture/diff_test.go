package capture

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/tree"
)

func TestReaderSkipsBlankLines(t *testing.T) {
	input := `{"nodes":[[1,{"role":"window"}]],"tree":{"root":1},"focus":1}

{"nodes":[],"focus":1}
`
	r := NewReader(strings.NewReader(input))

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Line)
	require.NotNil(t, rec.Update.Tree)
	assert.Equal(t, tree.NodeID(1), rec.Update.Tree.Root)

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Line)
	assert.Empty(t, rec.Update.Nodes)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderReportsLine(t *testing.T) {
	r := NewReader(strings.NewReader("{\"nodes\":[],\"focus\":1}\nnot json\n"))
	records, err := r.ReadAll()
	require.Error(t, err)
	assert.Len(t, records, 1)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidData})
	assert.Contains(t, err.Error(), "at record: malformed tree update on line 2")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("/nonexistent/capture.jsonl")
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindNotFound})
	assert.Contains(t, err.Error(), "/nonexistent/capture.jsonl")

	_, err = ReadFile(t.TempDir())
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindIO}, "directory is not readable as records")
}

func TestReplayAndDiff(t *testing.T) {
	first := update("OK", 1)

	second := tree.NewTreeUpdate(2)
	button := tree.NewNode(tree.RoleButton)
	button.SetLabel("Cancel")
	second.PushNode(2, button)

	third := tree.NewTreeUpdate(1)
	root := tree.NewNode(tree.RoleWindow)
	root.SetChildren([]tree.NodeID{3})
	third.PushNode(1, root)
	third.PushNode(3, tree.NewNode(tree.RoleLabel))

	steps := Replay([]Record{{Line: 1, Update: first}, {Line: 2, Update: second}, {Line: 3, Update: third}})
	require.Len(t, steps, 3)

	d := steps[0].Delta
	assert.Equal(t, []tree.NodeID{1, 2}, d.Added)
	assert.True(t, d.TreeChanged())
	assert.True(t, d.FocusChanged())

	d = steps[1].Delta
	assert.Empty(t, d.Added)
	require.Len(t, d.Changed, 1)
	assert.Equal(t, NodeChange{ID: 2, Properties: []string{"label"}}, d.Changed[0])
	assert.Equal(t, tree.NodeID(1), d.OldFocus)
	assert.Equal(t, tree.NodeID(2), d.NewFocus)
	assert.False(t, d.TreeChanged())

	d = steps[2].Delta
	assert.Equal(t, []tree.NodeID{3}, d.Added)
	assert.Equal(t, []tree.NodeID{2}, d.Removed)
	require.Len(t, d.Changed, 1)
	assert.Equal(t, []string{"children"}, d.Changed[0].Properties)
	assert.Equal(t, []tree.NodeID{1, 2, 3}, d.ChangedIDs())

	out := d.String()
	assert.Contains(t, out, "+ node 3")
	assert.Contains(t, out, "- node 2")
	assert.Contains(t, out, "~ node 1: children")
	assert.Contains(t, out, "~ focus: 2 -> 1")

	assert.Equal(t, 2, steps[2].State.Len())
	_, ok := steps[1].State.Node(2)
	assert.True(t, ok, "earlier states are independent copies")
}

func TestDiffIdentical(t *testing.T) {
	s := tree.NewState()
	s.Apply(update("OK", 1))
	d := Diff(s, s.Clone())
	assert.True(t, d.Empty())
	assert.Equal(t, "", d.String())
}
