package capture

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wippyai/accesskit-go/tree"
)

// NodeChange lists what changed on one node.
type NodeChange struct {
	ID         tree.NodeID `json:"id"`
	Properties []string    `json:"properties"`
}

// Delta is the difference between two tree states.
type Delta struct {
	Added    []tree.NodeID `json:"added,omitempty"`
	Removed  []tree.NodeID `json:"removed,omitempty"`
	Changed  []NodeChange  `json:"changed,omitempty"`
	OldTree  *tree.Tree    `json:"oldTree,omitempty"`
	NewTree  *tree.Tree    `json:"newTree,omitempty"`
	OldFocus tree.NodeID   `json:"oldFocus"`
	NewFocus tree.NodeID   `json:"newFocus"`
}

// TreeChanged reports whether tree-wide information differs.
func (d Delta) TreeChanged() bool { return !d.OldTree.Equal(d.NewTree) }

// FocusChanged reports whether focus moved.
func (d Delta) FocusChanged() bool { return d.OldFocus != d.NewFocus }

// Empty reports whether the states are identical.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0 && !d.TreeChanged() && !d.FocusChanged()
}

// Diff compares two tree states.
func Diff(a, b *tree.State) Delta {
	d := Delta{OldFocus: a.Focus(), NewFocus: b.Focus()}
	if !a.Tree().Equal(b.Tree()) {
		d.OldTree, d.NewTree = a.Tree(), b.Tree()
	}
	for _, id := range a.IDs() {
		old, _ := a.Node(id)
		n, ok := b.Node(id)
		if !ok {
			d.Removed = append(d.Removed, id)
			continue
		}
		if props := old.ChangedProperties(n); len(props) > 0 {
			d.Changed = append(d.Changed, NodeChange{ID: id, Properties: props})
		}
	}
	for _, id := range b.IDs() {
		if _, ok := a.Node(id); !ok {
			d.Added = append(d.Added, id)
		}
	}
	return d
}

// String renders the delta as one line per change.
func (d Delta) String() string {
	var b strings.Builder
	for _, id := range d.Added {
		fmt.Fprintf(&b, "+ node %d\n", id)
	}
	for _, id := range d.Removed {
		fmt.Fprintf(&b, "- node %d\n", id)
	}
	for _, c := range d.Changed {
		fmt.Fprintf(&b, "~ node %d: %s\n", c.ID, strings.Join(c.Properties, ", "))
	}
	if d.TreeChanged() {
		fmt.Fprintf(&b, "~ tree: %s -> %s\n", describeTree(d.OldTree), describeTree(d.NewTree))
	}
	if d.FocusChanged() {
		fmt.Fprintf(&b, "~ focus: %d -> %d\n", d.OldFocus, d.NewFocus)
	}
	return b.String()
}

func describeTree(t *tree.Tree) string {
	if t == nil {
		return "none"
	}
	parts := []string{fmt.Sprintf("root=%d", t.Root)}
	if t.ToolkitName != nil {
		parts = append(parts, "toolkit="+*t.ToolkitName)
	}
	if t.ToolkitVersion != nil {
		parts = append(parts, "version="+*t.ToolkitVersion)
	}
	return strings.Join(parts, " ")
}

// Step is the state after one record together with its delta from the
// previous state.
type Step struct {
	Record Record
	State  *tree.State
	Delta  Delta
}

// Replay applies records in order and returns one step per record.
func Replay(records []Record) []Step {
	state := tree.NewState()
	steps := make([]Step, 0, len(records))
	for _, rec := range records {
		prev := state.Clone()
		state.Apply(rec.Update)
		steps = append(steps, Step{Record: rec, State: state.Clone(), Delta: Diff(prev, state)})
	}
	return steps
}

// ChangedIDs returns every node id touched by the delta, sorted.
func (d Delta) ChangedIDs() []tree.NodeID {
	var ids []tree.NodeID
	ids = append(ids, d.Added...)
	ids = append(ids, d.Removed...)
	for _, c := range d.Changed {
		ids = append(ids, c.ID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
