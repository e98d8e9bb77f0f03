package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateApply(t *testing.T) {
	s := NewState()

	u := NewTreeUpdate(1)
	root := NewNode(RoleWindow)
	root.SetChildren([]NodeID{2, 3})
	u.PushNode(1, root)
	u.PushNode(2, NewNode(RoleButton))
	u.PushNode(3, NewNode(RoleLabel))
	u.PushNode(9, NewNode(RoleLabel))
	u.SetTree(NewTree(1))

	ch := s.Apply(u)
	assert.Equal(t, []NodeID{1, 2, 3}, ch.Added, "unreachable node 9 is never added")
	assert.True(t, ch.TreeChanged)
	assert.True(t, ch.FocusChanged)
	assert.Equal(t, []NodeID{9}, ch.Removed)
	assert.Equal(t, []NodeID{1, 2, 3}, s.IDs())

	button := NewNode(RoleButton)
	button.SetLabel("OK")
	u2 := NewTreeUpdate(2)
	u2.PushNode(2, button)
	u2.PushNode(3, NewNode(RoleLabel))

	ch = s.Apply(u2)
	assert.Empty(t, ch.Added)
	assert.Equal(t, []NodeID{2}, ch.Updated, "identical node 3 is not an update")
	assert.False(t, ch.TreeChanged)
	assert.True(t, ch.FocusChanged)
	assert.Equal(t, NodeID(2), s.Focus())

	root2 := NewNode(RoleWindow)
	root2.SetChildren([]NodeID{2})
	u3 := NewTreeUpdate(2)
	u3.PushNode(1, root2)
	ch = s.Apply(u3)
	assert.Equal(t, []NodeID{1}, ch.Updated)
	assert.Equal(t, []NodeID{3}, ch.Removed)
	assert.False(t, ch.Empty())

	assert.True(t, s.Apply(NewTreeUpdate(2)).Empty())
}

func TestStateWalk(t *testing.T) {
	s := NewState()
	u := NewTreeUpdate(1)
	root := NewNode(RoleWindow)
	root.SetChildren([]NodeID{2, 3})
	group := NewNode(RoleGroup)
	group.SetChildren([]NodeID{4, 1})
	u.PushNode(1, root)
	u.PushNode(2, group)
	u.PushNode(3, NewNode(RoleButton))
	u.PushNode(4, NewNode(RoleButton))
	u.SetTree(NewTree(1))
	s.Apply(u)

	type visit struct {
		id    NodeID
		depth int
	}
	var got []visit
	s.Walk(func(id NodeID, depth int, _ *Node) bool {
		got = append(got, visit{id, depth})
		return true
	})
	assert.Equal(t, []visit{{1, 0}, {2, 1}, {4, 2}, {3, 1}}, got, "cycles are visited once")

	got = nil
	s.Walk(func(id NodeID, depth int, _ *Node) bool {
		got = append(got, visit{id, depth})
		return id != 2
	})
	assert.Equal(t, []visit{{1, 0}, {2, 1}, {3, 1}}, got)
}

func TestStateCloneIndependent(t *testing.T) {
	s := NewState()
	u := NewTreeUpdate(1)
	u.PushNode(1, NewNode(RoleWindow))
	u.SetTree(NewTree(1))
	s.Apply(u)

	c := s.Clone()
	n, ok := c.Node(1)
	require.True(t, ok)
	n.SetLabel("changed")

	orig, _ := s.Node(1)
	_, has := orig.Label()
	assert.False(t, has)
}

// hitTree is a 100x100 window holding a panel scaled by two and a hidden
// overlay covering everything.
func hitTree() *State {
	root := NewNode(RoleWindow)
	root.SetBounds(Rect{0, 0, 100, 100})
	root.SetChildren([]NodeID{2, 4})

	panel := NewNode(RoleGroup)
	PropTransform.Set(panel, AffineScale(2))
	panel.SetBounds(Rect{0, 0, 20, 20})
	panel.SetChildren([]NodeID{3})

	button := NewNode(RoleButton)
	button.SetBounds(Rect{5, 5, 10, 10})

	overlay := NewNode(RoleGroup)
	overlay.SetBounds(Rect{0, 0, 100, 100})
	overlay.SetFlag(FlagHidden)

	u := NewTreeUpdate(1)
	u.PushNode(1, root)
	u.PushNode(2, panel)
	u.PushNode(3, button)
	u.PushNode(4, overlay)
	u.SetTree(NewTree(1))

	s := NewState()
	s.Apply(u)
	return s
}

func TestStateHitTest(t *testing.T) {
	s := hitTree()

	tests := []struct {
		name string
		p    Point
		want NodeID
		ok   bool
	}{
		{"button through parent transform", Point{12, 12}, 3, true},
		{"panel outside button", Point{30, 30}, 2, true},
		{"root outside panel", Point{60, 60}, 1, true},
		{"outside everything", Point{150, 5}, 0, false},
		{"max edge is exclusive", Point{100, 50}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.HitTest(tt.p)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := NewState().HitTest(Point{1, 1})
	assert.False(t, ok, "empty state")
}
