package tree

import (
	"slices"
)

// State is the tree obtained by applying a sequence of updates in order.
// Nodes no longer reachable from the root are dropped after each update.
type State struct {
	nodes map[NodeID]*Node
	tree  *Tree
	focus NodeID
}

// Changes summarizes what one Apply did. Id lists are sorted.
type Changes struct {
	Added        []NodeID
	Updated      []NodeID
	Removed      []NodeID
	TreeChanged  bool
	FocusChanged bool
}

// Empty reports whether the update changed nothing.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0 && !c.TreeChanged && !c.FocusChanged
}

func NewState() *State {
	return &State{nodes: map[NodeID]*Node{}}
}

// Apply merges u into the state. Nodes in u are cloned.
func (s *State) Apply(u *TreeUpdate) Changes {
	var ch Changes
	for _, e := range u.Nodes {
		old, ok := s.nodes[e.ID]
		switch {
		case !ok:
			ch.Added = append(ch.Added, e.ID)
		case !old.Equal(e.Node):
			ch.Updated = append(ch.Updated, e.ID)
		}
		s.nodes[e.ID] = e.Node.Clone()
	}
	if u.Tree != nil && !s.tree.Equal(u.Tree) {
		s.tree = u.Tree.Clone()
		ch.TreeChanged = true
	}
	if s.focus != u.Focus {
		s.focus = u.Focus
		ch.FocusChanged = true
	}
	ch.Removed = s.prune()

	ch.Added = slices.DeleteFunc(ch.Added, func(id NodeID) bool {
		_, ok := s.nodes[id]
		return !ok
	})
	slices.Sort(ch.Added)
	ch.Added = slices.Compact(ch.Added)
	slices.Sort(ch.Updated)
	ch.Updated = slices.Compact(ch.Updated)
	ch.Updated = slices.DeleteFunc(ch.Updated, func(id NodeID) bool {
		_, ok := s.nodes[id]
		return !ok || slices.Contains(ch.Added, id)
	})
	return ch
}

func (s *State) prune() []NodeID {
	if s.tree == nil {
		return nil
	}
	reachable := make(map[NodeID]bool, len(s.nodes))
	s.Walk(func(id NodeID, _ int, _ *Node) bool {
		reachable[id] = true
		return true
	})
	var removed []NodeID
	for id := range s.nodes {
		if !reachable[id] {
			removed = append(removed, id)
			delete(s.nodes, id)
		}
	}
	slices.Sort(removed)
	return removed
}

// Walk visits nodes depth first from the root in child order. Returning
// false from fn skips the node's subtree. Missing children are skipped,
// and each node is visited at most once.
func (s *State) Walk(fn func(id NodeID, depth int, n *Node) bool) {
	if s.tree == nil {
		return
	}
	seen := map[NodeID]bool{}
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		n, ok := s.nodes[id]
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		if !fn(id, depth, n) {
			return
		}
		for _, c := range n.Children() {
			visit(c, depth+1)
		}
	}
	visit(s.tree.Root, 0)
}

// Node returns the stored node. Callers must not modify it.
func (s *State) Node(id NodeID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

func (s *State) Tree() *Tree { return s.tree }

func (s *State) Focus() NodeID { return s.focus }

func (s *State) Len() int { return len(s.nodes) }

// IDs returns all node ids in ascending order.
func (s *State) IDs() []NodeID {
	ids := make([]NodeID, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	c := &State{nodes: make(map[NodeID]*Node, len(s.nodes)), tree: s.tree.Clone(), focus: s.focus}
	for id, n := range s.nodes {
		c.nodes[id] = n.Clone()
	}
	return c
}

// HitTest returns the deepest visible node whose bounds contain p, given in
// root coordinates. Later siblings are drawn on top and are tested first.
// Transforms accumulate from the root, and a node without bounds can still
// contain hit children.
func (s *State) HitTest(p Point) (NodeID, bool) {
	if s.tree == nil {
		return 0, false
	}
	seen := map[NodeID]bool{}
	var hit func(id NodeID, parent Affine) (NodeID, bool)
	hit = func(id NodeID, parent Affine) (NodeID, bool) {
		n, ok := s.nodes[id]
		if !ok || seen[id] || n.Flag(FlagHidden) {
			return 0, false
		}
		seen[id] = true
		t := parent
		if own, ok := PropTransform.Get(n); ok {
			t = parent.Mul(own)
		}
		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if found, ok := hit(children[i], t); ok {
				return found, true
			}
		}
		if b, ok := n.Bounds(); ok && t.Determinant() != 0 && b.Contains(t.Inverse().TransformPoint(p)) {
			return id, true
		}
		return 0, false
	}
	return hit(s.tree.Root, AffineIdentity)
}
