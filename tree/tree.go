package tree

// Tree holds tree-wide information: the root node and the toolkit that
// produced the tree.
type Tree struct {
	Root           NodeID  `json:"root"`
	ToolkitName    *string `json:"toolkitName,omitempty"`
	ToolkitVersion *string `json:"toolkitVersion,omitempty"`
}

// NewTree creates a tree rooted at root with no toolkit information.
func NewTree(root NodeID) *Tree {
	return &Tree{Root: root}
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	c := Tree{Root: t.Root}
	if t.ToolkitName != nil {
		s := *t.ToolkitName
		c.ToolkitName = &s
	}
	if t.ToolkitVersion != nil {
		s := *t.ToolkitVersion
		c.ToolkitVersion = &s
	}
	return &c
}

// Equal compares trees by value.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Root == o.Root && eqStringPtr(t.ToolkitName, o.ToolkitName) && eqStringPtr(t.ToolkitVersion, o.ToolkitVersion)
}

func eqStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// NodeEntry pairs a node with its id inside an update.
type NodeEntry struct {
	ID   NodeID
	Node *Node
}

// TreeUpdate is a batch of node changes plus the current focus.
//
// Nodes lists every node that is new or changed since the previous update.
// Tree is set on the first update and whenever tree-wide information
// changes. Focus names the focused node, which is the root when nothing
// inside the window has focus.
type TreeUpdate struct {
	Nodes []NodeEntry
	Tree  *Tree
	Focus NodeID
}

// NewTreeUpdate creates an empty update with the given focus.
func NewTreeUpdate(focus NodeID) *TreeUpdate {
	return &TreeUpdate{Focus: focus}
}

// NewTreeUpdateWithCapacity preallocates room for capacity nodes.
func NewTreeUpdateWithCapacity(capacity int, focus NodeID) *TreeUpdate {
	return &TreeUpdate{Nodes: make([]NodeEntry, 0, capacity), Focus: focus}
}

// PushNode appends a node. The update takes ownership of node.
func (u *TreeUpdate) PushNode(id NodeID, node *Node) {
	u.Nodes = append(u.Nodes, NodeEntry{ID: id, Node: node})
}

// SetTree replaces the tree information. The update takes ownership of t.
func (u *TreeUpdate) SetTree(t *Tree) { u.Tree = t }

func (u *TreeUpdate) ClearTree() { u.Tree = nil }

func (u *TreeUpdate) SetFocus(id NodeID) { u.Focus = id }

// Node returns the last entry for id, if any.
func (u *TreeUpdate) Node(id NodeID) (*Node, bool) {
	for i := len(u.Nodes) - 1; i >= 0; i-- {
		if u.Nodes[i].ID == id {
			return u.Nodes[i].Node, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the update.
func (u *TreeUpdate) Clone() *TreeUpdate {
	c := &TreeUpdate{Tree: u.Tree.Clone(), Focus: u.Focus}
	if u.Nodes != nil {
		c.Nodes = make([]NodeEntry, len(u.Nodes))
		for i, e := range u.Nodes {
			c.Nodes[i] = NodeEntry{ID: e.ID, Node: e.Node.Clone()}
		}
	}
	return c
}

// Equal compares updates by value, including node order.
func (u *TreeUpdate) Equal(o *TreeUpdate) bool {
	if u == nil || o == nil {
		return u == o
	}
	if u.Focus != o.Focus || !u.Tree.Equal(o.Tree) || len(u.Nodes) != len(o.Nodes) {
		return false
	}
	for i, e := range u.Nodes {
		f := o.Nodes[i]
		if e.ID != f.ID || !e.Node.Equal(f.Node) {
			return false
		}
	}
	return true
}
