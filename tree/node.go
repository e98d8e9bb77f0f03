package tree

import (
	"slices"
)

// TextPosition is a character offset within a text run node.
type TextPosition struct {
	Node           NodeID `json:"node"`
	CharacterIndex uint   `json:"characterIndex"`
}

// TextSelection is an anchor and focus pair. The anchor is where the
// selection started; the focus is where the caret is.
type TextSelection struct {
	Anchor TextPosition `json:"anchor"`
	Focus  TextPosition `json:"focus"`
}

// CustomAction is an application-defined action exposed to assistive
// technology.
type CustomAction struct {
	ID          int32  `json:"id"`
	Description string `json:"description"`
}

type propEntry struct {
	id    PropertyID
	value any
}

// Node is a single element of the accessibility tree.
//
// A Node is plain data. It is not safe for concurrent mutation.
type Node struct {
	role         Role
	actions      ActionSet
	childActions ActionSet
	flags        FlagSet
	props        []propEntry // sorted by id
}

// NewNode creates a node with the given role and no properties.
func NewNode(role Role) *Node {
	return &Node{role: role}
}

func (n *Node) Role() Role { return n.role }

func (n *Node) SetRole(r Role) { n.role = r }

// Supports reports whether the node handles the action.
func (n *Node) Supports(a Action) bool { return n.actions.Has(a) }

func (n *Node) AddAction(a Action) { n.actions.Add(a) }

func (n *Node) RemoveAction(a Action) { n.actions.Remove(a) }

func (n *Node) ClearActions() { n.actions = 0 }

func (n *Node) Actions() ActionSet { return n.actions }

// ChildSupports reports whether the node's children handle the action on
// its behalf.
func (n *Node) ChildSupports(a Action) bool { return n.childActions.Has(a) }

func (n *Node) AddChildAction(a Action) { n.childActions.Add(a) }

func (n *Node) RemoveChildAction(a Action) { n.childActions.Remove(a) }

func (n *Node) ClearChildActions() { n.childActions = 0 }

func (n *Node) ChildActions() ActionSet { return n.childActions }

func (n *Node) Flag(f Flag) bool { return n.flags.Has(f) }

func (n *Node) SetFlag(f Flag) { n.flags.Add(f) }

func (n *Node) ClearFlag(f Flag) { n.flags.Remove(f) }

func (n *Node) FlagSet() FlagSet { return n.flags }

// Label returns the node's label, if set.
func (n *Node) Label() (string, bool) { return PropLabel.Get(n) }

func (n *Node) SetLabel(s string) { PropLabel.Set(n, s) }

// Children returns a copy of the child list.
func (n *Node) Children() []NodeID { return PropChildren.Get(n) }

func (n *Node) SetChildren(ids []NodeID) { PropChildren.Set(n, ids) }

func (n *Node) PushChild(id NodeID) { PropChildren.Push(n, id) }

// Bounds returns the node's bounding rectangle in its own coordinate space.
func (n *Node) Bounds() (Rect, bool) { return PropBounds.Get(n) }

func (n *Node) SetBounds(r Rect) { PropBounds.Set(n, r) }

// Properties returns the ids of all set properties in ascending order.
func (n *Node) Properties() []PropertyID {
	ids := make([]PropertyID, len(n.props))
	for i, e := range n.props {
		ids[i] = e.id
	}
	return ids
}

// Has reports whether the property is set.
func (n *Node) Has(id PropertyID) bool {
	_, ok := n.find(id)
	return ok
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := *n
	c.props = make([]propEntry, len(n.props))
	for i, e := range n.props {
		c.props[i] = propEntry{id: e.id, value: propertyInfos[e.id].clone(e.value)}
	}
	return &c
}

// Equal reports whether two nodes carry the same role, actions, flags and
// properties.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.role != o.role || n.actions != o.actions || n.childActions != o.childActions || n.flags != o.flags {
		return false
	}
	if len(n.props) != len(o.props) {
		return false
	}
	for i, e := range n.props {
		f := o.props[i]
		if e.id != f.id || !propertyInfos[e.id].equal(e.value, f.value) {
			return false
		}
	}
	return true
}

// ChangedProperties returns the names of everything that differs between
// two nodes: "role", "actions", "childActions", flag names and property
// names.
func (n *Node) ChangedProperties(o *Node) []string {
	var out []string
	if n.role != o.role {
		out = append(out, "role")
	}
	if n.actions != o.actions {
		out = append(out, "actions")
	}
	if n.childActions != o.childActions {
		out = append(out, "childActions")
	}
	for _, f := range Flags() {
		if n.flags.Has(f) != o.flags.Has(f) {
			out = append(out, f.String())
		}
	}
	for id := PropertyID(0); id < PropertyID(len(propertyInfos)); id++ {
		a, aok := n.get(id)
		b, bok := o.get(id)
		if aok != bok || (aok && !propertyInfos[id].equal(a, b)) {
			out = append(out, id.String())
		}
	}
	return out
}

func (n *Node) find(id PropertyID) (int, bool) {
	return slices.BinarySearchFunc(n.props, id, func(e propEntry, id PropertyID) int {
		return int(e.id) - int(id)
	})
}

func (n *Node) get(id PropertyID) (any, bool) {
	i, ok := n.find(id)
	if !ok {
		return nil, false
	}
	return n.props[i].value, true
}

func (n *Node) set(id PropertyID, v any) {
	i, ok := n.find(id)
	if ok {
		n.props[i].value = v
		return
	}
	n.props = slices.Insert(n.props, i, propEntry{id: id, value: v})
}

func (n *Node) remove(id PropertyID) {
	if i, ok := n.find(id); ok {
		n.props = slices.Delete(n.props, i, i+1)
	}
}
