package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyRegistry(t *testing.T) {
	seen := map[string]bool{}
	for id := PropertyID(0); id < PropertyID(PropertyCount()); id++ {
		name := id.String()
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true

		got, ok := PropertyByName(name)
		require.True(t, ok)
		assert.Equal(t, id, got)
	}
	assert.Equal(t, "label", PropLabel.Name())
	assert.Equal(t, "children", PropChildren.Name())

	_, ok := PropertyByName("nope")
	assert.False(t, ok)
}

func TestScalarProperty(t *testing.T) {
	n := NewNode(RoleSlider)

	_, ok := PropNumericValue.Get(n)
	assert.False(t, ok)

	PropNumericValue.Set(n, 42.5)
	v, ok := PropNumericValue.Get(n)
	require.True(t, ok)
	assert.Equal(t, 42.5, v)

	PropNumericValue.Set(n, 1)
	v, _ = PropNumericValue.Get(n)
	assert.Equal(t, 1.0, v)

	PropNumericValue.Clear(n)
	_, ok = PropNumericValue.Get(n)
	assert.False(t, ok)
	assert.Empty(t, n.Properties())
}

func TestOptionalBoolDistinctFromFalse(t *testing.T) {
	n := NewNode(RoleTreeItem)

	_, ok := PropExpanded.Get(n)
	assert.False(t, ok)

	PropExpanded.Set(n, false)
	v, ok := PropExpanded.Get(n)
	assert.True(t, ok)
	assert.False(t, v)
}

func TestVecProperty(t *testing.T) {
	n := NewNode(RoleList)

	assert.Equal(t, []NodeID{}, PropChildren.Get(n))
	assert.Equal(t, 0, PropChildren.Len(n))

	ids := []NodeID{3, 1, 2}
	PropChildren.Set(n, ids)
	ids[0] = 99
	assert.Equal(t, []NodeID{3, 1, 2}, PropChildren.Get(n), "Set must copy")

	got := PropChildren.Get(n)
	got[0] = 77
	assert.Equal(t, []NodeID{3, 1, 2}, PropChildren.Get(n), "Get must copy")

	PropChildren.Push(n, 4)
	assert.Equal(t, []NodeID{3, 1, 2, 4}, n.Children())

	PropChildren.Clear(n)
	assert.Equal(t, 0, PropChildren.Len(n))
}

func TestSliceValuedPropertyCopies(t *testing.T) {
	n := NewNode(RoleTextRun)
	lengths := []uint8{1, 2, 3}
	PropCharacterLengths.Set(n, lengths)
	lengths[0] = 9

	got, ok := PropCharacterLengths.Get(n)
	require.True(t, ok)
	assert.Equal(t, []uint8{1, 2, 3}, got)

	got[1] = 9
	again, _ := PropCharacterLengths.Get(n)
	assert.Equal(t, []uint8{1, 2, 3}, again)
}

func TestPropertiesSorted(t *testing.T) {
	n := NewNode(RoleButton)
	PropTooltip.Set(n, "tip")
	PropChildren.Set(n, []NodeID{1})
	PropLabel.Set(n, "OK")

	ids := n.Properties()
	require.Len(t, ids, 3)
	assert.Equal(t, PropChildren.ID(), ids[0])
	assert.Equal(t, PropLabel.ID(), ids[1])
	assert.Equal(t, PropTooltip.ID(), ids[2])
	assert.True(t, n.Has(PropLabel.ID()))
}

func TestFlagsAndActions(t *testing.T) {
	n := NewNode(RoleCheckBox)
	assert.False(t, n.Flag(FlagDisabled))

	n.SetFlag(FlagDisabled)
	n.SetFlag(FlagHidden)
	assert.True(t, n.Flag(FlagDisabled))
	assert.Equal(t, []Flag{FlagHidden, FlagDisabled}, n.FlagSet().Flags())

	n.ClearFlag(FlagDisabled)
	assert.False(t, n.Flag(FlagDisabled))

	n.AddAction(ActionClick)
	n.AddAction(ActionFocus)
	assert.True(t, n.Supports(ActionClick))
	assert.Equal(t, 2, n.Actions().Len())
	n.RemoveAction(ActionClick)
	assert.False(t, n.Supports(ActionClick))
	n.ClearActions()
	assert.Equal(t, 0, n.Actions().Len())

	n.AddChildAction(ActionScrollDown)
	assert.True(t, n.ChildSupports(ActionScrollDown))
	n.RemoveChildAction(ActionScrollDown)
	assert.False(t, n.ChildSupports(ActionScrollDown))
}

func TestNodeCloneAndEqual(t *testing.T) {
	n := NewNode(RoleButton)
	n.SetLabel("OK")
	n.SetChildren([]NodeID{2, 3})
	n.SetFlag(FlagBold)
	n.AddAction(ActionClick)
	PropBounds.Set(n, Rect{X0: 0, Y0: 0, X1: 10, Y1: 20})

	c := n.Clone()
	assert.True(t, n.Equal(c))

	c.PushChild(4)
	assert.False(t, n.Equal(c))
	assert.Equal(t, []NodeID{2, 3}, n.Children())

	var nilNode *Node
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, nilNode.Equal(n))
}

func TestChangedProperties(t *testing.T) {
	a := NewNode(RoleButton)
	a.SetLabel("OK")
	a.SetFlag(FlagHidden)

	b := a.Clone()
	assert.Empty(t, a.ChangedProperties(b))

	b.SetRole(RoleLink)
	b.SetLabel("Cancel")
	b.ClearFlag(FlagHidden)
	PropTooltip.Set(b, "x")

	assert.Equal(t, []string{"role", "hidden", "label", "tooltip"}, a.ChangedProperties(b))
}

func TestTreeUpdate(t *testing.T) {
	u := NewTreeUpdateWithCapacity(2, 1)
	root := NewNode(RoleWindow)
	root.SetChildren([]NodeID{2})
	u.PushNode(1, root)
	u.PushNode(2, NewNode(RoleButton))

	name := "toolkit"
	tr := NewTree(1)
	tr.ToolkitName = &name
	u.SetTree(tr)

	c := u.Clone()
	assert.True(t, u.Equal(c))

	name = "changed"
	assert.False(t, u.Equal(c), "clone must not alias toolkit name")

	c = u.Clone()
	c.SetFocus(2)
	assert.False(t, u.Equal(c))

	c = u.Clone()
	c.ClearTree()
	assert.Nil(t, c.Tree)
	assert.False(t, u.Equal(c))

	n, ok := u.Node(2)
	require.True(t, ok)
	assert.Equal(t, RoleButton, n.Role())
	_, ok = u.Node(5)
	assert.False(t, ok)
}

func TestTreeUpdateEqualOrderSensitive(t *testing.T) {
	a := NewTreeUpdate(1)
	a.PushNode(1, NewNode(RoleWindow))
	a.PushNode(2, NewNode(RoleButton))

	b := NewTreeUpdate(1)
	b.PushNode(2, NewNode(RoleButton))
	b.PushNode(1, NewNode(RoleWindow))

	assert.False(t, a.Equal(b))
}

func TestActionRequestKinds(t *testing.T) {
	tests := []struct {
		data ActionData
		kind ActionDataKind
		name string
	}{
		{CustomActionData{ID: 1}, ActionDataCustomAction, "customAction"},
		{ValueData{Value: "x"}, ActionDataValue, "value"},
		{NumericValueData{Value: 1}, ActionDataNumericValue, "numericValue"},
		{ScrollUnitData{Unit: ScrollUnitPage}, ActionDataScrollUnit, "scrollUnit"},
		{ScrollHintData{Hint: ScrollHintTopEdge}, ActionDataScrollHint, "scrollHint"},
		{ScrollToPointData{Point: Point{1, 2}}, ActionDataScrollToPoint, "scrollToPoint"},
		{SetScrollOffsetData{Offset: Point{1, 2}}, ActionDataSetScrollOffset, "setScrollOffset"},
		{SetTextSelectionData{}, ActionDataSetTextSelection, "setTextSelection"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.data.Kind())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}
