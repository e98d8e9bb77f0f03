package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/accesskit-go/tree"
)

type activation struct {
	calls  int
	result *tree.TreeUpdate
}

func (a *activation) RequestInitialTree() *tree.TreeUpdate {
	a.calls++
	return a.result
}

type actions struct {
	requests []*tree.ActionRequest
}

func (a *actions) DoAction(req *tree.ActionRequest) { a.requests = append(a.requests, req) }

type deactivation struct{ calls int }

func (d *deactivation) DeactivateAccessibility() { d.calls++ }

type factory struct {
	calls  int
	update *tree.TreeUpdate
}

func (f *factory) Build() *tree.TreeUpdate {
	f.calls++
	return f.update
}

type sink struct {
	batches [][]Event
}

func (s *sink) RaiseEvents(events []Event) { s.batches = append(s.batches, events) }

func initialUpdate() *tree.TreeUpdate {
	root := tree.NewNode(tree.RoleWindow)
	root.SetChildren([]tree.NodeID{2})
	button := tree.NewNode(tree.RoleButton)
	button.AddAction(tree.ActionClick)

	u := tree.NewTreeUpdate(2)
	u.PushNode(1, root)
	u.PushNode(2, button)
	u.SetTree(tree.NewTree(1))
	return u
}

func TestUpdateIfActiveSkipsFactoryWhenInactive(t *testing.T) {
	a := New(0x10, true, &actions{}, nil)
	f := &factory{update: initialUpdate()}

	assert.Nil(t, a.UpdateIfActive(f))
	assert.Equal(t, 0, f.calls)
	assert.False(t, a.IsActive())
}

func TestHandleRequestNullActivation(t *testing.T) {
	a := New(0x10, true, &actions{}, nil)
	act := &activation{}

	root := a.HandleRequest(act)
	assert.False(t, root.HasValue)
	assert.False(t, a.IsActive())

	root = a.HandleRequest(act)
	assert.False(t, root.HasValue)
	assert.Equal(t, 2, act.calls, "activation is retried on each request while inactive")
}

func TestHandleRequestActivates(t *testing.T) {
	a := New(0x10, true, &actions{}, nil)
	act := &activation{result: initialUpdate()}

	root, ok := a.HandleRequest(act).Get()
	require.True(t, ok)
	assert.Equal(t, tree.NodeID(1), root)
	assert.True(t, a.IsActive())

	root, ok = a.HandleRequest(act).Get()
	require.True(t, ok)
	assert.Equal(t, tree.NodeID(1), root)
	assert.Equal(t, 1, act.calls)

	focus, ok := a.FocusedNode().Get()
	require.True(t, ok)
	assert.Equal(t, tree.NodeID(2), focus)
}

func TestHandleRequestWithoutTreeInfo(t *testing.T) {
	a := New(0x10, true, &actions{}, nil)
	u := tree.NewTreeUpdate(1)
	u.PushNode(1, tree.NewNode(tree.RoleWindow))

	assert.False(t, a.HandleRequest(&activation{result: u}).HasValue)
	assert.False(t, a.IsActive())
}

func TestUpdateIfActiveQueuesEvents(t *testing.T) {
	s := &sink{}
	a := New(0x10, true, &actions{}, s)
	a.HandleRequest(&activation{result: initialUpdate()})

	root := tree.NewNode(tree.RoleWindow)
	root.SetChildren([]tree.NodeID{3})
	u := tree.NewTreeUpdate(3)
	u.PushNode(1, root)
	u.PushNode(3, tree.NewNode(tree.RoleLabel))
	f := &factory{update: u}

	q := a.UpdateIfActive(f)
	require.NotNil(t, q)
	assert.Equal(t, 1, f.calls)
	assert.Empty(t, s.batches, "events are delivered only on Raise")

	want := []Event{
		{Kind: EventNodeCreated, Node: 3},
		{Kind: EventNodeUpdated, Node: 1},
		{Kind: EventNodeRemoved, Node: 2},
		{Kind: EventFocusMoved, Node: 3},
	}
	assert.Equal(t, want, q.Events())

	q.Raise()
	require.Len(t, s.batches, 1)
	assert.Equal(t, want, s.batches[0])
	assert.Equal(t, 0, q.Len())

	q.Raise()
	assert.Len(t, s.batches, 1, "raised batch is empty")
}

func TestWindowFocusState(t *testing.T) {
	a := New(0x10, false, &actions{}, nil)
	assert.Nil(t, a.UpdateWindowFocusState(true), "inactive adapter queues nothing")
	assert.Nil(t, a.UpdateWindowFocusState(false))

	a.HandleRequest(&activation{result: initialUpdate()})
	assert.False(t, a.FocusedNode().HasValue, "window not focused")

	q := a.UpdateWindowFocusState(true)
	require.NotNil(t, q)
	assert.Equal(t, []Event{
		{Kind: EventWindowFocusChanged, Focused: true},
		{Kind: EventFocusMoved, Node: 2},
	}, q.Events())

	q = a.UpdateWindowFocusState(true)
	require.NotNil(t, q)
	assert.Equal(t, 0, q.Len())
}

func TestPerformAction(t *testing.T) {
	h := &actions{}
	a := New(0x10, true, h, nil)

	assert.False(t, a.PerformAction(&tree.ActionRequest{Action: tree.ActionClick, Target: 2}), "inactive")

	a.HandleRequest(&activation{result: initialUpdate()})
	assert.True(t, a.PerformAction(&tree.ActionRequest{Action: tree.ActionClick, Target: 2}))
	assert.False(t, a.PerformAction(&tree.ActionRequest{Action: tree.ActionClick, Target: 99}))
	require.Len(t, h.requests, 1)
	assert.Equal(t, tree.NodeID(2), h.requests[0].Target)
}

func TestDeactivate(t *testing.T) {
	a := New(0x10, true, &actions{}, nil)
	d := &deactivation{}

	a.Deactivate(d)
	assert.Equal(t, 0, d.calls)

	a.HandleRequest(&activation{result: initialUpdate()})
	a.Deactivate(d)
	assert.Equal(t, 1, d.calls)
	assert.False(t, a.IsActive())

	f := &factory{update: initialUpdate()}
	assert.Nil(t, a.UpdateIfActive(f))
	assert.Equal(t, 0, f.calls)
}

func TestSubclassingAdapter(t *testing.T) {
	act := &activation{result: initialUpdate()}
	s := NewSubclassing(0x20, act, &actions{}, nil)

	root, ok := s.HandleRequest().Get()
	require.True(t, ok)
	assert.Equal(t, tree.NodeID(1), root)
	assert.True(t, s.IsActive())
	assert.Contains(t, s.String(), "SubclassingAdapter{window: 0x20, active: true")

	n, ok := s.Node(2)
	require.True(t, ok)
	assert.Equal(t, tree.RoleButton, n.Role())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "focusMoved", EventFocusMoved.String())
	assert.Equal(t, "hoverExited", EventHoverExited.String())
	assert.Equal(t, "event(99)", EventKind(99).String())
}

func TestFindFocus(t *testing.T) {
	act := &activation{}
	a := New(0x10, true, &actions{}, nil)
	assert.False(t, a.FindFocus(act).HasValue, "no tree yet")
	assert.Equal(t, 1, act.calls)

	act.result = initialUpdate()
	focus, ok := a.FindFocus(act).Get()
	require.True(t, ok)
	assert.Equal(t, tree.NodeID(2), focus)
	assert.True(t, a.IsActive(), "find focus activates")

	a.FindFocus(act)
	assert.Equal(t, 2, act.calls, "active adapter does not ask again")

	a.UpdateWindowFocusState(false)
	assert.False(t, a.FindFocus(act).HasValue, "window not focused")
}

func hoverUpdate() *tree.TreeUpdate {
	root := tree.NewNode(tree.RoleWindow)
	root.SetBounds(tree.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100})
	root.SetChildren([]tree.NodeID{2})
	button := tree.NewNode(tree.RoleButton)
	button.SetBounds(tree.Rect{X0: 10, Y0: 10, X1: 30, Y1: 30})

	u := tree.NewTreeUpdate(1)
	u.PushNode(1, root)
	u.PushNode(2, button)
	u.SetTree(tree.NewTree(1))
	return u
}

func TestHoverEvent(t *testing.T) {
	assert.Nil(t, New(0x10, true, &actions{}, nil).HoverEvent(&activation{}, HoverEnter, tree.Point{}),
		"no tree available")

	a := New(0x10, true, &actions{}, nil)
	act := &activation{result: hoverUpdate()}

	q := a.HoverEvent(act, HoverEnter, tree.Point{X: 20, Y: 20})
	require.NotNil(t, q)
	assert.Equal(t, []Event{{Kind: EventHoverEntered, Node: 2}}, q.Events())

	q = a.HoverEvent(act, HoverMove, tree.Point{X: 25, Y: 15})
	assert.Equal(t, 0, q.Len(), "still over the same node")

	q = a.HoverEvent(act, HoverMove, tree.Point{X: 50, Y: 50})
	assert.Equal(t, []Event{
		{Kind: EventHoverExited, Node: 2},
		{Kind: EventHoverEntered, Node: 1},
	}, q.Events())

	q = a.HoverEvent(act, HoverExit, tree.Point{X: 50, Y: 50})
	assert.Equal(t, []Event{{Kind: EventHoverExited, Node: 1}}, q.Events())

	q = a.HoverEvent(act, HoverMove, tree.Point{X: 500, Y: 500})
	assert.Equal(t, 0, q.Len(), "nothing under the pointer")
	assert.Equal(t, 1, act.calls)
}

func TestHoverClearedWhenNodeRemoved(t *testing.T) {
	a := New(0x10, true, &actions{}, nil)
	act := &activation{result: hoverUpdate()}
	a.HoverEvent(act, HoverEnter, tree.Point{X: 20, Y: 20})

	root := tree.NewNode(tree.RoleWindow)
	root.SetBounds(tree.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100})
	u := tree.NewTreeUpdate(1)
	u.PushNode(1, root)
	a.UpdateIfActive(&factory{update: u})

	q := a.HoverEvent(act, HoverMove, tree.Point{X: 20, Y: 20})
	assert.Equal(t, []Event{{Kind: EventHoverEntered, Node: 1}}, q.Events(), "no exit for a removed node")
}
