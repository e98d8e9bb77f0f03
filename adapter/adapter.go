package adapter

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/tree"
)

// Handlers consumed by adapters. The bridge package implements them over
// foreign callbacks.
type (
	ActivationHandler interface {
		RequestInitialTree() *tree.TreeUpdate
	}

	ActionHandler interface {
		DoAction(req *tree.ActionRequest)
	}

	DeactivationHandler interface {
		DeactivateAccessibility()
	}

	UpdateFactory interface {
		Build() *tree.TreeUpdate
	}
)

// Window identifies the native window an adapter serves.
type Window uintptr

// Adapter tracks the tree a platform consumer sees for one window.
//
// The adapter starts inactive. It becomes active when a platform request
// arrives and the activation handler supplies a tree, and returns to
// inactive on Deactivate. While inactive, updates are never built.
type Adapter struct {
	mu            sync.Mutex
	window        Window
	action        ActionHandler
	sink          EventSink
	state         *tree.State
	windowFocused bool
	hover         codec.Opt[tree.NodeID]
}

// New creates an inactive adapter for window. Events are delivered to sink
// when queued events are raised.
func New(window Window, windowFocused bool, action ActionHandler, sink EventSink) *Adapter {
	if sink == nil {
		sink = DiscardSink
	}
	return &Adapter{window: window, action: action, sink: sink, windowFocused: windowFocused}
}

func (a *Adapter) Window() Window { return a.window }

// IsActive reports whether a platform consumer has requested the tree.
func (a *Adapter) IsActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state != nil
}

// HandleRequest serves a platform request for the root object. An inactive
// adapter asks the activation handler for a tree; if none is available the
// result is absent and the adapter stays inactive.
func (a *Adapter) HandleRequest(activation ActivationHandler) codec.Opt[tree.NodeID] {
	a.mu.Lock()
	if a.state != nil {
		root := a.state.Tree().Root
		a.mu.Unlock()
		return codec.Some(root)
	}
	a.mu.Unlock()

	// The handler runs without the lock so it may call back into the adapter.
	initial := activation.RequestInitialTree()
	if initial == nil {
		return codec.None[tree.NodeID]()
	}
	if initial.Tree == nil {
		Logger().Warn("initial tree update has no tree information", zap.Uintptr("window", uintptr(a.window)))
		return codec.None[tree.NodeID]()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == nil {
		a.state = tree.NewState()
		a.state.Apply(initial)
		Logger().Debug("adapter activated",
			zap.Uintptr("window", uintptr(a.window)),
			zap.Int("nodes", a.state.Len()))
	}
	return codec.Some(a.state.Tree().Root)
}

// UpdateIfActive builds and applies an update only when the adapter is
// active. It returns nil, without calling the factory, when inactive.
func (a *Adapter) UpdateIfActive(factory UpdateFactory) *QueuedEvents {
	a.mu.Lock()
	active := a.state != nil
	a.mu.Unlock()
	if !active {
		return nil
	}
	u := factory.Build()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == nil {
		// Deactivated while the factory ran.
		return newQueuedEvents(a.sink, nil)
	}
	ch := a.state.Apply(u)
	return newQueuedEvents(a.sink, a.events(ch))
}

func (a *Adapter) events(ch tree.Changes) []Event {
	var events []Event
	for _, id := range ch.Added {
		events = append(events, Event{Kind: EventNodeCreated, Node: id})
	}
	for _, id := range ch.Updated {
		events = append(events, Event{Kind: EventNodeUpdated, Node: id})
	}
	for _, id := range ch.Removed {
		events = append(events, Event{Kind: EventNodeRemoved, Node: id})
		if a.hover.HasValue && a.hover.Value == id {
			a.hover = codec.None[tree.NodeID]()
		}
	}
	if ch.FocusChanged && a.windowFocused {
		events = append(events, Event{Kind: EventFocusMoved, Node: a.state.Focus()})
	}
	return events
}

// UpdateWindowFocusState records whether the window has keyboard focus.
// It returns nil when inactive.
func (a *Adapter) UpdateWindowFocusState(focused bool) *QueuedEvents {
	a.mu.Lock()
	defer a.mu.Unlock()
	changed := a.windowFocused != focused
	a.windowFocused = focused
	if a.state == nil {
		return nil
	}
	var events []Event
	if changed {
		events = append(events, Event{Kind: EventWindowFocusChanged, Focused: focused})
		if focused {
			events = append(events, Event{Kind: EventFocusMoved, Node: a.state.Focus()})
		}
	}
	return newQueuedEvents(a.sink, events)
}

// FocusedNode returns the focused node while the adapter is active and the
// window has focus.
func (a *Adapter) FocusedNode() codec.Opt[tree.NodeID] {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == nil || !a.windowFocused {
		return codec.None[tree.NodeID]()
	}
	return codec.Some(a.state.Focus())
}

// FindFocus answers a platform query for the focused node, activating the
// adapter first when needed. The result is absent when no tree is available
// or the window is not focused.
func (a *Adapter) FindFocus(activation ActivationHandler) codec.Opt[tree.NodeID] {
	if !a.HandleRequest(activation).HasValue {
		return codec.None[tree.NodeID]()
	}
	return a.FocusedNode()
}

// HoverKind is the pointer motion reported to HoverEvent.
type HoverKind uint8

const (
	HoverEnter HoverKind = iota
	HoverMove
	HoverExit
)

func (k HoverKind) Valid() bool { return k <= HoverExit }

// HoverEvent hit-tests a pointer position, in root coordinates, against the
// current tree and queues hover enter and exit events for the node under
// the pointer. The adapter is activated first when needed. It returns nil
// when no tree is available.
func (a *Adapter) HoverEvent(activation ActivationHandler, kind HoverKind, p tree.Point) *QueuedEvents {
	if !a.HandleRequest(activation).HasValue {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == nil {
		return nil
	}

	var target codec.Opt[tree.NodeID]
	if kind != HoverExit {
		id, ok := a.state.HitTest(p)
		target = codec.OptOf(id, ok)
	}
	if target == a.hover {
		return newQueuedEvents(a.sink, nil)
	}
	var events []Event
	if a.hover.HasValue {
		events = append(events, Event{Kind: EventHoverExited, Node: a.hover.Value})
	}
	if target.HasValue {
		events = append(events, Event{Kind: EventHoverEntered, Node: target.Value})
	}
	a.hover = target
	return newQueuedEvents(a.sink, events)
}

// Node returns a copy of a node in the current tree.
func (a *Adapter) Node(id tree.NodeID) (*tree.Node, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == nil {
		return nil, false
	}
	n, ok := a.state.Node(id)
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

// PerformAction forwards req to the action handler when the target is in
// the current tree. It reports whether the request was dispatched.
func (a *Adapter) PerformAction(req *tree.ActionRequest) bool {
	a.mu.Lock()
	known := false
	if a.state != nil {
		_, known = a.state.Node(req.Target)
	}
	a.mu.Unlock()

	if !known {
		Logger().Debug("ignoring action for unknown node",
			zap.Stringer("action", req.Action),
			zap.Uint64("target", uint64(req.Target)))
		return false
	}
	a.action.DoAction(req)
	return true
}

// Deactivate drops the tree and notifies handler. It does nothing when the
// adapter is already inactive.
func (a *Adapter) Deactivate(handler DeactivationHandler) {
	a.mu.Lock()
	wasActive := a.state != nil
	a.state = nil
	a.hover = codec.None[tree.NodeID]()
	a.mu.Unlock()
	if wasActive {
		handler.DeactivateAccessibility()
	}
}

// String describes the adapter for debugging.
func (a *Adapter) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == nil {
		return fmt.Sprintf("Adapter{window: %#x, active: false, windowFocused: %t}", a.window, a.windowFocused)
	}
	return fmt.Sprintf("Adapter{window: %#x, active: true, windowFocused: %t, root: %d, focus: %d, nodes: %d}",
		a.window, a.windowFocused, a.state.Tree().Root, a.state.Focus(), a.state.Len())
}

// SubclassingAdapter is an Adapter that intercepts the window's requests
// itself, so its handlers are bound at construction. The activation handler
// is invoked on the thread that owns the window.
type SubclassingAdapter struct {
	*Adapter
	activation ActivationHandler
}

// NewSubclassing creates a subclassing adapter for window.
func NewSubclassing(window Window, activation ActivationHandler, action ActionHandler, sink EventSink) *SubclassingAdapter {
	return &SubclassingAdapter{
		Adapter:    New(window, false, action, sink),
		activation: activation,
	}
}

// HandleRequest serves a platform request using the bound activation
// handler.
func (s *SubclassingAdapter) HandleRequest() codec.Opt[tree.NodeID] {
	return s.Adapter.HandleRequest(s.activation)
}

func (s *SubclassingAdapter) String() string {
	return "Subclassing" + s.Adapter.String()
}
