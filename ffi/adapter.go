package ffi

import (
	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/adapter"
	"github.com/wippyai/accesskit-go/bridge"
	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/tree"
)

// Adapter is the value behind an accesskit_adapter handle.
type Adapter struct {
	*adapter.Adapter
	deactivation *bridge.DeactivationHandler
}

// SubclassingAdapter is the value behind an accesskit_subclassing_adapter
// handle.
type SubclassingAdapter struct {
	*adapter.SubclassingAdapter
}

func (b *Boundary) recorderOption() bridge.Option {
	return bridge.WithRecorder(b.recorder)
}

// AdapterNew creates an inactive adapter for window. The deactivation
// callback is optional; the action callback is not.
func (b *Boundary) AdapterNew(window adapter.Window, windowFocused bool,
	actionFn bridge.ActionFunc, actionUserdata bridge.Userdata,
	deactivationFn bridge.DeactivationFunc, deactivationUserdata bridge.Userdata) handle.Handle {
	action := bridge.NewActionHandler(actionFn, actionUserdata, b)
	a := &Adapter{Adapter: adapter.New(window, windowFocused, action, b.sink)}
	if deactivationFn != nil {
		a.deactivation = bridge.NewDeactivationHandler(deactivationFn, deactivationUserdata)
	}
	return b.Adapters.ToHandle(a)
}

func (b *Boundary) AdapterFree(h handle.Handle) {
	b.Adapters.Release(h)
}

// AdapterUpdateIfActive calls the factory only while the adapter is active.
// It returns an owned queued events handle, or null when inactive.
func (b *Boundary) AdapterUpdateIfActive(h handle.Handle, factoryFn bridge.FactoryFunc, userdata bridge.Userdata) handle.Handle {
	a := b.Adapters.FromHandle(h)
	factory := bridge.NewUpdateFactory(factoryFn, userdata, b.Updates, b.recorderOption())
	return b.Events.ToNullableHandle(a.UpdateIfActive(factory))
}

// AdapterUpdateWindowFocusState returns an owned queued events handle, or
// null when inactive.
func (b *Boundary) AdapterUpdateWindowFocusState(h handle.Handle, focused bool) handle.Handle {
	a := b.Adapters.FromHandle(h)
	return b.Events.ToNullableHandle(a.UpdateWindowFocusState(focused))
}

// AdapterHandleRequest serves a platform request for the root, activating
// the adapter through the activation callback when needed.
func (b *Boundary) AdapterHandleRequest(h handle.Handle, activationFn bridge.ActivationFunc, userdata bridge.Userdata) codec.Opt[tree.NodeID] {
	a := b.Adapters.FromHandle(h)
	activation := bridge.NewActivationHandler(activationFn, userdata, b.Updates, b.recorderOption())
	return a.HandleRequest(activation)
}

// AdapterFindFocus returns the focused node, activating the adapter
// through the activation callback when needed.
func (b *Boundary) AdapterFindFocus(h handle.Handle, activationFn bridge.ActivationFunc, userdata bridge.Userdata) codec.Opt[tree.NodeID] {
	a := b.Adapters.FromHandle(h)
	activation := bridge.NewActivationHandler(activationFn, userdata, b.Updates, b.recorderOption())
	return a.FindFocus(activation)
}

// AdapterHoverEvent hit-tests a pointer position and returns an owned
// queued events handle, or null when no tree is available.
func (b *Boundary) AdapterHoverEvent(h handle.Handle, activationFn bridge.ActivationFunc, userdata bridge.Userdata,
	kind adapter.HoverKind, p tree.Point) handle.Handle {
	requireValid("accesskit_hover_kind", kind)
	a := b.Adapters.FromHandle(h)
	activation := bridge.NewActivationHandler(activationFn, userdata, b.Updates, b.recorderOption())
	return b.Events.ToNullableHandle(a.HoverEvent(activation, kind, p))
}

// AdapterPerformAction dispatches a platform action request to the
// application. It reports whether the target was known.
func (b *Boundary) AdapterPerformAction(h handle.Handle, req *tree.ActionRequest) bool {
	return b.Adapters.FromHandle(h).PerformAction(req)
}

// AdapterDeactivate drops the adapter's tree and invokes the deactivation
// callback, if any.
func (b *Boundary) AdapterDeactivate(h handle.Handle) {
	a := b.Adapters.FromHandle(h)
	if a.deactivation == nil {
		a.Deactivate(noDeactivation{})
		return
	}
	a.Deactivate(a.deactivation)
}

func (b *Boundary) AdapterDebug(h handle.Handle) accesskit.Addr {
	return b.encodeString("adapter_debug", b.Adapters.FromHandle(h).String(), true)
}

type noDeactivation struct{}

func (noDeactivation) DeactivateAccessibility() {}

// SubclassingAdapterNew creates a subclassing adapter for window with its
// callbacks bound at construction.
func (b *Boundary) SubclassingAdapterNew(window adapter.Window,
	activationFn bridge.ActivationFunc, activationUserdata bridge.Userdata,
	actionFn bridge.ActionFunc, actionUserdata bridge.Userdata) handle.Handle {
	activation := bridge.NewActivationHandler(activationFn, activationUserdata, b.Updates, b.recorderOption())
	action := bridge.NewActionHandler(actionFn, actionUserdata, b)
	s := &SubclassingAdapter{adapter.NewSubclassing(window, activation, action, b.sink)}
	return b.SubclassingAdapters.ToHandle(s)
}

func (b *Boundary) SubclassingAdapterFree(h handle.Handle) {
	b.SubclassingAdapters.Release(h)
}

func (b *Boundary) SubclassingAdapterUpdateIfActive(h handle.Handle, factoryFn bridge.FactoryFunc, userdata bridge.Userdata) handle.Handle {
	s := b.SubclassingAdapters.FromHandle(h)
	factory := bridge.NewUpdateFactory(factoryFn, userdata, b.Updates, b.recorderOption())
	return b.Events.ToNullableHandle(s.UpdateIfActive(factory))
}

func (b *Boundary) SubclassingAdapterHandleRequest(h handle.Handle) codec.Opt[tree.NodeID] {
	return b.SubclassingAdapters.FromHandle(h).HandleRequest()
}

func (b *Boundary) SubclassingAdapterDebug(h handle.Handle) accesskit.Addr {
	return b.encodeString("subclassing_adapter_debug", b.SubclassingAdapters.FromHandle(h).String(), true)
}

// QueuedEventsRaise delivers the events and consumes the handle.
func (b *Boundary) QueuedEventsRaise(h handle.Handle) {
	b.Events.Take(h).Raise()
}

// QueuedEventsFree drops the events without delivering them.
func (b *Boundary) QueuedEventsFree(h handle.Handle) {
	b.Events.Release(h)
}
