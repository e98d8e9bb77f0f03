package main

/*
#include "accesskit_types.h"
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/accesskit-go/adapter"
)

// accesskit_adapter_new creates an inactive adapter for window. The action
// handler may be called on any thread; the deactivation handler is optional
// and runs on the thread calling accesskit_adapter_deactivate.
//
//export accesskit_adapter_new
func accesskit_adapter_new(window C.uintptr_t, isWindowFocused C.bool,
	actionHandler C.accesskit_action_handler_callback, actionHandlerUserdata unsafe.Pointer,
	deactivationHandler C.accesskit_deactivation_handler_callback, deactivationHandlerUserdata unsafe.Pointer) C.uintptr_t {
	defer guard("accesskit_adapter_new")
	return out(boundary.AdapterNew(adapter.Window(window), bool(isWindowFocused),
		actionFunc(actionHandler), userdata(actionHandlerUserdata),
		deactivationFunc(deactivationHandler), userdata(deactivationHandlerUserdata)))
}

//export accesskit_adapter_free
func accesskit_adapter_free(a C.uintptr_t) {
	defer guard("accesskit_adapter_free")
	boundary.AdapterFree(ref(a))
}

// accesskit_adapter_update_if_active returns queued events that must be
// raised or freed, or null when the adapter is inactive. The factory is not
// called in that case.
//
//export accesskit_adapter_update_if_active
func accesskit_adapter_update_if_active(a C.uintptr_t, factory C.accesskit_tree_update_factory, factoryUserdata unsafe.Pointer) C.uintptr_t {
	defer guard("accesskit_adapter_update_if_active")
	return out(boundary.AdapterUpdateIfActive(ref(a), factoryFunc(factory), userdata(factoryUserdata)))
}

//export accesskit_adapter_update_window_focus_state
func accesskit_adapter_update_window_focus_state(a C.uintptr_t, isFocused C.bool) C.uintptr_t {
	defer guard("accesskit_adapter_update_window_focus_state")
	return out(boundary.AdapterUpdateWindowFocusState(ref(a), bool(isFocused)))
}

// accesskit_adapter_handle_request answers a platform request for the root
// node. The activation handler runs on the calling thread and only while
// the adapter is inactive.
//
//export accesskit_adapter_handle_request
func accesskit_adapter_handle_request(a C.uintptr_t, activationHandler C.accesskit_activation_handler_callback, activationHandlerUserdata unsafe.Pointer) C.accesskit_opt_node_id {
	defer guard("accesskit_adapter_handle_request")
	return optNodeID(boundary.AdapterHandleRequest(ref(a), activationFunc(activationHandler), userdata(activationHandlerUserdata)))
}

// accesskit_adapter_find_focus returns the focused node, activating the
// adapter on the calling thread when needed. It is absent while the window
// is unfocused or no tree is available.
//
//export accesskit_adapter_find_focus
func accesskit_adapter_find_focus(a C.uintptr_t, activationHandler C.accesskit_activation_handler_callback, activationHandlerUserdata unsafe.Pointer) C.accesskit_opt_node_id {
	defer guard("accesskit_adapter_find_focus")
	return optNodeID(boundary.AdapterFindFocus(ref(a), activationFunc(activationHandler), userdata(activationHandlerUserdata)))
}

// accesskit_adapter_on_hover_event hit-tests point, in root coordinates,
// and returns queued events that must be raised or freed, or null when no
// tree is available.
//
//export accesskit_adapter_on_hover_event
func accesskit_adapter_on_hover_event(a C.uintptr_t, activationHandler C.accesskit_activation_handler_callback, activationHandlerUserdata unsafe.Pointer,
	kind C.accesskit_hover_kind, point C.accesskit_point) C.uintptr_t {
	defer guard("accesskit_adapter_on_hover_event")
	return out(boundary.AdapterHoverEvent(ref(a), activationFunc(activationHandler), userdata(activationHandlerUserdata),
		adapter.HoverKind(kind), toPoint(point)))
}

// accesskit_adapter_perform_action borrows request.
//
//export accesskit_adapter_perform_action
func accesskit_adapter_perform_action(a C.uintptr_t, request C.uintptr_t) C.bool {
	defer guard("accesskit_adapter_perform_action")
	req, err := boundary.DecodeActionRequest(addr(request))
	if err != nil {
		panic(err)
	}
	return C.bool(boundary.AdapterPerformAction(ref(a), req))
}

//export accesskit_adapter_deactivate
func accesskit_adapter_deactivate(a C.uintptr_t) {
	defer guard("accesskit_adapter_deactivate")
	boundary.AdapterDeactivate(ref(a))
}

//export accesskit_adapter_debug
func accesskit_adapter_debug(a C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_adapter_debug")
	return C.uintptr_t(boundary.AdapterDebug(ref(a)))
}

// accesskit_subclassing_adapter_new binds both handlers for the adapter's
// lifetime. The activation handler always runs on the thread owning window.
//
//export accesskit_subclassing_adapter_new
func accesskit_subclassing_adapter_new(window C.uintptr_t,
	activationHandler C.accesskit_activation_handler_callback, activationHandlerUserdata unsafe.Pointer,
	actionHandler C.accesskit_action_handler_callback, actionHandlerUserdata unsafe.Pointer) C.uintptr_t {
	defer guard("accesskit_subclassing_adapter_new")
	return out(boundary.SubclassingAdapterNew(adapter.Window(window),
		activationFunc(activationHandler), userdata(activationHandlerUserdata),
		actionFunc(actionHandler), userdata(actionHandlerUserdata)))
}

//export accesskit_subclassing_adapter_free
func accesskit_subclassing_adapter_free(a C.uintptr_t) {
	defer guard("accesskit_subclassing_adapter_free")
	boundary.SubclassingAdapterFree(ref(a))
}

//export accesskit_subclassing_adapter_update_if_active
func accesskit_subclassing_adapter_update_if_active(a C.uintptr_t, factory C.accesskit_tree_update_factory, factoryUserdata unsafe.Pointer) C.uintptr_t {
	defer guard("accesskit_subclassing_adapter_update_if_active")
	return out(boundary.SubclassingAdapterUpdateIfActive(ref(a), factoryFunc(factory), userdata(factoryUserdata)))
}

//export accesskit_subclassing_adapter_handle_request
func accesskit_subclassing_adapter_handle_request(a C.uintptr_t) C.accesskit_opt_node_id {
	defer guard("accesskit_subclassing_adapter_handle_request")
	return optNodeID(boundary.SubclassingAdapterHandleRequest(ref(a)))
}

//export accesskit_subclassing_adapter_debug
func accesskit_subclassing_adapter_debug(a C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_subclassing_adapter_debug")
	return C.uintptr_t(boundary.SubclassingAdapterDebug(ref(a)))
}

// accesskit_queued_events_raise delivers the events and consumes the
// handle.
//
//export accesskit_queued_events_raise
func accesskit_queued_events_raise(events C.uintptr_t) {
	defer guard("accesskit_queued_events_raise")
	boundary.QueuedEventsRaise(ref(events))
}

//export accesskit_queued_events_free
func accesskit_queued_events_free(events C.uintptr_t) {
	defer guard("accesskit_queued_events_free")
	boundary.QueuedEventsFree(ref(events))
}
