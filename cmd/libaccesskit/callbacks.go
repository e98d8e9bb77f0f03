package main

/*
#include "accesskit_types.h"

static inline uintptr_t ak_call_activation(accesskit_activation_handler_callback fn, uintptr_t userdata) {
	return (uintptr_t)fn((void *)userdata);
}

static inline void ak_call_action(accesskit_action_handler_callback fn, uintptr_t request, uintptr_t userdata) {
	fn((accesskit_action_request *)request, (void *)userdata);
}

static inline void ak_call_deactivation(accesskit_deactivation_handler_callback fn, uintptr_t userdata) {
	fn((void *)userdata);
}

static inline uintptr_t ak_call_factory(accesskit_tree_update_factory fn, uintptr_t userdata) {
	return (uintptr_t)fn((void *)userdata);
}
*/
import "C"

import (
	"unsafe"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/bridge"
	"github.com/wippyai/accesskit-go/handle"
)

// C function pointers become bridge functions here. A null pointer maps to a
// nil function so the bridge reports the missing callback. Userdata is
// carried as an integer and only turned back into a pointer on the C side.

func userdata(p unsafe.Pointer) bridge.Userdata { return bridge.Userdata(uintptr(p)) }

func activationFunc(fn C.accesskit_activation_handler_callback) bridge.ActivationFunc {
	if fn == nil {
		return nil
	}
	return func(ud bridge.Userdata) handle.Handle {
		return handle.Handle(C.ak_call_activation(fn, C.uintptr_t(ud)))
	}
}

func actionFunc(fn C.accesskit_action_handler_callback) bridge.ActionFunc {
	if fn == nil {
		return nil
	}
	return func(request accesskit.Addr, ud bridge.Userdata) {
		C.ak_call_action(fn, C.uintptr_t(request), C.uintptr_t(ud))
	}
}

func deactivationFunc(fn C.accesskit_deactivation_handler_callback) bridge.DeactivationFunc {
	if fn == nil {
		return nil
	}
	return func(ud bridge.Userdata) {
		C.ak_call_deactivation(fn, C.uintptr_t(ud))
	}
}

func factoryFunc(fn C.accesskit_tree_update_factory) bridge.FactoryFunc {
	if fn == nil {
		return nil
	}
	return func(ud bridge.Userdata) handle.Handle {
		return handle.Handle(C.ak_call_factory(fn, C.uintptr_t(ud)))
	}
}
