package main

/*
#include "accesskit_types.h"
*/
import "C"

import (
	"github.com/wippyai/accesskit-go/ffi"
	"github.com/wippyai/accesskit-go/tree"
)

// accesskit_node_transform returns an owned copy of the transform, or null.
// Release it with accesskit_affine_free.
//
//export accesskit_node_transform
func accesskit_node_transform(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_transform")
	return C.uintptr_t(boundary.NodeTransform(ref(node)))
}

//export accesskit_node_set_transform
func accesskit_node_set_transform(node C.uintptr_t, value C.uintptr_t) {
	defer guard("accesskit_node_set_transform")
	boundary.NodeSetTransform(ref(node), addr(value))
}

//export accesskit_node_clear_transform
func accesskit_node_clear_transform(node C.uintptr_t) {
	defer guard("accesskit_node_clear_transform")
	ffi.Clear(boundary, ref(node), tree.PropTransform)
}

//export accesskit_affine_free
func accesskit_affine_free(affine C.uintptr_t) {
	defer guard("accesskit_affine_free")
	boundary.AffineFree(addr(affine))
}

//export accesskit_node_bounds
func accesskit_node_bounds(node C.uintptr_t) C.accesskit_opt_rect {
	defer guard("accesskit_node_bounds")
	return optRect(ffi.Get(boundary, ref(node), tree.PropBounds))
}

//export accesskit_node_set_bounds
func accesskit_node_set_bounds(node C.uintptr_t, value C.accesskit_rect) {
	defer guard("accesskit_node_set_bounds")
	ffi.Set(boundary, ref(node), tree.PropBounds, toRect(value))
}

//export accesskit_node_clear_bounds
func accesskit_node_clear_bounds(node C.uintptr_t) {
	defer guard("accesskit_node_clear_bounds")
	ffi.Clear(boundary, ref(node), tree.PropBounds)
}

//export accesskit_node_text_selection
func accesskit_node_text_selection(node C.uintptr_t) C.accesskit_opt_text_selection {
	defer guard("accesskit_node_text_selection")
	return optTextSelection(ffi.Get(boundary, ref(node), tree.PropTextSelection))
}

//export accesskit_node_set_text_selection
func accesskit_node_set_text_selection(node C.uintptr_t, value C.accesskit_text_selection) {
	defer guard("accesskit_node_set_text_selection")
	ffi.Set(boundary, ref(node), tree.PropTextSelection, toTextSelection(value))
}

//export accesskit_node_clear_text_selection
func accesskit_node_clear_text_selection(node C.uintptr_t) {
	defer guard("accesskit_node_clear_text_selection")
	ffi.Clear(boundary, ref(node), tree.PropTextSelection)
}

//export accesskit_node_ids_free
func accesskit_node_ids_free(ids C.uintptr_t) {
	defer guard("accesskit_node_ids_free")
	boundary.NodeIDsFree(addr(ids))
}

//export accesskit_lengths_free
func accesskit_lengths_free(lengths C.uintptr_t) {
	defer guard("accesskit_lengths_free")
	boundary.LengthsFree(addr(lengths))
}

//export accesskit_coords_free
func accesskit_coords_free(coords C.uintptr_t) {
	defer guard("accesskit_coords_free")
	boundary.CoordsFree(addr(coords))
}

// accesskit_node_custom_actions returns an owned array. Release it, and
// every description in it, with accesskit_custom_actions_free.
//
//export accesskit_node_custom_actions
func accesskit_node_custom_actions(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_custom_actions")
	return C.uintptr_t(boundary.NodeCustomActions(ref(node)))
}

// accesskit_node_set_custom_actions borrows values and their descriptions.
//
//export accesskit_node_set_custom_actions
func accesskit_node_set_custom_actions(node C.uintptr_t, length C.size_t, values C.uintptr_t) {
	defer guard("accesskit_node_set_custom_actions")
	boundary.NodeSetCustomActions(ref(node), uintptr(length), addr(values))
}

// accesskit_node_push_custom_action takes ownership of item's description.
//
//export accesskit_node_push_custom_action
func accesskit_node_push_custom_action(node C.uintptr_t, item C.accesskit_custom_action) {
	defer guard("accesskit_node_push_custom_action")
	boundary.NodePushCustomAction(ref(node), ffi.CustomActionRecord{
		ID:          int32(item.id),
		Description: cStringAddr(item.description),
	})
}

//export accesskit_node_clear_custom_actions
func accesskit_node_clear_custom_actions(node C.uintptr_t) {
	defer guard("accesskit_node_clear_custom_actions")
	boundary.NodeClearCustomActions(ref(node))
}

//export accesskit_custom_actions_free
func accesskit_custom_actions_free(actions C.uintptr_t) {
	defer guard("accesskit_custom_actions_free")
	boundary.CustomActionsFree(addr(actions))
}

//export accesskit_custom_action_new
func accesskit_custom_action_new(id C.int32_t, description C.uintptr_t) C.accesskit_custom_action {
	defer guard("accesskit_custom_action_new")
	return customAction(boundary.CustomActionNew(int32(id), addr(description)))
}

//export accesskit_custom_action_new_with_length
func accesskit_custom_action_new_with_length(id C.int32_t, length C.size_t, description C.uintptr_t) C.accesskit_custom_action {
	defer guard("accesskit_custom_action_new_with_length")
	return customAction(boundary.CustomActionNewWithLength(int32(id), addr(description), uintptr(length)))
}

// accesskit_custom_action_free releases an action that was never pushed.
//
//export accesskit_custom_action_free
func accesskit_custom_action_free(action C.accesskit_custom_action) {
	defer guard("accesskit_custom_action_free")
	boundary.CustomActionFree(ffi.CustomActionRecord{
		ID:          int32(action.id),
		Description: cStringAddr(action.description),
	})
}

func customAction(r ffi.CustomActionRecord) C.accesskit_custom_action {
	return C.accesskit_custom_action{id: C.int32_t(r.ID), description: cString(r.Description)}
}
