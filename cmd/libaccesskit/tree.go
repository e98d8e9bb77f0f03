package main

/*
#include "accesskit_types.h"
*/
import "C"

import (
	"github.com/wippyai/accesskit-go/tree"
)

//export accesskit_tree_new
func accesskit_tree_new(root C.accesskit_node_id) C.uintptr_t {
	defer guard("accesskit_tree_new")
	return out(boundary.TreeNew(tree.NodeID(root)))
}

//export accesskit_tree_free
func accesskit_tree_free(t C.uintptr_t) {
	defer guard("accesskit_tree_free")
	boundary.TreeFree(ref(t))
}

//export accesskit_tree_get_toolkit_name
func accesskit_tree_get_toolkit_name(t C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_tree_get_toolkit_name")
	return C.uintptr_t(boundary.TreeToolkitName(ref(t)))
}

//export accesskit_tree_set_toolkit_name
func accesskit_tree_set_toolkit_name(t C.uintptr_t, name C.uintptr_t) {
	defer guard("accesskit_tree_set_toolkit_name")
	boundary.TreeSetToolkitName(ref(t), addr(name))
}

//export accesskit_tree_set_toolkit_name_with_length
func accesskit_tree_set_toolkit_name_with_length(t C.uintptr_t, length C.size_t, name C.uintptr_t) {
	defer guard("accesskit_tree_set_toolkit_name_with_length")
	boundary.TreeSetToolkitNameWithLength(ref(t), addr(name), uintptr(length))
}

//export accesskit_tree_clear_toolkit_name
func accesskit_tree_clear_toolkit_name(t C.uintptr_t) {
	defer guard("accesskit_tree_clear_toolkit_name")
	boundary.TreeClearToolkitName(ref(t))
}

//export accesskit_tree_get_toolkit_version
func accesskit_tree_get_toolkit_version(t C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_tree_get_toolkit_version")
	return C.uintptr_t(boundary.TreeToolkitVersion(ref(t)))
}

//export accesskit_tree_set_toolkit_version
func accesskit_tree_set_toolkit_version(t C.uintptr_t, version C.uintptr_t) {
	defer guard("accesskit_tree_set_toolkit_version")
	boundary.TreeSetToolkitVersion(ref(t), addr(version))
}

//export accesskit_tree_set_toolkit_version_with_length
func accesskit_tree_set_toolkit_version_with_length(t C.uintptr_t, length C.size_t, version C.uintptr_t) {
	defer guard("accesskit_tree_set_toolkit_version_with_length")
	boundary.TreeSetToolkitVersionWithLength(ref(t), addr(version), uintptr(length))
}

//export accesskit_tree_clear_toolkit_version
func accesskit_tree_clear_toolkit_version(t C.uintptr_t) {
	defer guard("accesskit_tree_clear_toolkit_version")
	boundary.TreeClearToolkitVersion(ref(t))
}

//export accesskit_tree_debug
func accesskit_tree_debug(t C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_tree_debug")
	return C.uintptr_t(boundary.TreeDebug(ref(t)))
}

//export accesskit_tree_update_with_focus
func accesskit_tree_update_with_focus(focus C.accesskit_node_id) C.uintptr_t {
	defer guard("accesskit_tree_update_with_focus")
	return out(boundary.TreeUpdateWithFocus(tree.NodeID(focus)))
}

//export accesskit_tree_update_with_capacity_and_focus
func accesskit_tree_update_with_capacity_and_focus(capacity C.size_t, focus C.accesskit_node_id) C.uintptr_t {
	defer guard("accesskit_tree_update_with_capacity_and_focus")
	return out(boundary.TreeUpdateWithCapacityAndFocus(uintptr(capacity), tree.NodeID(focus)))
}

//export accesskit_tree_update_free
func accesskit_tree_update_free(update C.uintptr_t) {
	defer guard("accesskit_tree_update_free")
	boundary.TreeUpdateFree(ref(update))
}

// accesskit_tree_update_push_node consumes node.
//
//export accesskit_tree_update_push_node
func accesskit_tree_update_push_node(update C.uintptr_t, id C.accesskit_node_id, node C.uintptr_t) {
	defer guard("accesskit_tree_update_push_node")
	boundary.TreeUpdatePushNode(ref(update), tree.NodeID(id), ref(node))
}

// accesskit_tree_update_set_tree consumes t.
//
//export accesskit_tree_update_set_tree
func accesskit_tree_update_set_tree(update C.uintptr_t, t C.uintptr_t) {
	defer guard("accesskit_tree_update_set_tree")
	boundary.TreeUpdateSetTree(ref(update), ref(t))
}

//export accesskit_tree_update_clear_tree
func accesskit_tree_update_clear_tree(update C.uintptr_t) {
	defer guard("accesskit_tree_update_clear_tree")
	boundary.TreeUpdateClearTree(ref(update))
}

//export accesskit_tree_update_set_focus
func accesskit_tree_update_set_focus(update C.uintptr_t, focus C.accesskit_node_id) {
	defer guard("accesskit_tree_update_set_focus")
	boundary.TreeUpdateSetFocus(ref(update), tree.NodeID(focus))
}

//export accesskit_tree_update_debug
func accesskit_tree_update_debug(update C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_tree_update_debug")
	return C.uintptr_t(boundary.TreeUpdateDebug(ref(update)))
}

//export accesskit_action_request_free
func accesskit_action_request_free(request C.uintptr_t) {
	defer guard("accesskit_action_request_free")
	boundary.ActionRequestFree(addr(request))
}
