package main

/*
#include "accesskit_types.h"
*/
import "C"

import (
	"github.com/wippyai/accesskit-go/tree"
)

//export accesskit_node_new
func accesskit_node_new(role C.accesskit_role) C.uintptr_t {
	defer guard("accesskit_node_new")
	return out(boundary.NodeNew(tree.Role(role)))
}

//export accesskit_node_free
func accesskit_node_free(node C.uintptr_t) {
	defer guard("accesskit_node_free")
	boundary.NodeFree(ref(node))
}

//export accesskit_node_debug
func accesskit_node_debug(node C.uintptr_t) C.uintptr_t {
	defer guard("accesskit_node_debug")
	return C.uintptr_t(boundary.NodeDebug(ref(node)))
}

//export accesskit_node_role
func accesskit_node_role(node C.uintptr_t) C.accesskit_role {
	defer guard("accesskit_node_role")
	return C.accesskit_role(boundary.NodeRole(ref(node)))
}

//export accesskit_node_set_role
func accesskit_node_set_role(node C.uintptr_t, role C.accesskit_role) {
	defer guard("accesskit_node_set_role")
	boundary.NodeSetRole(ref(node), tree.Role(role))
}

//export accesskit_node_supports_action
func accesskit_node_supports_action(node C.uintptr_t, action C.accesskit_action) C.bool {
	defer guard("accesskit_node_supports_action")
	return C.bool(boundary.NodeSupportsAction(ref(node), tree.Action(action)))
}

//export accesskit_node_add_action
func accesskit_node_add_action(node C.uintptr_t, action C.accesskit_action) {
	defer guard("accesskit_node_add_action")
	boundary.NodeAddAction(ref(node), tree.Action(action))
}

//export accesskit_node_remove_action
func accesskit_node_remove_action(node C.uintptr_t, action C.accesskit_action) {
	defer guard("accesskit_node_remove_action")
	boundary.NodeRemoveAction(ref(node), tree.Action(action))
}

//export accesskit_node_clear_actions
func accesskit_node_clear_actions(node C.uintptr_t) {
	defer guard("accesskit_node_clear_actions")
	boundary.NodeClearActions(ref(node))
}

//export accesskit_node_child_supports_action
func accesskit_node_child_supports_action(node C.uintptr_t, action C.accesskit_action) C.bool {
	defer guard("accesskit_node_child_supports_action")
	return C.bool(boundary.NodeChildSupportsAction(ref(node), tree.Action(action)))
}

//export accesskit_node_add_child_action
func accesskit_node_add_child_action(node C.uintptr_t, action C.accesskit_action) {
	defer guard("accesskit_node_add_child_action")
	boundary.NodeAddChildAction(ref(node), tree.Action(action))
}

//export accesskit_node_remove_child_action
func accesskit_node_remove_child_action(node C.uintptr_t, action C.accesskit_action) {
	defer guard("accesskit_node_remove_child_action")
	boundary.NodeRemoveChildAction(ref(node), tree.Action(action))
}

//export accesskit_node_clear_child_actions
func accesskit_node_clear_child_actions(node C.uintptr_t) {
	defer guard("accesskit_node_clear_child_actions")
	boundary.NodeClearChildActions(ref(node))
}
