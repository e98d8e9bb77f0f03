package ffi

import (
	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/tree"
)

// NodeNew returns an owned node with the given role.
func (b *Boundary) NodeNew(role tree.Role) handle.Handle {
	requireValid("accesskit_role", role)
	return b.Nodes.ToHandle(tree.NewNode(role))
}

// NodeFree releases an owned node.
func (b *Boundary) NodeFree(h handle.Handle) {
	b.Nodes.Release(h)
}

// NodeDebug returns an owned rendering of the node.
func (b *Boundary) NodeDebug(h handle.Handle) accesskit.Addr {
	return b.debug("node_debug", b.Nodes.FromHandle(h))
}

func (b *Boundary) NodeRole(h handle.Handle) tree.Role {
	return b.Nodes.FromHandle(h).Role()
}

func (b *Boundary) NodeSetRole(h handle.Handle, role tree.Role) {
	requireValid("accesskit_role", role)
	b.Nodes.FromHandleMut(h).SetRole(role)
}

func (b *Boundary) NodeSupportsAction(h handle.Handle, a tree.Action) bool {
	requireValid("accesskit_action", a)
	return b.Nodes.FromHandle(h).Supports(a)
}

func (b *Boundary) NodeAddAction(h handle.Handle, a tree.Action) {
	requireValid("accesskit_action", a)
	b.Nodes.FromHandleMut(h).AddAction(a)
}

func (b *Boundary) NodeRemoveAction(h handle.Handle, a tree.Action) {
	requireValid("accesskit_action", a)
	b.Nodes.FromHandleMut(h).RemoveAction(a)
}

func (b *Boundary) NodeClearActions(h handle.Handle) {
	b.Nodes.FromHandleMut(h).ClearActions()
}

func (b *Boundary) NodeChildSupportsAction(h handle.Handle, a tree.Action) bool {
	requireValid("accesskit_action", a)
	return b.Nodes.FromHandle(h).ChildSupports(a)
}

func (b *Boundary) NodeAddChildAction(h handle.Handle, a tree.Action) {
	requireValid("accesskit_action", a)
	b.Nodes.FromHandleMut(h).AddChildAction(a)
}

func (b *Boundary) NodeRemoveChildAction(h handle.Handle, a tree.Action) {
	requireValid("accesskit_action", a)
	b.Nodes.FromHandleMut(h).RemoveChildAction(a)
}

func (b *Boundary) NodeClearChildActions(h handle.Handle) {
	b.Nodes.FromHandleMut(h).ClearChildActions()
}

// NodeFlag reports whether a boolean flag is set.
func (b *Boundary) NodeFlag(h handle.Handle, f tree.Flag) bool {
	requireValid("flag", f)
	return b.Nodes.FromHandle(h).Flag(f)
}

func (b *Boundary) NodeSetFlag(h handle.Handle, f tree.Flag) {
	requireValid("flag", f)
	b.Nodes.FromHandleMut(h).SetFlag(f)
}

func (b *Boundary) NodeClearFlag(h handle.Handle, f tree.Flag) {
	requireValid("flag", f)
	b.Nodes.FromHandleMut(h).ClearFlag(f)
}
