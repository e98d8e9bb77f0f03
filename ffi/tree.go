package ffi

import (
	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/tree"
)

// TreeNew returns an owned tree rooted at root.
func (b *Boundary) TreeNew(root tree.NodeID) handle.Handle {
	return b.Trees.ToHandle(tree.NewTree(root))
}

func (b *Boundary) TreeFree(h handle.Handle) {
	b.Trees.Release(h)
}

func (b *Boundary) TreeDebug(h handle.Handle) accesskit.Addr {
	return b.debug("tree_debug", b.Trees.FromHandle(h))
}

// TreeToolkitName returns an owned copy of the toolkit name, or null.
func (b *Boundary) TreeToolkitName(h handle.Handle) accesskit.Addr {
	return b.optString("tree_toolkit_name", b.Trees.FromHandle(h).ToolkitName)
}

func (b *Boundary) TreeSetToolkitName(h handle.Handle, addr accesskit.Addr) {
	t := b.Trees.FromHandleMut(h)
	t.ToolkitName = b.decodeRequired("toolkit_name", addr)
}

func (b *Boundary) TreeSetToolkitNameWithLength(h handle.Handle, addr accesskit.Addr, n uintptr) {
	t := b.Trees.FromHandleMut(h)
	t.ToolkitName = b.decodeN(addr, n)
}

func (b *Boundary) TreeClearToolkitName(h handle.Handle) {
	b.Trees.FromHandleMut(h).ToolkitName = nil
}

// TreeToolkitVersion returns an owned copy of the toolkit version, or null.
func (b *Boundary) TreeToolkitVersion(h handle.Handle) accesskit.Addr {
	return b.optString("tree_toolkit_version", b.Trees.FromHandle(h).ToolkitVersion)
}

func (b *Boundary) TreeSetToolkitVersion(h handle.Handle, addr accesskit.Addr) {
	t := b.Trees.FromHandleMut(h)
	t.ToolkitVersion = b.decodeRequired("toolkit_version", addr)
}

func (b *Boundary) TreeSetToolkitVersionWithLength(h handle.Handle, addr accesskit.Addr, n uintptr) {
	t := b.Trees.FromHandleMut(h)
	t.ToolkitVersion = b.decodeN(addr, n)
}

func (b *Boundary) TreeClearToolkitVersion(h handle.Handle) {
	b.Trees.FromHandleMut(h).ToolkitVersion = nil
}

func (b *Boundary) optString(op string, s *string) accesskit.Addr {
	if s == nil {
		return 0
	}
	return b.encodeString(op, *s, true)
}

func (b *Boundary) decodeRequired(path string, addr accesskit.Addr) *string {
	requirePointer(addr, path, "const char *")
	s, err := codec.DecodeCString(b.mem, addr)
	errorsMust(err)
	return &s
}

func (b *Boundary) decodeN(addr accesskit.Addr, n uintptr) *string {
	s, err := codec.DecodeStringN(b.mem, addr, n)
	errorsMust(err)
	return &s
}

// TreeUpdateWithFocus returns an owned, empty update focusing focus.
func (b *Boundary) TreeUpdateWithFocus(focus tree.NodeID) handle.Handle {
	return b.Updates.ToHandle(tree.NewTreeUpdate(focus))
}

// TreeUpdateWithCapacityAndFocus is TreeUpdateWithFocus with room reserved
// for capacity nodes.
func (b *Boundary) TreeUpdateWithCapacityAndFocus(capacity uintptr, focus tree.NodeID) handle.Handle {
	return b.Updates.ToHandle(tree.NewTreeUpdateWithCapacity(int(min(capacity, 1<<20)), focus))
}

func (b *Boundary) TreeUpdateFree(h handle.Handle) {
	b.Updates.Release(h)
}

// TreeUpdatePushNode appends a node to the update and consumes the node
// handle.
func (b *Boundary) TreeUpdatePushNode(h handle.Handle, id tree.NodeID, node handle.Handle) {
	u := b.Updates.FromHandleMut(h)
	u.PushNode(id, b.Nodes.Take(node))
}

// TreeUpdateSetTree sets the tree information and consumes the tree handle.
func (b *Boundary) TreeUpdateSetTree(h handle.Handle, t handle.Handle) {
	u := b.Updates.FromHandleMut(h)
	u.SetTree(b.Trees.Take(t))
}

func (b *Boundary) TreeUpdateClearTree(h handle.Handle) {
	b.Updates.FromHandleMut(h).ClearTree()
}

func (b *Boundary) TreeUpdateSetFocus(h handle.Handle, focus tree.NodeID) {
	b.Updates.FromHandleMut(h).SetFocus(focus)
}

func (b *Boundary) TreeUpdateDebug(h handle.Handle) accesskit.Addr {
	return b.debug("tree_update_debug", b.Updates.FromHandle(h))
}
