package ffi

import (
	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/tree"
)

// Property families. Each C getter and setter is one of these helpers bound
// to a property descriptor. Getters never alias node storage: collections
// and strings come back as owned copies.

// Get returns a copy of a scalar property.
func Get[T any](b *Boundary, h handle.Handle, p tree.Property[T]) codec.Opt[T] {
	return codec.OptOf(p.Get(b.Nodes.FromHandle(h)))
}

// Set stores a scalar property.
func Set[T any](b *Boundary, h handle.Handle, p tree.Property[T], v T) {
	p.Set(b.Nodes.FromHandleMut(h), v)
}

// Clear removes any property.
func Clear[T any](b *Boundary, h handle.Handle, p tree.Property[T]) {
	p.Clear(b.Nodes.FromHandleMut(h))
}

// SetEnum stores an enumeration property after validating its
// discriminant.
func SetEnum[E interface {
	~uint8
	Valid() bool
}](b *Boundary, h handle.Handle, p tree.Property[E], v E) {
	requireValid("uint8_t", v, "node", p.Name())
	Set(b, h, p, v)
}

// GetString returns an owned copy of a string property, or null when the
// property is absent.
func GetString(b *Boundary, h handle.Handle, p tree.Property[string]) accesskit.Addr {
	s, ok := p.Get(b.Nodes.FromHandle(h))
	return b.encodeString(p.Name(), s, ok)
}

// SetString copies a caller-owned NUL-terminated string into the node.
func SetString(b *Boundary, h handle.Handle, p tree.Property[string], addr accesskit.Addr) {
	requirePointer(addr, p.Name(), "const char *")
	s, err := codec.DecodeCString(b.mem, addr)
	errorsMust(err)
	Set(b, h, p, s)
}

// SetStringWithLength copies n caller-owned bytes into the node. The bytes
// need not be NUL-terminated.
func SetStringWithLength(b *Boundary, h handle.Handle, p tree.Property[string], addr accesskit.Addr, n uintptr) {
	s, err := codec.DecodeStringN(b.mem, addr, n)
	errorsMust(err)
	Set(b, h, p, s)
}

// GetNodeIDs returns an owned array of a node id list. An absent list is an
// empty array. The caller releases it with NodeIDsFree.
func GetNodeIDs(b *Boundary, h handle.Handle, p tree.VecProperty[tree.NodeID]) accesskit.Addr {
	ids := p.Get(b.Nodes.FromHandle(h))
	addr, err := codec.EncodeArray(b.mem, b.alloc, ids, NodeIDLayout)
	if !b.check(p.Name(), err) {
		return 0
	}
	return addr
}

// SetNodeIDs replaces a node id list with a copy of a borrowed array.
func SetNodeIDs(b *Boundary, h handle.Handle, p tree.VecProperty[tree.NodeID], length uintptr, values accesskit.Addr) {
	ids, err := codec.CopySlice(b.mem, codec.SliceView{Length: length, Values: values}, NodeIDLayout)
	errorsMust(err)
	p.Set(b.Nodes.FromHandleMut(h), ids)
}

// PushNodeID appends one id to a node id list.
func PushNodeID(b *Boundary, h handle.Handle, p tree.VecProperty[tree.NodeID], id tree.NodeID) {
	p.Push(b.Nodes.FromHandleMut(h), id)
}

// ClearVec removes a list property.
func ClearVec[T any](b *Boundary, h handle.Handle, p tree.VecProperty[T]) {
	p.Clear(b.Nodes.FromHandleMut(h))
}

// NodeIDsFree releases an array returned by GetNodeIDs.
func (b *Boundary) NodeIDsFree(addr accesskit.Addr) {
	b.check("node_ids_free", codec.FreeArray(b.mem, b.alloc, addr, NodeIDLayout.Size, NodeIDLayout.Align, nil))
}

// GetLengths returns an owned array of a length list, or null when absent.
// The caller releases it with LengthsFree.
func GetLengths(b *Boundary, h handle.Handle, p tree.Property[[]uint8]) accesskit.Addr {
	return getSlice(b, h, p, codec.U8)
}

// SetLengths replaces a length list with a copy of a borrowed array.
func SetLengths(b *Boundary, h handle.Handle, p tree.Property[[]uint8], length uintptr, values accesskit.Addr) {
	setSlice(b, h, p, codec.U8, length, values)
}

func (b *Boundary) LengthsFree(addr accesskit.Addr) {
	b.check("lengths_free", codec.FreeArray(b.mem, b.alloc, addr, codec.U8.Size, codec.U8.Align, nil))
}

// GetCoords returns an owned array of a coordinate list, or null when
// absent. The caller releases it with CoordsFree.
func GetCoords(b *Boundary, h handle.Handle, p tree.Property[[]float32]) accesskit.Addr {
	return getSlice(b, h, p, codec.F32)
}

// SetCoords replaces a coordinate list with a copy of a borrowed array.
func SetCoords(b *Boundary, h handle.Handle, p tree.Property[[]float32], length uintptr, values accesskit.Addr) {
	setSlice(b, h, p, codec.F32, length, values)
}

func (b *Boundary) CoordsFree(addr accesskit.Addr) {
	b.check("coords_free", codec.FreeArray(b.mem, b.alloc, addr, codec.F32.Size, codec.F32.Align, nil))
}

func getSlice[E any](b *Boundary, h handle.Handle, p tree.Property[[]E], l codec.Layout[E]) accesskit.Addr {
	values, ok := p.Get(b.Nodes.FromHandle(h))
	if !ok {
		return 0
	}
	addr, err := codec.EncodeArray(b.mem, b.alloc, values, l)
	if !b.check(p.Name(), err) {
		return 0
	}
	return addr
}

func setSlice[E any](b *Boundary, h handle.Handle, p tree.Property[[]E], l codec.Layout[E], length uintptr, values accesskit.Addr) {
	v, err := codec.CopySlice(b.mem, codec.SliceView{Length: length, Values: values}, l)
	errorsMust(err)
	p.Set(b.Nodes.FromHandleMut(h), v)
}

// NodeTransform returns an owned copy of the node transform, or null when
// the node has none. The caller releases it with AffineFree.
func (b *Boundary) NodeTransform(h handle.Handle) accesskit.Addr {
	a, ok := tree.PropTransform.Get(b.Nodes.FromHandle(h))
	if !ok {
		return 0
	}
	addr, err := b.alloc.Alloc(AffineLayout.Size, AffineLayout.Align)
	if !b.check("transform", err) {
		return 0
	}
	if err := AffineLayout.Store(b.mem, addr, a); !b.check("transform", err) {
		b.alloc.Free(addr, AffineLayout.Size, AffineLayout.Align)
		return 0
	}
	return addr
}

// NodeSetTransform copies a caller-owned affine into the node.
func (b *Boundary) NodeSetTransform(h handle.Handle, addr accesskit.Addr) {
	requirePointer(addr, "transform", "const struct accesskit_affine *")
	a, err := AffineLayout.Load(b.mem, addr)
	errorsMust(err)
	tree.PropTransform.Set(b.Nodes.FromHandleMut(h), a)
}

// AffineFree releases an affine returned by NodeTransform.
func (b *Boundary) AffineFree(addr accesskit.Addr) {
	requirePointer(addr, "affine", "struct accesskit_affine *")
	b.alloc.Free(addr, AffineLayout.Size, AffineLayout.Align)
}

// NodeCustomActions returns an owned array of the node's custom actions.
// Each description is an owned string. The caller releases the whole array
// with CustomActionsFree.
func (b *Boundary) NodeCustomActions(h handle.Handle) accesskit.Addr {
	actions := tree.PropCustomActions.Get(b.Nodes.FromHandle(h))
	addr, err := codec.EncodeArrayWith(b.mem, b.alloc, actions, CustomActionLayout.Size, CustomActionLayout.Align,
		func(al *codec.AllocationList, addr accesskit.Addr, a tree.CustomAction) error {
			desc, err := codec.EncodeCString(b.mem, b.alloc, a.Description)
			if err != nil {
				return err
			}
			al.Add(desc, uintptr(len(a.Description))+1, 1)
			return CustomActionLayout.Store(b.mem, addr, CustomActionRecord{ID: a.ID, Description: desc})
		})
	if !b.check("custom_actions", err) {
		return 0
	}
	return addr
}

// NodeSetCustomActions replaces the custom actions with copies of a borrowed
// array. The caller keeps ownership of the records and their strings.
func (b *Boundary) NodeSetCustomActions(h handle.Handle, length uintptr, values accesskit.Addr) {
	records, err := codec.CopySlice(b.mem, codec.SliceView{Length: length, Values: values}, CustomActionLayout)
	errorsMust(err)
	actions := make([]tree.CustomAction, len(records))
	for i, r := range records {
		desc, err := codec.DecodeCString(b.mem, r.Description)
		errorsMust(err)
		actions[i] = tree.CustomAction{ID: r.ID, Description: desc}
	}
	tree.PropCustomActions.Set(b.Nodes.FromHandleMut(h), actions)
}

// NodePushCustomAction appends a custom action and takes ownership of its
// description string, which is released here.
func (b *Boundary) NodePushCustomAction(h handle.Handle, r CustomActionRecord) {
	n := b.Nodes.FromHandleMut(h)
	desc, err := codec.DecodeCString(b.mem, r.Description)
	errorsMust(err)
	errorsMust(codec.FreeCString(b.mem, b.alloc, r.Description))
	tree.PropCustomActions.Push(n, tree.CustomAction{ID: r.ID, Description: desc})
}

// NodeClearCustomActions removes all custom actions.
func (b *Boundary) NodeClearCustomActions(h handle.Handle) {
	ClearVec(b, h, tree.PropCustomActions)
}

// CustomActionsFree releases an array returned by NodeCustomActions,
// including every description.
func (b *Boundary) CustomActionsFree(addr accesskit.Addr) {
	err := codec.FreeArray(b.mem, b.alloc, addr, CustomActionLayout.Size, CustomActionLayout.Align,
		func(elem accesskit.Addr) error {
			r, err := CustomActionLayout.Load(b.mem, elem)
			if err != nil {
				return err
			}
			return codec.FreeCString(b.mem, b.alloc, r.Description)
		})
	b.check("custom_actions_free", err)
}

// CustomActionNew builds a custom action record holding an owned copy of a
// caller-owned description.
func (b *Boundary) CustomActionNew(id int32, description accesskit.Addr) CustomActionRecord {
	requirePointer(description, "description", "const char *")
	s, err := codec.DecodeCString(b.mem, description)
	errorsMust(err)
	return b.customAction(id, s)
}

// CustomActionNewWithLength is CustomActionNew for a description given as
// n bytes.
func (b *Boundary) CustomActionNewWithLength(id int32, description accesskit.Addr, n uintptr) CustomActionRecord {
	s, err := codec.DecodeStringN(b.mem, description, n)
	errorsMust(err)
	return b.customAction(id, s)
}

func (b *Boundary) customAction(id int32, description string) CustomActionRecord {
	desc, err := codec.EncodeCString(b.mem, b.alloc, description)
	if !b.check("custom_action_new", err) {
		return CustomActionRecord{ID: id}
	}
	return CustomActionRecord{ID: id, Description: desc}
}

// CustomActionFree releases the description of a record that was never
// pushed onto a node.
func (b *Boundary) CustomActionFree(r CustomActionRecord) {
	if r.Description == 0 {
		return
	}
	b.check("custom_action_free", codec.FreeCString(b.mem, b.alloc, r.Description))
}

// NodeProperties lists the ids of the properties set on a node, in id
// order.
func (b *Boundary) NodeProperties(h handle.Handle) []tree.PropertyID {
	return b.Nodes.FromHandle(h).Properties()
}

func errorsMust(err error) {
	if err == nil {
		return
	}
	if errors.IsContractViolation(err) {
		panic(err)
	}
	// Reads of caller memory fail only when the caller passed a bad
	// address, which is a contract violation in its own right.
	panic(errors.Wrap(errors.PhaseDecode, errors.KindOutOfBounds, err, "reading caller memory"))
}
