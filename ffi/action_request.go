package ffi

import (
	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/tree"
)

// Layout of struct accesskit_action_request:
//
//	struct { accesskit_action action; accesskit_node_id target;
//	         struct { bool has_value; struct { uint32_t tag; union {...} } value; } data; }
var actionRequest = func() (l struct {
	size, align             uintptr
	action, target, hasData accesskit.Addr
	tag, payload            accesskit.Addr
}) {
	unionField := [2]uintptr{TextSelectionLayout.Size, 8}
	dataOffsets, dataSize, dataAlign := codec.Struct(codec.Field(codec.U32), unionField)
	optOffsets, optSize, optAlign := codec.Struct(codec.Field(codec.Bool), [2]uintptr{dataSize, dataAlign})
	offsets, size, align := codec.Struct(codec.Field(codec.U8), codec.Field(NodeIDLayout), [2]uintptr{optSize, optAlign})

	l.size, l.align = size, align
	l.action = accesskit.Addr(offsets[0])
	l.target = accesskit.Addr(offsets[1])
	l.hasData = accesskit.Addr(offsets[2] + optOffsets[0])
	l.tag = accesskit.Addr(offsets[2] + optOffsets[1] + dataOffsets[0])
	l.payload = accesskit.Addr(offsets[2] + optOffsets[1] + dataOffsets[1])
	return l
}()

// ActionRequestSize is the size of the C action request record.
var ActionRequestSize = actionRequest.size

var (
	scrollUnitLayout = enumLayout[tree.ScrollUnit]()
	scrollHintLayout = enumLayout[tree.ScrollHint]()
	actionLayout     = enumLayout[tree.Action]()
)

// EncodeActionRequest lays req out in foreign memory. The record and any
// string it carries are owned by the receiver, who releases them with
// ActionRequestFree.
func (b *Boundary) EncodeActionRequest(req *tree.ActionRequest) (accesskit.Addr, error) {
	al := codec.NewAllocationList()
	defer al.Release()

	addr, err := b.encodeActionRequest(al, req)
	if err != nil {
		al.Free(b.alloc)
		return 0, err
	}
	return addr, nil
}

func (b *Boundary) encodeActionRequest(al *codec.AllocationList, req *tree.ActionRequest) (accesskit.Addr, error) {
	addr, err := al.Alloc(b.alloc, actionRequest.size, actionRequest.align)
	if err != nil {
		return 0, err
	}
	// zero the record so padding and unused union bytes are defined
	if err := b.mem.Write(addr, make([]byte, actionRequest.size)); err != nil {
		return 0, err
	}
	if err := actionLayout.Store(b.mem, addr+actionRequest.action, req.Action); err != nil {
		return 0, err
	}
	if err := NodeIDLayout.Store(b.mem, addr+actionRequest.target, req.Target); err != nil {
		return 0, err
	}
	if req.Data == nil {
		return addr, nil
	}
	if err := codec.Bool.Store(b.mem, addr+actionRequest.hasData, true); err != nil {
		return 0, err
	}
	if err := codec.U32.Store(b.mem, addr+actionRequest.tag, uint32(req.Data.Kind())); err != nil {
		return 0, err
	}

	payload := addr + actionRequest.payload
	switch d := req.Data.(type) {
	case tree.CustomActionData:
		err = codec.I32.Store(b.mem, payload, d.ID)
	case tree.ValueData:
		var s accesskit.Addr
		s, err = codec.EncodeCString(b.mem, b.alloc, d.Value)
		if err != nil {
			return 0, err
		}
		al.Add(s, uintptr(len(d.Value))+1, 1)
		err = codec.Pointer.Store(b.mem, payload, s)
	case tree.NumericValueData:
		err = codec.F64.Store(b.mem, payload, d.Value)
	case tree.ScrollUnitData:
		err = scrollUnitLayout.Store(b.mem, payload, d.Unit)
	case tree.ScrollHintData:
		err = scrollHintLayout.Store(b.mem, payload, d.Hint)
	case tree.ScrollToPointData:
		err = PointLayout.Store(b.mem, payload, d.Point)
	case tree.SetScrollOffsetData:
		err = PointLayout.Store(b.mem, payload, d.Offset)
	case tree.SetTextSelectionData:
		err = TextSelectionLayout.Store(b.mem, payload, d.Selection)
	}
	if err != nil {
		return 0, err
	}
	return addr, nil
}

// DecodeActionRequest reads a request record without releasing it.
func (b *Boundary) DecodeActionRequest(addr accesskit.Addr) (*tree.ActionRequest, error) {
	if addr == 0 {
		return nil, errors.NilPointer(errors.PhaseDecode, []string{"action_request"}, "const struct accesskit_action_request *")
	}
	action, err := actionLayout.Load(b.mem, addr+actionRequest.action)
	if err != nil {
		return nil, err
	}
	target, err := NodeIDLayout.Load(b.mem, addr+actionRequest.target)
	if err != nil {
		return nil, err
	}
	req := &tree.ActionRequest{Action: action, Target: target}

	has, err := codec.Bool.Load(b.mem, addr+actionRequest.hasData)
	if err != nil || !has {
		return req, err
	}
	tag, err := codec.U32.Load(b.mem, addr+actionRequest.tag)
	if err != nil {
		return nil, err
	}

	payload := addr + actionRequest.payload
	switch tree.ActionDataKind(tag) {
	case tree.ActionDataCustomAction:
		var id int32
		id, err = codec.I32.Load(b.mem, payload)
		req.Data = tree.CustomActionData{ID: id}
	case tree.ActionDataValue:
		var s accesskit.Addr
		if s, err = codec.Pointer.Load(b.mem, payload); err == nil {
			var v string
			v, err = codec.DecodeCString(b.mem, s)
			req.Data = tree.ValueData{Value: v}
		}
	case tree.ActionDataNumericValue:
		var v float64
		v, err = codec.F64.Load(b.mem, payload)
		req.Data = tree.NumericValueData{Value: v}
	case tree.ActionDataScrollUnit:
		var u tree.ScrollUnit
		u, err = scrollUnitLayout.Load(b.mem, payload)
		req.Data = tree.ScrollUnitData{Unit: u}
	case tree.ActionDataScrollHint:
		var h tree.ScrollHint
		h, err = scrollHintLayout.Load(b.mem, payload)
		req.Data = tree.ScrollHintData{Hint: h}
	case tree.ActionDataScrollToPoint:
		var p tree.Point
		p, err = PointLayout.Load(b.mem, payload)
		req.Data = tree.ScrollToPointData{Point: p}
	case tree.ActionDataSetScrollOffset:
		var p tree.Point
		p, err = PointLayout.Load(b.mem, payload)
		req.Data = tree.SetScrollOffsetData{Offset: p}
	case tree.ActionDataSetTextSelection:
		var s tree.TextSelection
		s, err = TextSelectionLayout.Load(b.mem, payload)
		req.Data = tree.SetTextSelectionData{Selection: s}
	default:
		return nil, errors.InvalidDiscriminant(errors.PhaseDecode, []string{"action_request", "data", "tag"},
			tag, uint32(tree.ActionDataSetTextSelection))
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ActionRequestFree releases a record produced by EncodeActionRequest. The
// tag decides which payloads own memory; only a value string does.
func (b *Boundary) ActionRequestFree(addr accesskit.Addr) {
	requirePointer(addr, "action_request", "struct accesskit_action_request *")
	has, err := codec.Bool.Load(b.mem, addr+actionRequest.hasData)
	errorsMust(err)
	if has {
		tag, err := codec.U32.Load(b.mem, addr+actionRequest.tag)
		errorsMust(err)
		if tree.ActionDataKind(tag) == tree.ActionDataValue {
			s, err := codec.Pointer.Load(b.mem, addr+actionRequest.payload)
			errorsMust(err)
			errorsMust(codec.FreeCString(b.mem, b.alloc, s))
		}
	}
	b.alloc.Free(addr, actionRequest.size, actionRequest.align)
}
