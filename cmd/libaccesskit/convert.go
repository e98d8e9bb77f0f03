package main

/*
#include "accesskit_types.h"
*/
import "C"

import (
	"unsafe"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/tree"
)

func addr(p C.uintptr_t) accesskit.Addr { return accesskit.Addr(p) }

// cString turns an address allocated with malloc back into a C pointer for
// struct fields typed char *.
func cString(a accesskit.Addr) *C.char { return (*C.char)(unsafe.Pointer(uintptr(a))) }

func cStringAddr(s *C.char) accesskit.Addr { return accesskit.Addr(uintptr(unsafe.Pointer(s))) }

func optNodeID(o codec.Opt[tree.NodeID]) C.accesskit_opt_node_id {
	return C.accesskit_opt_node_id{has_value: C.bool(o.HasValue), value: C.accesskit_node_id(o.Value)}
}

func optDouble(o codec.Opt[float64]) C.accesskit_opt_double {
	return C.accesskit_opt_double{has_value: C.bool(o.HasValue), value: C.double(o.Value)}
}

func optIndex(o codec.Opt[uint]) C.accesskit_opt_index {
	return C.accesskit_opt_index{has_value: C.bool(o.HasValue), value: C.size_t(o.Value)}
}

func optColor(o codec.Opt[uint32]) C.accesskit_opt_color {
	return C.accesskit_opt_color{has_value: C.bool(o.HasValue), value: C.uint32_t(o.Value)}
}

func optBool(o codec.Opt[bool]) C.accesskit_opt_bool {
	return C.accesskit_opt_bool{has_value: C.bool(o.HasValue), value: C.bool(o.Value)}
}

func optEnum[E ~uint8](o codec.Opt[E]) C.accesskit_opt_enum {
	return C.accesskit_opt_enum{has_value: C.bool(o.HasValue), value: C.uint8_t(o.Value)}
}

func optRect(o codec.Opt[tree.Rect]) C.accesskit_opt_rect {
	return C.accesskit_opt_rect{has_value: C.bool(o.HasValue), value: fromRect(o.Value)}
}

func optTextSelection(o codec.Opt[tree.TextSelection]) C.accesskit_opt_text_selection {
	return C.accesskit_opt_text_selection{has_value: C.bool(o.HasValue), value: fromTextSelection(o.Value)}
}

func toPoint(p C.accesskit_point) tree.Point { return tree.Point{X: float64(p.x), Y: float64(p.y)} }

func fromPoint(p tree.Point) C.accesskit_point {
	return C.accesskit_point{x: C.double(p.X), y: C.double(p.Y)}
}

func toVec2(v C.accesskit_vec2) tree.Vec2 { return tree.Vec2{X: float64(v.x), Y: float64(v.y)} }

func fromVec2(v tree.Vec2) C.accesskit_vec2 {
	return C.accesskit_vec2{x: C.double(v.X), y: C.double(v.Y)}
}

func toSize(s C.accesskit_size) tree.Size {
	return tree.Size{Width: float64(s.width), Height: float64(s.height)}
}

func fromSize(s tree.Size) C.accesskit_size {
	return C.accesskit_size{width: C.double(s.Width), height: C.double(s.Height)}
}

func toRect(r C.accesskit_rect) tree.Rect {
	return tree.Rect{X0: float64(r.x0), Y0: float64(r.y0), X1: float64(r.x1), Y1: float64(r.y1)}
}

func fromRect(r tree.Rect) C.accesskit_rect {
	return C.accesskit_rect{x0: C.double(r.X0), y0: C.double(r.Y0), x1: C.double(r.X1), y1: C.double(r.Y1)}
}

func toAffine(a C.accesskit_affine) tree.Affine {
	var out tree.Affine
	for i, c := range a.coeffs {
		out[i] = float64(c)
	}
	return out
}

func fromAffine(a tree.Affine) C.accesskit_affine {
	var out C.accesskit_affine
	for i, c := range a {
		out.coeffs[i] = C.double(c)
	}
	return out
}

func toTextPosition(p C.accesskit_text_position) tree.TextPosition {
	return tree.TextPosition{Node: tree.NodeID(p.node), CharacterIndex: uint(p.character_index)}
}

func fromTextPosition(p tree.TextPosition) C.accesskit_text_position {
	return C.accesskit_text_position{node: C.accesskit_node_id(p.Node), character_index: C.size_t(p.CharacterIndex)}
}

func toTextSelection(s C.accesskit_text_selection) tree.TextSelection {
	return tree.TextSelection{Anchor: toTextPosition(s.anchor), Focus: toTextPosition(s.focus)}
}

func fromTextSelection(s tree.TextSelection) C.accesskit_text_selection {
	return C.accesskit_text_selection{anchor: fromTextPosition(s.Anchor), focus: fromTextPosition(s.Focus)}
}
