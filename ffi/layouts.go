package ffi

import (
	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/tree"
)

// C layouts of the tree value types.
var (
	NodeIDLayout = codec.Map(codec.U64,
		func(v uint64) tree.NodeID { return tree.NodeID(v) },
		func(id tree.NodeID) uint64 { return uint64(id) })

	PointLayout = codec.F64Array(2,
		func(v []float64) tree.Point { return tree.Point{X: v[0], Y: v[1]} },
		func(p tree.Point) []float64 { return []float64{p.X, p.Y} })

	Vec2Layout = codec.F64Array(2,
		func(v []float64) tree.Vec2 { return tree.Vec2{X: v[0], Y: v[1]} },
		func(p tree.Vec2) []float64 { return []float64{p.X, p.Y} })

	SizeLayout = codec.F64Array(2,
		func(v []float64) tree.Size { return tree.Size{Width: v[0], Height: v[1]} },
		func(s tree.Size) []float64 { return []float64{s.Width, s.Height} })

	RectLayout = codec.F64Array(4,
		func(v []float64) tree.Rect { return tree.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]} },
		func(r tree.Rect) []float64 { return []float64{r.X0, r.Y0, r.X1, r.Y1} })

	AffineLayout = codec.F64Array(6,
		func(v []float64) tree.Affine { return tree.Affine(v) },
		func(a tree.Affine) []float64 { return a[:] })
)

// TextPositionLayout is struct { node_id node; size_t character_index; }.
var TextPositionLayout = func() codec.Layout[tree.TextPosition] {
	offsets, size, align := codec.Struct(codec.Field(NodeIDLayout), codec.Field(codec.Usize))
	indexOff := codec.Addr(offsets[1])
	return codec.Layout[tree.TextPosition]{
		Size:  size,
		Align: align,
		Load: func(mem codec.Memory, addr codec.Addr) (tree.TextPosition, error) {
			node, err := NodeIDLayout.Load(mem, addr)
			if err != nil {
				return tree.TextPosition{}, err
			}
			idx, err := codec.Usize.Load(mem, addr+indexOff)
			return tree.TextPosition{Node: node, CharacterIndex: idx}, err
		},
		Store: func(mem codec.Memory, addr codec.Addr, p tree.TextPosition) error {
			if err := NodeIDLayout.Store(mem, addr, p.Node); err != nil {
				return err
			}
			return codec.Usize.Store(mem, addr+indexOff, p.CharacterIndex)
		},
	}
}()

// TextSelectionLayout is struct { text_position anchor; text_position focus; }.
var TextSelectionLayout = func() codec.Layout[tree.TextSelection] {
	offsets, size, align := codec.Struct(codec.Field(TextPositionLayout), codec.Field(TextPositionLayout))
	focusOff := codec.Addr(offsets[1])
	return codec.Layout[tree.TextSelection]{
		Size:  size,
		Align: align,
		Load: func(mem codec.Memory, addr codec.Addr) (tree.TextSelection, error) {
			anchor, err := TextPositionLayout.Load(mem, addr)
			if err != nil {
				return tree.TextSelection{}, err
			}
			focus, err := TextPositionLayout.Load(mem, addr+focusOff)
			return tree.TextSelection{Anchor: anchor, Focus: focus}, err
		},
		Store: func(mem codec.Memory, addr codec.Addr, s tree.TextSelection) error {
			if err := TextPositionLayout.Store(mem, addr, s.Anchor); err != nil {
				return err
			}
			return TextPositionLayout.Store(mem, addr+focusOff, s.Focus)
		},
	}
}()

// CustomActionRecord is the C custom_action struct: { int32_t id; char
// *description; }. The description is an owned C string.
type CustomActionRecord struct {
	ID          int32
	Description codec.Addr
}

// CustomActionLayout lays out CustomActionRecord without touching the
// description string.
var CustomActionLayout = func() codec.Layout[CustomActionRecord] {
	offsets, size, align := codec.Struct(codec.Field(codec.I32), codec.Field(codec.Pointer))
	descOff := codec.Addr(offsets[1])
	return codec.Layout[CustomActionRecord]{
		Size:  size,
		Align: align,
		Load: func(mem codec.Memory, addr codec.Addr) (CustomActionRecord, error) {
			id, err := codec.I32.Load(mem, addr)
			if err != nil {
				return CustomActionRecord{}, err
			}
			desc, err := codec.Pointer.Load(mem, addr+descOff)
			return CustomActionRecord{ID: id, Description: desc}, err
		},
		Store: func(mem codec.Memory, addr codec.Addr, r CustomActionRecord) error {
			if err := codec.I32.Store(mem, addr, r.ID); err != nil {
				return err
			}
			return codec.Pointer.Store(mem, addr+descOff, r.Description)
		},
	}
}()

// enumLayout stores an enumeration as its uint8 discriminant.
func enumLayout[E ~uint8]() codec.Layout[E] {
	return codec.Map(codec.U8, func(v uint8) E { return E(v) }, func(e E) uint8 { return uint8(e) })
}
