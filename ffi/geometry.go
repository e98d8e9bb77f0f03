package ffi

import (
	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/tree"
)

// Geometry helpers taking caller-owned pointers. A null pointer yields the
// zero result instead of a violation; the pointee is only read.

func (b *Boundary) loadRect(addr accesskit.Addr) (tree.Rect, bool) {
	if addr == 0 {
		return tree.Rect{}, false
	}
	r, err := RectLayout.Load(b.mem, addr)
	errorsMust(err)
	return r, true
}

func (b *Boundary) RectWidth(addr accesskit.Addr) float64 {
	r, _ := b.loadRect(addr)
	return r.Width()
}

func (b *Boundary) RectHeight(addr accesskit.Addr) float64 {
	r, _ := b.loadRect(addr)
	return r.Height()
}

func (b *Boundary) RectMinX(addr accesskit.Addr) float64 {
	r, _ := b.loadRect(addr)
	return r.MinX()
}

func (b *Boundary) RectMaxX(addr accesskit.Addr) float64 {
	r, _ := b.loadRect(addr)
	return r.MaxX()
}

func (b *Boundary) RectMinY(addr accesskit.Addr) float64 {
	r, _ := b.loadRect(addr)
	return r.MinY()
}

func (b *Boundary) RectMaxY(addr accesskit.Addr) float64 {
	r, _ := b.loadRect(addr)
	return r.MaxY()
}

func (b *Boundary) RectOrigin(addr accesskit.Addr) tree.Point {
	r, _ := b.loadRect(addr)
	return r.Origin()
}

func (b *Boundary) RectSize(addr accesskit.Addr) tree.Size {
	r, _ := b.loadRect(addr)
	return r.Size()
}

func (b *Boundary) RectAbs(addr accesskit.Addr) tree.Rect {
	r, _ := b.loadRect(addr)
	return r.Abs()
}

func (b *Boundary) RectArea(addr accesskit.Addr) float64 {
	r, _ := b.loadRect(addr)
	return r.Area()
}

// RectIsEmpty reports true for a null rectangle.
func (b *Boundary) RectIsEmpty(addr accesskit.Addr) bool {
	r, ok := b.loadRect(addr)
	return !ok || r.IsEmpty()
}

func (b *Boundary) RectContains(addr accesskit.Addr, p tree.Point) bool {
	r, ok := b.loadRect(addr)
	return ok && r.Contains(p)
}

func (b *Boundary) RectUnion(addr accesskit.Addr, other tree.Rect) tree.Rect {
	r, _ := b.loadRect(addr)
	return r.Union(other)
}

func (b *Boundary) RectUnionPoint(addr accesskit.Addr, p tree.Point) tree.Rect {
	r, _ := b.loadRect(addr)
	return r.UnionPoint(p)
}

func (b *Boundary) RectIntersect(addr accesskit.Addr, other tree.Rect) tree.Rect {
	r, _ := b.loadRect(addr)
	return r.Intersect(other)
}

func (b *Boundary) loadAffine(addr accesskit.Addr) (tree.Affine, bool) {
	if addr == 0 {
		return tree.Affine{}, false
	}
	a, err := AffineLayout.Load(b.mem, addr)
	errorsMust(err)
	return a, true
}

// AffineIsFinite reports false for a null affine.
func (b *Boundary) AffineIsFinite(addr accesskit.Addr) bool {
	a, ok := b.loadAffine(addr)
	return ok && a.IsFinite()
}

// AffineIsNaN reports false for a null affine.
func (b *Boundary) AffineIsNaN(addr accesskit.Addr) bool {
	a, ok := b.loadAffine(addr)
	return ok && a.IsNaN()
}
