package tree

import (
	"math"
)

// Point is a 2D point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec2 is a 2D displacement.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a 2D extent.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle given by two corners.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Affine is a 2D affine transform stored as the six coefficients
// [a b c d e f] of the matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine [6]float64

var (
	// AffineIdentity leaves points unchanged.
	AffineIdentity = AffineScale(1)
	// AffineFlipY mirrors across the x axis.
	AffineFlipY = Affine{1, 0, 0, -1, 0, 0}
	// AffineFlipX mirrors across the y axis.
	AffineFlipX = Affine{-1, 0, 0, 1, 0, 0}
)

func (p Point) AddVec2(v Vec2) Point { return Point{p.X + v.X, p.Y + v.Y} }

func (p Point) SubVec2(v Vec2) Point { return Point{p.X - v.X, p.Y - v.Y} }

func (p Point) Sub(o Point) Vec2 { return Vec2{p.X - o.X, p.Y - o.Y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

func (s Size) Scale(k float64) Size { return Size{s.Width * k, s.Height * k} }

func (s Size) Add(o Size) Size { return Size{s.Width + o.Width, s.Height + o.Height} }

func (s Size) Sub(o Size) Size { return Size{s.Width - o.Width, s.Height - o.Height} }

// RectFromPoints returns the rectangle spanned by two corners, with the
// corners ordered.
func RectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// RectFromOriginSize returns the rectangle at origin with the given size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return RectFromPoints(origin, origin.AddVec2(Vec2{size.Width, size.Height}))
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) MinX() float64   { return math.Min(r.X0, r.X1) }
func (r Rect) MaxX() float64   { return math.Max(r.X0, r.X1) }
func (r Rect) MinY() float64   { return math.Min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64   { return math.Max(r.Y0, r.Y1) }
func (r Rect) Origin() Point   { return Point{r.X0, r.Y0} }
func (r Rect) Size() Size      { return Size{r.Width(), r.Height()} }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool { return r.Area() == 0 }

// Abs returns the rectangle with corners ordered so width and height are
// non-negative.
func (r Rect) Abs() Rect {
	return Rect{r.MinX(), r.MinY(), r.MaxX(), r.MaxY()}
}

func (r Rect) WithOrigin(origin Point) Rect {
	return RectFromOriginSize(origin, r.Size())
}

func (r Rect) WithSize(size Size) Rect {
	return RectFromOriginSize(r.Origin(), size)
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		math.Min(r.X0, o.X0), math.Min(r.Y0, o.Y0),
		math.Max(r.X1, o.X1), math.Max(r.Y1, o.Y1),
	}
}

// UnionPoint grows r to include p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		math.Min(r.X0, p.X), math.Min(r.Y0, p.Y),
		math.Max(r.X1, p.X), math.Max(r.Y1, p.Y),
	}
}

// Intersect returns the overlap of r and o. Disjoint rectangles yield a
// zero-area rectangle.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X0, o.X0)
	y0 := math.Max(r.Y0, o.Y0)
	x1 := math.Min(r.X1, o.X1)
	y1 := math.Min(r.Y1, o.Y1)
	return Rect{x0, y0, math.Max(x0, x1), math.Max(y0, y1)}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.X0 + v.X, r.Y0 + v.Y, r.X1 + v.X, r.Y1 + v.Y}
}

// AffineScale scales uniformly.
func AffineScale(s float64) Affine {
	return Affine{s, 0, 0, s, 0, 0}
}

// AffineScaleNonUniform scales each axis separately.
func AffineScaleNonUniform(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// AffineTranslate moves by v.
func AffineTranslate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// AffineMapUnitSquare maps the unit square onto rect.
func AffineMapUnitSquare(rect Rect) Affine {
	return Affine{rect.Width(), 0, 0, rect.Height(), rect.X0, rect.Y0}
}

func (a Affine) Determinant() float64 {
	return a[0]*a[3] - a[1]*a[2]
}

// Inverse returns the inverse transform. A singular transform produces
// non-finite coefficients.
func (a Affine) Inverse() Affine {
	invDet := 1 / a.Determinant()
	return Affine{
		invDet * a[3],
		-invDet * a[1],
		-invDet * a[2],
		invDet * a[0],
		invDet * (a[2]*a[5] - a[3]*a[4]),
		invDet * (a[1]*a[4] - a[0]*a[5]),
	}
}

// Mul composes a after b.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

func (a Affine) TransformPoint(p Point) Point {
	return Point{
		a[0]*p.X + a[2]*p.Y + a[4],
		a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// TransformRectBBox returns the bounding box of the transformed rectangle.
func (a Affine) TransformRectBBox(r Rect) Rect {
	p00 := a.TransformPoint(Point{r.X0, r.Y0})
	p01 := a.TransformPoint(Point{r.X0, r.Y1})
	p10 := a.TransformPoint(Point{r.X1, r.Y0})
	p11 := a.TransformPoint(Point{r.X1, r.Y1})
	return Rect{
		math.Min(math.Min(p00.X, p01.X), math.Min(p10.X, p11.X)),
		math.Min(math.Min(p00.Y, p01.Y), math.Min(p10.Y, p11.Y)),
		math.Max(math.Max(p00.X, p01.X), math.Max(p10.X, p11.X)),
		math.Max(math.Max(p00.Y, p01.Y), math.Max(p10.Y, p11.Y)),
	}
}

func (a Affine) IsFinite() bool {
	for _, v := range a {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func (a Affine) IsNaN() bool {
	for _, v := range a {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
