package main

/*
#include "accesskit_types.h"
*/
import "C"

import (
	"github.com/wippyai/accesskit-go/tree"
)

// Functions taking a const pointer treat null as an empty value.

//export accesskit_rect_width
func accesskit_rect_width(rect C.uintptr_t) C.double {
	return C.double(boundary.RectWidth(addr(rect)))
}

//export accesskit_rect_height
func accesskit_rect_height(rect C.uintptr_t) C.double {
	return C.double(boundary.RectHeight(addr(rect)))
}

//export accesskit_rect_min_x
func accesskit_rect_min_x(rect C.uintptr_t) C.double {
	return C.double(boundary.RectMinX(addr(rect)))
}

//export accesskit_rect_max_x
func accesskit_rect_max_x(rect C.uintptr_t) C.double {
	return C.double(boundary.RectMaxX(addr(rect)))
}

//export accesskit_rect_min_y
func accesskit_rect_min_y(rect C.uintptr_t) C.double {
	return C.double(boundary.RectMinY(addr(rect)))
}

//export accesskit_rect_max_y
func accesskit_rect_max_y(rect C.uintptr_t) C.double {
	return C.double(boundary.RectMaxY(addr(rect)))
}

//export accesskit_rect_origin
func accesskit_rect_origin(rect C.uintptr_t) C.accesskit_point {
	return fromPoint(boundary.RectOrigin(addr(rect)))
}

//export accesskit_rect_size
func accesskit_rect_size(rect C.uintptr_t) C.accesskit_size {
	return fromSize(boundary.RectSize(addr(rect)))
}

//export accesskit_rect_abs
func accesskit_rect_abs(rect C.uintptr_t) C.accesskit_rect {
	return fromRect(boundary.RectAbs(addr(rect)))
}

//export accesskit_rect_area
func accesskit_rect_area(rect C.uintptr_t) C.double {
	return C.double(boundary.RectArea(addr(rect)))
}

//export accesskit_rect_is_empty
func accesskit_rect_is_empty(rect C.uintptr_t) C.bool {
	return C.bool(boundary.RectIsEmpty(addr(rect)))
}

//export accesskit_rect_contains
func accesskit_rect_contains(rect C.uintptr_t, point C.accesskit_point) C.bool {
	return C.bool(boundary.RectContains(addr(rect), toPoint(point)))
}

//export accesskit_rect_union
func accesskit_rect_union(rect C.uintptr_t, other C.accesskit_rect) C.accesskit_rect {
	return fromRect(boundary.RectUnion(addr(rect), toRect(other)))
}

//export accesskit_rect_union_pt
func accesskit_rect_union_pt(rect C.uintptr_t, pt C.accesskit_point) C.accesskit_rect {
	return fromRect(boundary.RectUnionPoint(addr(rect), toPoint(pt)))
}

//export accesskit_rect_intersect
func accesskit_rect_intersect(rect C.uintptr_t, other C.accesskit_rect) C.accesskit_rect {
	return fromRect(boundary.RectIntersect(addr(rect), toRect(other)))
}

//export accesskit_affine_is_finite
func accesskit_affine_is_finite(affine C.uintptr_t) C.bool {
	return C.bool(boundary.AffineIsFinite(addr(affine)))
}

//export accesskit_affine_is_nan
func accesskit_affine_is_nan(affine C.uintptr_t) C.bool {
	return C.bool(boundary.AffineIsNaN(addr(affine)))
}

// Value-type helpers.

//export accesskit_rect_new
func accesskit_rect_new(x0, y0, x1, y1 C.double) C.accesskit_rect {
	return C.accesskit_rect{x0: x0, y0: y0, x1: x1, y1: y1}
}

//export accesskit_rect_from_points
func accesskit_rect_from_points(p0, p1 C.accesskit_point) C.accesskit_rect {
	return fromRect(tree.RectFromPoints(toPoint(p0), toPoint(p1)))
}

//export accesskit_rect_from_origin_size
func accesskit_rect_from_origin_size(origin C.accesskit_point, size C.accesskit_size) C.accesskit_rect {
	return fromRect(tree.RectFromOriginSize(toPoint(origin), toSize(size)))
}

//export accesskit_rect_with_origin
func accesskit_rect_with_origin(rect C.accesskit_rect, origin C.accesskit_point) C.accesskit_rect {
	return fromRect(toRect(rect).WithOrigin(toPoint(origin)))
}

//export accesskit_rect_with_size
func accesskit_rect_with_size(rect C.accesskit_rect, size C.accesskit_size) C.accesskit_rect {
	return fromRect(toRect(rect).WithSize(toSize(size)))
}

//export accesskit_rect_translate
func accesskit_rect_translate(rect C.accesskit_rect, translation C.accesskit_vec2) C.accesskit_rect {
	return fromRect(toRect(rect).Translate(toVec2(translation)))
}

//export accesskit_affine_identity
func accesskit_affine_identity() C.accesskit_affine {
	return fromAffine(tree.AffineScale(1))
}

//export accesskit_affine_flip_y
func accesskit_affine_flip_y() C.accesskit_affine {
	return fromAffine(tree.AffineScaleNonUniform(1, -1))
}

//export accesskit_affine_flip_x
func accesskit_affine_flip_x() C.accesskit_affine {
	return fromAffine(tree.AffineScaleNonUniform(-1, 1))
}

//export accesskit_affine_scale
func accesskit_affine_scale(s C.double) C.accesskit_affine {
	return fromAffine(tree.AffineScale(float64(s)))
}

//export accesskit_affine_scale_non_uniform
func accesskit_affine_scale_non_uniform(sx, sy C.double) C.accesskit_affine {
	return fromAffine(tree.AffineScaleNonUniform(float64(sx), float64(sy)))
}

//export accesskit_affine_translate
func accesskit_affine_translate(p C.accesskit_vec2) C.accesskit_affine {
	return fromAffine(tree.AffineTranslate(toVec2(p)))
}

//export accesskit_affine_map_unit_square
func accesskit_affine_map_unit_square(rect C.accesskit_rect) C.accesskit_affine {
	return fromAffine(tree.AffineMapUnitSquare(toRect(rect)))
}

//export accesskit_affine_determinant
func accesskit_affine_determinant(affine C.accesskit_affine) C.double {
	return C.double(toAffine(affine).Determinant())
}

//export accesskit_affine_inverse
func accesskit_affine_inverse(affine C.accesskit_affine) C.accesskit_affine {
	return fromAffine(toAffine(affine).Inverse())
}

//export accesskit_affine_transform_rect_bbox
func accesskit_affine_transform_rect_bbox(affine C.accesskit_affine, rect C.accesskit_rect) C.accesskit_rect {
	return fromRect(toAffine(affine).TransformRectBBox(toRect(rect)))
}

//export accesskit_affine_mul
func accesskit_affine_mul(a, b C.accesskit_affine) C.accesskit_affine {
	return fromAffine(toAffine(a).Mul(toAffine(b)))
}

//export accesskit_affine_transform_point
func accesskit_affine_transform_point(affine C.accesskit_affine, point C.accesskit_point) C.accesskit_point {
	return fromPoint(toAffine(affine).TransformPoint(toPoint(point)))
}

//export accesskit_point_to_vec2
func accesskit_point_to_vec2(point C.accesskit_point) C.accesskit_vec2 {
	return C.accesskit_vec2{x: point.x, y: point.y}
}

//export accesskit_point_add_vec2
func accesskit_point_add_vec2(point C.accesskit_point, vec C.accesskit_vec2) C.accesskit_point {
	return fromPoint(toPoint(point).AddVec2(toVec2(vec)))
}

//export accesskit_point_sub_vec2
func accesskit_point_sub_vec2(point C.accesskit_point, vec C.accesskit_vec2) C.accesskit_point {
	return fromPoint(toPoint(point).SubVec2(toVec2(vec)))
}

//export accesskit_point_sub_point
func accesskit_point_sub_point(a, b C.accesskit_point) C.accesskit_vec2 {
	return fromVec2(toPoint(a).Sub(toPoint(b)))
}

//export accesskit_size_to_vec2
func accesskit_size_to_vec2(size C.accesskit_size) C.accesskit_vec2 {
	return C.accesskit_vec2{x: size.width, y: size.height}
}

//export accesskit_size_scale
func accesskit_size_scale(size C.accesskit_size, scalar C.double) C.accesskit_size {
	return fromSize(toSize(size).Scale(float64(scalar)))
}

//export accesskit_size_add
func accesskit_size_add(a, b C.accesskit_size) C.accesskit_size {
	return fromSize(toSize(a).Add(toSize(b)))
}

//export accesskit_size_sub
func accesskit_size_sub(a, b C.accesskit_size) C.accesskit_size {
	return fromSize(toSize(a).Sub(toSize(b)))
}

//export accesskit_vec2_to_point
func accesskit_vec2_to_point(v C.accesskit_vec2) C.accesskit_point {
	return C.accesskit_point{x: v.x, y: v.y}
}

//export accesskit_vec2_to_size
func accesskit_vec2_to_size(v C.accesskit_vec2) C.accesskit_size {
	return C.accesskit_size{width: v.x, height: v.y}
}

//export accesskit_vec2_add
func accesskit_vec2_add(a, b C.accesskit_vec2) C.accesskit_vec2 {
	return fromVec2(toVec2(a).Add(toVec2(b)))
}

//export accesskit_vec2_sub
func accesskit_vec2_sub(a, b C.accesskit_vec2) C.accesskit_vec2 {
	return fromVec2(toVec2(a).Sub(toVec2(b)))
}

//export accesskit_vec2_scale
func accesskit_vec2_scale(v C.accesskit_vec2, scalar C.double) C.accesskit_vec2 {
	return fromVec2(toVec2(v).Scale(float64(scalar)))
}

//export accesskit_vec2_neg
func accesskit_vec2_neg(v C.accesskit_vec2) C.accesskit_vec2 {
	return fromVec2(toVec2(v).Neg())
}
