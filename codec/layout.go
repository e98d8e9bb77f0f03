package codec

import (
	"encoding/binary"
	"math"

	accesskit "github.com/wippyai/accesskit-go"
)

// Memory and Allocator are the foreign address space the codecs operate on.
type (
	Memory    = accesskit.Memory
	Allocator = accesskit.Allocator
	Addr      = accesskit.Addr
)

// AlignTo rounds v up to a multiple of align.
func AlignTo(v, align uintptr) uintptr {
	if align <= 1 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

// Layout describes how a Go value of type T is laid out in C memory.
type Layout[T any] struct {
	Load  func(mem Memory, addr Addr) (T, error)
	Store func(mem Memory, addr Addr, v T) error
	Size  uintptr
	Align uintptr
}

// Struct computes C field offsets for a struct with the given field layouts,
// given as (size, align) pairs. It returns the offsets, total size and
// alignment.
func Struct(fields ...[2]uintptr) (offsets []uintptr, size, align uintptr) {
	align = 1
	offsets = make([]uintptr, len(fields))
	for i, f := range fields {
		size = AlignTo(size, f[1])
		offsets[i] = size
		size += f[0]
		align = max(align, f[1])
	}
	return offsets, AlignTo(size, align), align
}

// Field returns the (size, align) pair of a layout for use with Struct.
func Field[T any](l Layout[T]) [2]uintptr {
	return [2]uintptr{l.Size, l.Align}
}

// Bool is a C99 bool.
var Bool = Layout[bool]{
	Size:  1,
	Align: 1,
	Load: func(mem Memory, addr Addr) (bool, error) {
		v, err := mem.ReadU8(addr)
		return v != 0, err
	},
	Store: func(mem Memory, addr Addr, v bool) error {
		var b uint8
		if v {
			b = 1
		}
		return mem.WriteU8(addr, b)
	},
}

// U8 is uint8_t.
var U8 = Layout[uint8]{
	Size:  1,
	Align: 1,
	Load:  func(mem Memory, addr Addr) (uint8, error) { return mem.ReadU8(addr) },
	Store: func(mem Memory, addr Addr, v uint8) error { return mem.WriteU8(addr, v) },
}

// U32 is uint32_t.
var U32 = Layout[uint32]{
	Size:  4,
	Align: 4,
	Load:  func(mem Memory, addr Addr) (uint32, error) { return mem.ReadU32(addr) },
	Store: func(mem Memory, addr Addr, v uint32) error { return mem.WriteU32(addr, v) },
}

// I32 is int32_t.
var I32 = Layout[int32]{
	Size:  4,
	Align: 4,
	Load: func(mem Memory, addr Addr) (int32, error) {
		v, err := mem.ReadU32(addr)
		return int32(v), err
	},
	Store: func(mem Memory, addr Addr, v int32) error { return mem.WriteU32(addr, uint32(v)) },
}

// U64 is uint64_t.
var U64 = Layout[uint64]{
	Size:  8,
	Align: 8,
	Load:  func(mem Memory, addr Addr) (uint64, error) { return mem.ReadU64(addr) },
	Store: func(mem Memory, addr Addr, v uint64) error { return mem.WriteU64(addr, v) },
}

// Usize is size_t.
var Usize = Layout[uint]{
	Size:  accesskit.PtrSize,
	Align: accesskit.PtrSize,
	Load: func(mem Memory, addr Addr) (uint, error) {
		v, err := mem.ReadU64(addr)
		return uint(v), err
	},
	Store: func(mem Memory, addr Addr, v uint) error { return mem.WriteU64(addr, uint64(v)) },
}

// F32 is float.
var F32 = Layout[float32]{
	Size:  4,
	Align: 4,
	Load: func(mem Memory, addr Addr) (float32, error) {
		v, err := mem.ReadU32(addr)
		return math.Float32frombits(v), err
	},
	Store: func(mem Memory, addr Addr, v float32) error {
		return mem.WriteU32(addr, math.Float32bits(v))
	},
}

// F64 is double.
var F64 = Layout[float64]{
	Size:  8,
	Align: 8,
	Load: func(mem Memory, addr Addr) (float64, error) {
		v, err := mem.ReadU64(addr)
		return math.Float64frombits(v), err
	},
	Store: func(mem Memory, addr Addr, v float64) error {
		return mem.WriteU64(addr, math.Float64bits(v))
	},
}

// Pointer is a nullable C pointer.
var Pointer = Layout[Addr]{
	Size:  accesskit.PtrSize,
	Align: accesskit.PtrSize,
	Load:  func(mem Memory, addr Addr) (Addr, error) { return mem.ReadAddr(addr) },
	Store: func(mem Memory, addr Addr, v Addr) error { return mem.WriteAddr(addr, v) },
}

// Map derives a layout for T from a layout of its C representation.
func Map[T, C any](base Layout[C], to func(C) T, from func(T) C) Layout[T] {
	return Layout[T]{
		Size:  base.Size,
		Align: base.Align,
		Load: func(mem Memory, addr Addr) (T, error) {
			c, err := base.Load(mem, addr)
			if err != nil {
				var zero T
				return zero, err
			}
			return to(c), nil
		},
		Store: func(mem Memory, addr Addr, v T) error {
			return base.Store(mem, addr, from(v))
		},
	}
}

// F64Array is a fixed-size run of doubles, such as an affine matrix or a
// rectangle.
func F64Array[T any](n int, to func([]float64) T, from func(T) []float64) Layout[T] {
	return Layout[T]{
		Size:  uintptr(n) * 8,
		Align: 8,
		Load: func(mem Memory, addr Addr) (T, error) {
			b, err := mem.Read(addr, uintptr(n)*8)
			if err != nil {
				var zero T
				return zero, err
			}
			vals := make([]float64, n)
			for i := range vals {
				vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
			}
			return to(vals), nil
		},
		Store: func(mem Memory, addr Addr, v T) error {
			vals := from(v)
			b := make([]byte, n*8)
			for i := 0; i < n && i < len(vals); i++ {
				binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(vals[i]))
			}
			return mem.Write(addr, b)
		},
	}
}
