package codec

import (
	"math"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/errors"
)

// SliceView is a borrowed {length, values} pair supplied by the foreign
// caller. The caller keeps ownership; the view is only read during the call
// that received it.
type SliceView struct {
	Length uintptr
	Values Addr
}

// CopySlice copies the elements of a borrowed view into a new Go slice,
// preserving order. A zero length reads nothing, so Values may be null.
func CopySlice[T any](mem Memory, view SliceView, l Layout[T]) ([]T, error) {
	if view.Length == 0 {
		return []T{}, nil
	}
	if view.Values == 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindLengthMismatch).
			Detail("null values pointer with length %d", view.Length).Build()
	}
	stride := AlignTo(l.Size, l.Align)
	if view.Length > math.MaxInt32 {
		return nil, errors.New(errors.PhaseDecode, errors.KindLengthMismatch).
			Detail("slice length %d is not addressable", view.Length).Build()
	}

	out := make([]T, view.Length)
	for i := range out {
		v, err := l.Load(mem, view.Values+Addr(uintptr(i)*stride))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ArrayHeader is the layout of an owned output collection:
// struct { size_t length; T *values; }.
var ArrayHeader = struct {
	Size, Align, LengthOffset, ValuesOffset uintptr
}{
	Size:         2 * accesskit.PtrSize,
	Align:        accesskit.PtrSize,
	LengthOffset: 0,
	ValuesOffset: accesskit.PtrSize,
}

// EncodeArray allocates an owned collection holding values and returns the
// address of its header. The caller releases it with FreeArray.
func EncodeArray[T any](mem Memory, alloc Allocator, values []T, l Layout[T]) (Addr, error) {
	al := NewAllocationList()
	defer al.Release()

	addr, err := encodeArray(mem, alloc, al, values, l)
	if err != nil {
		al.Free(alloc)
		return 0, err
	}
	return addr, nil
}

// EncodeArrayWith is EncodeArray for elements that own further allocations.
// store records every allocation it makes in al so a failure frees them all.
func EncodeArrayWith[T any](mem Memory, alloc Allocator, values []T, size, align uintptr,
	store func(al *AllocationList, addr Addr, v T) error) (Addr, error) {
	al := NewAllocationList()
	defer al.Release()

	l := Layout[T]{
		Size:  size,
		Align: align,
		Store: func(_ Memory, addr Addr, v T) error { return store(al, addr, v) },
	}
	addr, err := encodeArray(mem, alloc, al, values, l)
	if err != nil {
		al.Free(alloc)
		return 0, err
	}
	return addr, nil
}

func encodeArray[T any](mem Memory, alloc Allocator, al *AllocationList, values []T, l Layout[T]) (Addr, error) {
	header, err := al.Alloc(alloc, ArrayHeader.Size, ArrayHeader.Align)
	if err != nil {
		return 0, err
	}

	var data Addr
	if n := len(values); n > 0 {
		stride := AlignTo(l.Size, l.Align)
		data, err = al.Alloc(alloc, uintptr(n)*stride, l.Align)
		if err != nil {
			return 0, err
		}
		for i, v := range values {
			if err := l.Store(mem, data+Addr(uintptr(i)*stride), v); err != nil {
				return 0, err
			}
		}
	}

	if err := mem.WriteU64(header+Addr(ArrayHeader.LengthOffset), uint64(len(values))); err != nil {
		return 0, err
	}
	if err := mem.WriteAddr(header+Addr(ArrayHeader.ValuesOffset), data); err != nil {
		return 0, err
	}
	return header, nil
}

// ReadArray decodes an owned collection without freeing it.
func ReadArray[T any](mem Memory, header Addr, l Layout[T]) ([]T, error) {
	view, err := readHeader(mem, header)
	if err != nil {
		return nil, err
	}
	return CopySlice(mem, view, l)
}

// FreeArray releases a collection produced by EncodeArray. freeElem, when
// non-nil, runs on each element address first. The header must be passed
// back exactly as it was returned.
func FreeArray(mem Memory, alloc Allocator, header Addr, size, align uintptr, freeElem func(addr Addr) error) error {
	if header == 0 {
		return errors.NilPointer(errors.PhaseRelease, nil, "array")
	}
	view, err := readHeader(mem, header)
	if err != nil {
		return err
	}
	if view.Length > 0 {
		stride := AlignTo(size, align)
		if freeElem != nil {
			for i := uintptr(0); i < view.Length; i++ {
				if err := freeElem(view.Values + Addr(i*stride)); err != nil {
					return err
				}
			}
		}
		alloc.Free(view.Values, view.Length*stride, align)
	}
	alloc.Free(header, ArrayHeader.Size, ArrayHeader.Align)
	return nil
}

func readHeader(mem Memory, header Addr) (SliceView, error) {
	n, err := mem.ReadU64(header + Addr(ArrayHeader.LengthOffset))
	if err != nil {
		return SliceView{}, err
	}
	values, err := mem.ReadAddr(header + Addr(ArrayHeader.ValuesOffset))
	if err != nil {
		return SliceView{}, err
	}
	if n > 0 && values == 0 {
		return SliceView{}, errors.New(errors.PhaseRelease, errors.KindLengthMismatch).
			Detail("array header has length %d and no values", n).Build()
	}
	return SliceView{Length: uintptr(n), Values: values}, nil
}
