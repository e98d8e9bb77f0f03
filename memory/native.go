package memory

import (
	"encoding/binary"
	"sync/atomic"
	"unsafe"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/errors"
)

// maxNativeAlign is the alignment malloc guarantees on supported targets.
const maxNativeAlign = 16

// Native accesses process memory directly. Addresses must come from the
// foreign side or from Alloc; Go-managed memory must never be handed out.
type Native struct {
	malloc func(size uintptr) unsafe.Pointer
	free   func(p unsafe.Pointer)
	live   atomic.Int64
}

// NewNative creates a native address space backed by the given allocator
// functions, normally C.malloc and C.free.
func NewNative(malloc func(size uintptr) unsafe.Pointer, free func(p unsafe.Pointer)) *Native {
	return &Native{malloc: malloc, free: free}
}

// Alloc allocates size bytes with the C allocator.
func (n *Native) Alloc(size, align uintptr) (accesskit.Addr, error) {
	if align > maxNativeAlign {
		return 0, errors.New(errors.PhaseEncode, errors.KindAllocation).
			Detail("alignment %d exceeds malloc guarantee", align).Build()
	}
	p := n.malloc(max(size, 1))
	if p == nil {
		return 0, errors.AllocationFailed(errors.PhaseEncode, size, align)
	}
	n.live.Add(1)
	return accesskit.Addr(uintptr(p)), nil
}

// Free returns memory obtained from Alloc to the C allocator.
func (n *Native) Free(addr accesskit.Addr, size, align uintptr) {
	if addr == 0 {
		errors.Violation(errors.PhaseRelease, errors.KindNilPointer, "free of null pointer")
	}
	n.live.Add(-1)
	n.free(pointer(addr))
}

// Live returns the number of allocations not yet freed.
func (n *Native) Live() int {
	return int(n.live.Load())
}

func (n *Native) bytes(addr accesskit.Addr, length uintptr) ([]byte, error) {
	if addr == 0 {
		return nil, errors.NilPointer(errors.PhaseDecode, nil, "void *")
	}
	return unsafe.Slice((*byte)(pointer(addr)), length), nil
}

// Read returns a copy of length bytes at addr.
func (n *Native) Read(addr accesskit.Addr, length uintptr) ([]byte, error) {
	if length == 0 {
		return []byte{}, nil
	}
	b, err := n.bytes(addr, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, b)
	return out, nil
}

// Write copies data to addr.
func (n *Native) Write(addr accesskit.Addr, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	b, err := n.bytes(addr, uintptr(len(data)))
	if err != nil {
		return err
	}
	copy(b, data)
	return nil
}

func (n *Native) ReadU8(addr accesskit.Addr) (uint8, error) {
	b, err := n.bytes(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (n *Native) ReadU16(addr accesskit.Addr) (uint16, error) {
	b, err := n.bytes(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint16(b), nil
}

func (n *Native) ReadU32(addr accesskit.Addr) (uint32, error) {
	b, err := n.bytes(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(b), nil
}

func (n *Native) ReadU64(addr accesskit.Addr) (uint64, error) {
	b, err := n.bytes(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint64(b), nil
}

func (n *Native) ReadAddr(addr accesskit.Addr) (accesskit.Addr, error) {
	v, err := n.ReadU64(addr)
	return accesskit.Addr(v), err
}

func (n *Native) WriteU8(addr accesskit.Addr, value uint8) error {
	b, err := n.bytes(addr, 1)
	if err != nil {
		return err
	}
	b[0] = value
	return nil
}

func (n *Native) WriteU16(addr accesskit.Addr, value uint16) error {
	b, err := n.bytes(addr, 2)
	if err != nil {
		return err
	}
	binary.NativeEndian.PutUint16(b, value)
	return nil
}

func (n *Native) WriteU32(addr accesskit.Addr, value uint32) error {
	b, err := n.bytes(addr, 4)
	if err != nil {
		return err
	}
	binary.NativeEndian.PutUint32(b, value)
	return nil
}

func (n *Native) WriteU64(addr accesskit.Addr, value uint64) error {
	b, err := n.bytes(addr, 8)
	if err != nil {
		return err
	}
	binary.NativeEndian.PutUint64(b, value)
	return nil
}

func (n *Native) WriteAddr(addr accesskit.Addr, value accesskit.Addr) error {
	return n.WriteU64(addr, uint64(value))
}

// pointer converts a foreign address back to a pointer. The memory is owned
// by the C allocator, so the garbage collector never tracks it.
func pointer(addr accesskit.Addr) unsafe.Pointer {
	return unsafe.Pointer(uintptr(addr)) //nolint:govet
}

var (
	_ accesskit.Memory    = (*Native)(nil)
	_ accesskit.Allocator = (*Native)(nil)
)

// Strlen scans for the NUL terminator at addr.
func (n *Native) Strlen(addr accesskit.Addr) (uintptr, error) {
	if addr == 0 {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, "const char *")
	}
	p := pointer(addr)
	var i uintptr
	for *(*byte)(unsafe.Add(p, i)) != 0 {
		i++
	}
	return i, nil
}
