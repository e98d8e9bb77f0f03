package memory

import (
	"encoding/binary"
	"sort"
	"sync"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/errors"
)

// heapBase keeps simulated addresses clear of the null page.
const heapBase accesskit.Addr = 0x10000

type block struct {
	addr  accesskit.Addr
	size  uintptr
	align uintptr
	live  bool
}

// Heap is a simulated foreign heap with allocation tracking.
// It is safe for concurrent use.
type Heap struct {
	data   []byte
	blocks []block
	next   uintptr
	frees  int
	allocs int
	mu     sync.Mutex
}

// NewHeap creates an empty simulated heap.
func NewHeap() *Heap {
	return &Heap{data: make([]byte, 0, 4096)}
}

// Alloc reserves size bytes aligned to align. Zero-sized requests still get a
// unique address.
func (h *Heap) Alloc(size, align uintptr) (accesskit.Addr, error) {
	if align == 0 || align&(align-1) != 0 {
		return 0, errors.New(errors.PhaseEncode, errors.KindAllocation).
			Detail("alignment %d is not a power of two", align).Build()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	off := alignUp(h.next, align)
	// a guard byte between blocks keeps zero-sized blocks distinct
	end := off + size + 1
	if uintptr(cap(h.data)) < end {
		grown := make([]byte, end, max(end, uintptr(cap(h.data))*2))
		copy(grown, h.data)
		h.data = grown
	}
	h.data = h.data[:end]
	h.next = end

	addr := heapBase + accesskit.Addr(off)
	h.blocks = append(h.blocks, block{addr: addr, size: size, align: align, live: true})
	h.allocs++
	return addr, nil
}

// Free releases an allocation. Any mismatch with a live allocation is a
// contract violation and panics.
func (h *Heap) Free(addr accesskit.Addr, size, align uintptr) {
	if addr == 0 {
		errors.Violation(errors.PhaseRelease, errors.KindNilPointer, "free of null pointer")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i, ok := h.find(addr)
	if !ok || h.blocks[i].addr != addr {
		errors.Violation(errors.PhaseRelease, errors.KindOutOfBounds,
			"free of %#x which was never allocated", uintptr(addr))
	}
	b := &h.blocks[i]
	if !b.live {
		errors.Violation(errors.PhaseRelease, errors.KindDoubleFree, "%#x freed twice", uintptr(addr))
	}
	if b.size != size || b.align != align {
		errors.Violation(errors.PhaseRelease, errors.KindLengthMismatch,
			"free of %#x with size %d align %d, allocated with size %d align %d",
			uintptr(addr), size, align, b.size, b.align)
	}
	b.live = false
	h.frees++
}

// Live returns the number of allocations not yet freed.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.allocs - h.frees
}

// Stats returns the total number of allocations and frees.
func (h *Heap) Stats() (allocs, frees int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.allocs, h.frees
}

// IsLive reports whether addr is the start of a live allocation.
func (h *Heap) IsLive(addr accesskit.Addr) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	i, ok := h.find(addr)
	return ok && h.blocks[i].addr == addr && h.blocks[i].live
}

// find returns the block containing addr. Blocks are sorted by address
// because addresses are never reused.
func (h *Heap) find(addr accesskit.Addr) (int, bool) {
	i := sort.Search(len(h.blocks), func(i int) bool {
		return h.blocks[i].addr > addr
	}) - 1
	if i < 0 {
		return 0, false
	}
	b := h.blocks[i]
	if addr < b.addr || addr > b.addr+accesskit.Addr(b.size) {
		return 0, false
	}
	return i, true
}

// slice validates an access and returns the backing bytes. Callers hold h.mu.
func (h *Heap) slice(addr accesskit.Addr, length uintptr) ([]byte, error) {
	if addr == 0 {
		return nil, errors.NilPointer(errors.PhaseDecode, nil, "void *")
	}
	i, ok := h.find(addr)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseDecode, uintptr(addr), length)
	}
	b := h.blocks[i]
	if !b.live {
		return nil, errors.New(errors.PhaseDecode, errors.KindStaleHandle).
			Detail("access to %#x after it was freed", uintptr(addr)).Build()
	}
	if addr+accesskit.Addr(length) > b.addr+accesskit.Addr(b.size) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, uintptr(addr), length)
	}
	off := uintptr(addr - heapBase)
	return h.data[off : off+length], nil
}

// Read returns a copy of length bytes at addr.
func (h *Heap) Read(addr accesskit.Addr, length uintptr) ([]byte, error) {
	if length == 0 {
		return []byte{}, nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	b, err := h.slice(addr, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, b)
	return out, nil
}

// Write copies data to addr.
func (h *Heap) Write(addr accesskit.Addr, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	b, err := h.slice(addr, uintptr(len(data)))
	if err != nil {
		return err
	}
	copy(b, data)
	return nil
}

// ReadU8 reads an unsigned 8-bit value.
func (h *Heap) ReadU8(addr accesskit.Addr) (uint8, error) {
	b, err := h.Read(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads an unsigned 16-bit little-endian value.
func (h *Heap) ReadU16(addr accesskit.Addr) (uint16, error) {
	b, err := h.Read(addr, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (h *Heap) ReadU32(addr accesskit.Addr) (uint32, error) {
	b, err := h.Read(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (h *Heap) ReadU64(addr accesskit.Addr) (uint64, error) {
	b, err := h.Read(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadAddr reads a pointer-sized value.
func (h *Heap) ReadAddr(addr accesskit.Addr) (accesskit.Addr, error) {
	v, err := h.ReadU64(addr)
	return accesskit.Addr(v), err
}

// WriteU8 writes an unsigned 8-bit value.
func (h *Heap) WriteU8(addr accesskit.Addr, value uint8) error {
	return h.Write(addr, []byte{value})
}

// WriteU16 writes an unsigned 16-bit little-endian value.
func (h *Heap) WriteU16(addr accesskit.Addr, value uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return h.Write(addr, b[:])
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (h *Heap) WriteU32(addr accesskit.Addr, value uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return h.Write(addr, b[:])
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (h *Heap) WriteU64(addr accesskit.Addr, value uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return h.Write(addr, b[:])
}

// WriteAddr writes a pointer-sized value.
func (h *Heap) WriteAddr(addr accesskit.Addr, value accesskit.Addr) error {
	return h.WriteU64(addr, uint64(value))
}

func alignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}

var (
	_ accesskit.Memory    = (*Heap)(nil)
	_ accesskit.Allocator = (*Heap)(nil)
)

// Strlen returns the length of the NUL-terminated string at addr. The
// terminator must lie inside the same live allocation.
func (h *Heap) Strlen(addr accesskit.Addr) (uintptr, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if addr == 0 {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, "const char *")
	}
	i, ok := h.find(addr)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseDecode, uintptr(addr), 1)
	}
	b := h.blocks[i]
	if !b.live {
		return 0, errors.New(errors.PhaseDecode, errors.KindStaleHandle).
			Detail("access to %#x after it was freed", uintptr(addr)).Build()
	}
	start := uintptr(addr - heapBase)
	end := uintptr(b.addr-heapBase) + b.size
	for n := start; n < end; n++ {
		if h.data[n] == 0 {
			return n - start, nil
		}
	}
	return 0, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
		Detail("string at %#x is not terminated inside its allocation", uintptr(addr)).Build()
}
