package accesskit

// Addr is an address in the foreign (C) address space. Zero is null.
type Addr uintptr

// PtrSize is the width of a foreign pointer, size_t and uintptr_t in bytes.
// The bindings target 64-bit platforms only.
const PtrSize = 8

// Memory represents foreign memory reachable from the boundary
type Memory interface {
	Read(addr Addr, length uintptr) ([]byte, error)
	Write(addr Addr, data []byte) error
	ReadU8(addr Addr) (uint8, error)
	ReadU16(addr Addr) (uint16, error)
	ReadU32(addr Addr) (uint32, error)
	ReadU64(addr Addr) (uint64, error)
	ReadAddr(addr Addr) (Addr, error)
	WriteU8(addr Addr, value uint8) error
	WriteU16(addr Addr, value uint16) error
	WriteU32(addr Addr, value uint32) error
	WriteU64(addr Addr, value uint64) error
	WriteAddr(addr Addr, value Addr) error
}

// Allocator allocates foreign memory whose ownership is handed to the caller.
// Every Alloc is paired with exactly one Free of the same size and alignment.
type Allocator interface {
	Alloc(size, align uintptr) (Addr, error)
	Free(addr Addr, size, align uintptr)
}
