package codec

import (
	"sync"
)

// Allocation records one block handed out during an encode.
type Allocation struct {
	Addr  Addr
	Size  uintptr
	Align uintptr
}

// AllocationList tracks the allocations of a multi-part encode so a failure
// part way through can free everything made so far.
type AllocationList struct {
	allocations []Allocation
}

var allocationListPool = sync.Pool{
	New: func() any {
		return &AllocationList{allocations: make([]Allocation, 0, 8)}
	},
}

func NewAllocationList() *AllocationList {
	return allocationListPool.Get().(*AllocationList)
}

const maxPooledAllocationCapacity = 128

// Release returns to pool. Must call after Free(); list invalid after Release.
func (al *AllocationList) Release() {
	if cap(al.allocations) > maxPooledAllocationCapacity {
		return
	}
	al.Reset()
	allocationListPool.Put(al)
}

func (al *AllocationList) FreeAndRelease(allocator Allocator) {
	al.Free(allocator)
	al.Release()
}

// Alloc allocates through allocator and records the block.
func (al *AllocationList) Alloc(allocator Allocator, size, align uintptr) (Addr, error) {
	addr, err := allocator.Alloc(size, align)
	if err != nil {
		return 0, err
	}
	al.Add(addr, size, align)
	return addr, nil
}

func (al *AllocationList) Add(addr Addr, size, align uintptr) {
	al.allocations = append(al.allocations, Allocation{
		Addr:  addr,
		Size:  size,
		Align: align,
	})
}

// Free releases every recorded block, newest first.
func (al *AllocationList) Free(allocator Allocator) {
	if allocator == nil {
		return
	}
	for i := len(al.allocations) - 1; i >= 0; i-- {
		a := al.allocations[i]
		if a.Addr != 0 {
			allocator.Free(a.Addr, a.Size, a.Align)
		}
	}
	al.Reset()
}

func (al *AllocationList) Reset() {
	al.allocations = al.allocations[:0]
}

func (al *AllocationList) Count() int {
	return len(al.allocations)
}
