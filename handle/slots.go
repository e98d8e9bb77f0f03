package handle

import (
	"sync"
)

// status describes why a handle could not be resolved.
type status uint8

const (
	statusOK status = iota
	statusNull
	statusStale
	statusTypeMismatch
	statusBorrowed
	statusClosed
)

// slots is the in-memory handle store: a slot slice plus free list.
type slots struct {
	entries  []entry
	freeList []uint32
	mu       sync.RWMutex
	live     int
	closed   bool
}

type entry struct {
	value      any
	typeID     TypeID
	generation uint32
	mode       Mode
	valid      bool
}

func newSlots() *slots {
	return &slots{
		entries:  make([]entry, 0, 64),
		freeList: make([]uint32, 0, 16),
	}
}

func (s *slots) insert(typeID TypeID, value any, mode Mode) (Handle, status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Null, statusClosed
	}

	var idx uint32
	if n := len(s.freeList); n > 0 {
		idx = s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
	} else {
		s.entries = append(s.entries, entry{})
		idx = uint32(len(s.entries) - 1)
	}

	e := &s.entries[idx]
	e.generation++
	if e.generation == 0 {
		e.generation = 1
	}
	e.value = value
	e.typeID = typeID
	e.mode = mode
	e.valid = true
	s.live++

	return makeHandle(idx, e.generation), statusOK
}

// lookupLocked resolves h. Callers hold s.mu.
func (s *slots) lookupLocked(h Handle, typeID TypeID) (*entry, status) {
	idx, ok := h.index()
	if !ok {
		return nil, statusNull
	}
	if int(idx) >= len(s.entries) {
		return nil, statusStale
	}
	e := &s.entries[idx]
	if !e.valid || e.generation != h.generation() {
		return nil, statusStale
	}
	if e.typeID != typeID {
		return nil, statusTypeMismatch
	}
	return e, statusOK
}

func (s *slots) get(h Handle, typeID TypeID) (any, Mode, status) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, st := s.lookupLocked(h, typeID)
	if st != statusOK {
		return nil, 0, st
	}
	return e.value, e.mode, statusOK
}

// remove invalidates h. Borrowed slots are only removed when allowBorrowed
// is set, which is how a lend scope ends.
func (s *slots) remove(h Handle, typeID TypeID, allowBorrowed bool) (any, status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, st := s.lookupLocked(h, typeID)
	if st != statusOK {
		return nil, st
	}
	if e.mode != ModeOwned && !allowBorrowed {
		return nil, statusBorrowed
	}

	value := e.value
	e.value = nil
	e.valid = false
	idx, _ := h.index()
	s.freeList = append(s.freeList, idx)
	s.live--

	return value, statusOK
}

func (s *slots) typeOf(h Handle) (TypeID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := h.index()
	if !ok || int(idx) >= len(s.entries) {
		return 0, false
	}
	e := s.entries[idx]
	if !e.valid || e.generation != h.generation() {
		return 0, false
	}
	return e.typeID, true
}

func (s *slots) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

func (s *slots) each(fn func(Handle, TypeID, any) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, e := range s.entries {
		if e.valid {
			if !fn(makeHandle(uint32(i), e.generation), e.typeID, e.value) {
				break
			}
		}
	}
}

// close invalidates every slot and returns the owned values that were live.
func (s *slots) close() []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var owned []any
	for i := range s.entries {
		e := &s.entries[i]
		if e.valid && e.mode == ModeOwned {
			owned = append(owned, e.value)
		}
		e.valid = false
		e.value = nil
	}
	s.entries = nil
	s.freeList = nil
	s.live = 0
	return owned
}
