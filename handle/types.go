package handle

// Handle is an opaque address standing in for a Go value held by a Table.
// Handle 0 is null. The low 32 bits select a slot and the high 32 bits carry
// the slot generation, so a handle to a released value never resolves to a
// value inserted later into the same slot.
type Handle uintptr

// Null is the null handle.
const Null Handle = 0

// TypeID identifies the Go type a handle refers to.
type TypeID uint32

// EventType identifies a handle lifecycle event.
type EventType uint8

const (
	EventCreated EventType = iota
	EventReleased
	EventTaken
	EventLent
	EventReturned
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventReleased:
		return "released"
	case EventTaken:
		return "taken"
	case EventLent:
		return "lent"
	case EventReturned:
		return "returned"
	default:
		return "unknown"
	}
}

// Event represents a handle lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	TypeID TypeID
	Type   EventType
}

// Observer receives notifications about handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// Dropper is optionally implemented by values that need cleanup when their
// handle is released. Take does not call Drop, ownership moves instead.
type Dropper interface {
	Drop()
}

// Owner is the narrow view of a Manager used by code that only consumes
// handles produced elsewhere.
type Owner[T any] interface {
	Take(h Handle) *T
}

// Mode records how a slot was handed to the foreign side.
type Mode uint8

const (
	// ModeOwned slots belong to the caller until released or taken.
	ModeOwned Mode = iota
	// ModeShared slots are read-only borrows valid for one call.
	ModeShared
	// ModeExclusive slots are mutable borrows valid for one call.
	ModeExclusive
)

func makeHandle(index, generation uint32) Handle {
	return Handle(uintptr(generation)<<32 | uintptr(index+1))
}

func (h Handle) index() (uint32, bool) {
	low := uint32(uintptr(h) & 0xffffffff)
	if low == 0 {
		return 0, false
	}
	return low - 1, true
}

func (h Handle) generation() uint32 {
	return uint32(uintptr(h) >> 32)
}
