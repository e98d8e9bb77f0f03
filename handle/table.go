package handle

import (
	"fmt"
	"sync"

	"github.com/wippyai/accesskit-go/errors"
)

// Table maps opaque handles to Go values with type and generation checks.
// It is safe for concurrent use.
type Table struct {
	slots     *slots
	names     map[TypeID]string
	observers []Observer
	obsMu     sync.RWMutex
	namesMu   sync.RWMutex
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{
		slots: newSlots(),
		names: make(map[TypeID]string),
	}
}

// Register records a display name for a type, used in diagnostics.
func (t *Table) Register(typeID TypeID, name string) {
	t.namesMu.Lock()
	defer t.namesMu.Unlock()
	t.names[typeID] = name
}

// Insert adds an owned value and returns its handle.
func (t *Table) Insert(typeID TypeID, value any) (Handle, error) {
	return t.insert(typeID, value, ModeOwned, EventCreated)
}

// Lend adds a borrowed value. The handle must be ended with Return.
func (t *Table) Lend(typeID TypeID, value any, mode Mode) (Handle, error) {
	return t.insert(typeID, value, mode, EventLent)
}

func (t *Table) insert(typeID TypeID, value any, mode Mode, ev EventType) (Handle, error) {
	h, st := t.slots.insert(typeID, value, mode)
	if st != statusOK {
		return Null, t.statusError(st, h, typeID)
	}
	t.notify(Event{Type: ev, Handle: h, TypeID: typeID, Value: value})
	return h, nil
}

// Get retrieves a value by handle without affecting ownership.
func (t *Table) Get(h Handle, typeID TypeID) (any, error) {
	v, _, st := t.slots.get(h, typeID)
	if st != statusOK {
		return nil, t.statusError(st, h, typeID)
	}
	return v, nil
}

// GetMut retrieves a value that the caller intends to modify. Shared borrows
// are rejected.
func (t *Table) GetMut(h Handle, typeID TypeID) (any, error) {
	v, mode, st := t.slots.get(h, typeID)
	if st != statusOK {
		return nil, t.statusError(st, h, typeID)
	}
	if mode == ModeShared {
		return nil, errors.New(errors.PhaseHandle, errors.KindBorrowedRelease).
			GoType(t.name(typeID)).
			Detail("handle %#x is a shared borrow and cannot be mutated", uintptr(h)).
			Build()
	}
	return v, nil
}

// Release drops an owned value, calling Drop if the value implements Dropper.
func (t *Table) Release(h Handle, typeID TypeID) error {
	v, st := t.slots.remove(h, typeID, false)
	if st != statusOK {
		return t.statusError(st, h, typeID)
	}
	if d, ok := v.(Dropper); ok {
		d.Drop()
	}
	t.notify(Event{Type: EventReleased, Handle: h, TypeID: typeID, Value: v})
	return nil
}

// Take removes an owned value and returns it to the caller, who becomes its
// owner. The handle is invalid afterwards.
func (t *Table) Take(h Handle, typeID TypeID) (any, error) {
	v, st := t.slots.remove(h, typeID, false)
	if st != statusOK {
		return nil, t.statusError(st, h, typeID)
	}
	t.notify(Event{Type: EventTaken, Handle: h, TypeID: typeID, Value: v})
	return v, nil
}

// Return ends a lend scope started with Lend.
func (t *Table) Return(h Handle, typeID TypeID) error {
	v, st := t.slots.remove(h, typeID, true)
	if st != statusOK {
		return t.statusError(st, h, typeID)
	}
	t.notify(Event{Type: EventReturned, Handle: h, TypeID: typeID, Value: v})
	return nil
}

// TypeOf returns the type of a live handle.
func (t *Table) TypeOf(h Handle) (TypeID, bool) {
	return t.slots.typeOf(h)
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	return t.slots.len()
}

// Each iterates over live handles until fn returns false.
func (t *Table) Each(fn func(Handle, TypeID, any) bool) {
	t.slots.each(fn)
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Close drops every owned value still in the table and rejects further
// inserts.
func (t *Table) Close() error {
	for _, v := range t.slots.close() {
		if d, ok := v.(Dropper); ok {
			d.Drop()
		}
	}
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnHandleEvent(e)
	}
}

func (t *Table) name(typeID TypeID) string {
	t.namesMu.RLock()
	defer t.namesMu.RUnlock()
	if n, ok := t.names[typeID]; ok {
		return n
	}
	return fmt.Sprintf("type#%d", typeID)
}

func (t *Table) statusError(st status, h Handle, typeID TypeID) *errors.Error {
	b := errors.New(errors.PhaseHandle, errors.KindStaleHandle).GoType(t.name(typeID)).Value(h)
	switch st {
	case statusNull:
		b = errors.New(errors.PhaseHandle, errors.KindNilHandle).GoType(t.name(typeID)).
			Detail("null handle")
	case statusStale:
		b.Detail("handle %#x was released or never issued", uintptr(h))
	case statusTypeMismatch:
		actual, _ := t.TypeOf(h)
		b = errors.New(errors.PhaseHandle, errors.KindTypeMismatch).GoType(t.name(typeID)).Value(h).
			Detail("handle %#x refers to %s", uintptr(h), t.name(actual))
	case statusBorrowed:
		b = errors.New(errors.PhaseHandle, errors.KindBorrowedRelease).GoType(t.name(typeID)).Value(h).
			Detail("handle %#x is borrowed for the current call only", uintptr(h))
	case statusClosed:
		b = errors.New(errors.PhaseHandle, errors.KindInvalidData).Detail("handle table closed")
	}
	return b.Build()
}
