package handle

import (
	"github.com/wippyai/accesskit-go/errors"
)

// Manager converts between handles and values of one Go type. It is the
// single place where an address crossing the boundary is turned back into a
// typed value. Misuse (null, stale, wrong-type or borrowed handles where an
// owned one is required) is a contract violation and panics.
type Manager[T any] struct {
	table  *Table
	typeID TypeID
	name   string
}

// NewManager binds a type to a table under typeID.
func NewManager[T any](table *Table, typeID TypeID, name string) *Manager[T] {
	table.Register(typeID, name)
	return &Manager[T]{table: table, typeID: typeID, name: name}
}

// TypeID returns the type id this manager is bound to.
func (m *Manager[T]) TypeID() TypeID {
	return m.typeID
}

// ToHandle takes exclusive ownership of v and returns its handle.
func (m *Manager[T]) ToHandle(v *T) Handle {
	if v == nil {
		errors.New(errors.PhaseHandle, errors.KindNilPointer).GoType(m.name).
			Detail("cannot issue a handle for a nil value").Panic()
	}
	h, err := m.table.Insert(m.typeID, v)
	errors.Must(err)
	return h
}

// ToNullableHandle is ToHandle with nil mapping to the null handle.
func (m *Manager[T]) ToNullableHandle(v *T) Handle {
	if v == nil {
		return Null
	}
	return m.ToHandle(v)
}

// FromHandle borrows the value behind h without transferring ownership.
func (m *Manager[T]) FromHandle(h Handle) *T {
	v, err := m.table.Get(h, m.typeID)
	errors.Must(err)
	return v.(*T)
}

// FromHandleMut borrows the value behind h for mutation.
func (m *Manager[T]) FromHandleMut(h Handle) *T {
	v, err := m.table.GetMut(h, m.typeID)
	errors.Must(err)
	return v.(*T)
}

// FromNullableHandle is FromHandle with the null handle mapping to nil.
func (m *Manager[T]) FromNullableHandle(h Handle) *T {
	if h == Null {
		return nil
	}
	return m.FromHandle(h)
}

// Take reconstructs ownership of the value behind h and invalidates h.
func (m *Manager[T]) Take(h Handle) *T {
	v, err := m.table.Take(h, m.typeID)
	errors.Must(err)
	return v.(*T)
}

// Release drops the value behind h. Releasing the same handle twice panics.
func (m *Manager[T]) Release(h Handle) {
	errors.Must(m.table.Release(h, m.typeID))
}

// Lend issues a shared borrowed handle for v that is valid only while fn runs.
func (m *Manager[T]) Lend(v *T, fn func(Handle)) {
	m.lend(v, ModeShared, fn)
}

// LendMut issues a mutable borrowed handle for v that is valid only while fn
// runs.
func (m *Manager[T]) LendMut(v *T, fn func(Handle)) {
	m.lend(v, ModeExclusive, fn)
}

func (m *Manager[T]) lend(v *T, mode Mode, fn func(Handle)) {
	h, err := m.table.Lend(m.typeID, v, mode)
	errors.Must(err)
	defer func() {
		errors.Must(m.table.Return(h, m.typeID))
	}()
	fn(h)
}

// Len returns the number of live handles of this type.
func (m *Manager[T]) Len() int {
	n := 0
	m.table.Each(func(_ Handle, typeID TypeID, _ any) bool {
		if typeID == m.typeID {
			n++
		}
		return true
	})
	return n
}
