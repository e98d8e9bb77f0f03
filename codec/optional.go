package codec

// Opt is a value that may be absent. Its Go layout matches the C record
// {bool has_value; T value}, so the same type serves Go callers and the
// boundary encoding. Value is meaningful only when HasValue is set.
type Opt[T any] struct {
	HasValue bool
	Value    T
}

// Some returns a present value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{HasValue: true, Value: v}
}

// None returns an absent value. Value holds the zero value of T.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// OptOf builds an Opt from the comma-ok idiom.
func OptOf[T any](v T, ok bool) Opt[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// OptFrom converts a nullable pointer.
func OptFrom[T any](p *T) Opt[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	if !o.HasValue {
		var zero T
		return zero, false
	}
	return o.Value, true
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Opt[T]) Ptr() *T {
	if !o.HasValue {
		return nil
	}
	v := o.Value
	return &v
}

// OrElse returns the value, or def when absent.
func (o Opt[T]) OrElse(def T) T {
	if !o.HasValue {
		return def
	}
	return o.Value
}

// OptLayout returns the layout of the C record {bool has_value; T value}.
func OptLayout[T any](inner Layout[T]) Layout[Opt[T]] {
	offsets, size, align := Struct(Field(Bool), Field(inner))
	valueOff := Addr(offsets[1])
	return Layout[Opt[T]]{
		Size:  size,
		Align: align,
		Load: func(mem Memory, addr Addr) (Opt[T], error) {
			has, err := Bool.Load(mem, addr)
			if err != nil || !has {
				return None[T](), err
			}
			v, err := inner.Load(mem, addr+valueOff)
			if err != nil {
				return None[T](), err
			}
			return Some(v), nil
		},
		Store: func(mem Memory, addr Addr, o Opt[T]) error {
			if err := Bool.Store(mem, addr, o.HasValue); err != nil {
				return err
			}
			// absent values still write zeroes so the record is fully defined
			var v T
			if o.HasValue {
				v = o.Value
			}
			return inner.Store(mem, addr+valueOff, v)
		},
	}
}

// Nullable encodes a pointer-shaped optional as an address, with null
// standing for absence. Handles and strings use this instead of a flag
// record.
func Nullable[T comparable](o Opt[T]) T {
	v, _ := o.Get()
	return v
}

// FromNullable decodes a pointer-shaped optional where the zero value
// means absent.
func FromNullable[T comparable](v T) Opt[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}
