package tree

import (
	"encoding/json"
	"fmt"
	"slices"
)

// PropertyID identifies a node property.
type PropertyID uint8

type propertyInfo struct {
	name   string
	vec    bool
	decode func(raw json.RawMessage) (any, error)
	equal  func(a, b any) bool
	clone  func(v any) any
}

var (
	propertyInfos  []propertyInfo
	propertyByName = map[string]PropertyID{}
)

func register(info propertyInfo) PropertyID {
	if _, dup := propertyByName[info.name]; dup {
		panic(fmt.Sprintf("tree: duplicate property %q", info.name))
	}
	id := PropertyID(len(propertyInfos))
	propertyInfos = append(propertyInfos, info)
	propertyByName[info.name] = id
	return id
}

func decodeAs[T any](raw json.RawMessage) (any, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *float64:
		err = json.Unmarshal(raw, (*jsonFloat64)(p))
	case *[]float32:
		var fs []jsonFloat32
		if err = json.Unmarshal(raw, &fs); err == nil && fs != nil {
			*p = make([]float32, len(fs))
			for i, f := range fs {
				(*p)[i] = float32(f)
			}
		}
	default:
		err = json.Unmarshal(raw, &v)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func newProperty[T comparable](name string) Property[T] {
	return Property[T]{id: register(propertyInfo{
		name:   name,
		decode: decodeAs[T],
		equal:  func(a, b any) bool { return a.(T) == b.(T) },
		clone:  func(v any) any { return v },
	})}
}

func newSliceProperty[S ~[]E, E comparable](name string) Property[S] {
	return Property[S]{id: register(propertyInfo{
		name:   name,
		decode: decodeAs[S],
		equal:  func(a, b any) bool { return slices.Equal(a.(S), b.(S)) },
		clone:  func(v any) any { return slices.Clone(v.(S)) },
	})}
}

func newVecProperty[T comparable](name string) VecProperty[T] {
	return VecProperty[T]{id: register(propertyInfo{
		name:   name,
		vec:    true,
		decode: decodeAs[[]T],
		equal:  func(a, b any) bool { return slices.Equal(a.([]T), b.([]T)) },
		clone:  func(v any) any { return slices.Clone(v.([]T)) },
	})}
}

// String returns the property's camelCase name.
func (id PropertyID) String() string {
	if int(id) < len(propertyInfos) {
		return propertyInfos[id].name
	}
	return fmt.Sprintf("property(%d)", id)
}

// PropertyByName looks up a property by its camelCase name.
func PropertyByName(name string) (PropertyID, bool) {
	id, ok := propertyByName[name]
	return id, ok
}

// PropertyCount returns the number of defined properties.
func PropertyCount() int { return len(propertyInfos) }

// Property is a typed accessor for an optional node property.
type Property[T any] struct {
	id PropertyID
}

func (p Property[T]) ID() PropertyID { return p.id }

func (p Property[T]) Name() string { return p.id.String() }

// Get returns the value and whether it is present.
func (p Property[T]) Get(n *Node) (T, bool) {
	v, ok := n.get(p.id)
	if !ok {
		var zero T
		return zero, false
	}
	return propertyInfos[p.id].clone(v).(T), true
}

// Set stores v on the node, replacing any previous value. Slice values are
// copied.
func (p Property[T]) Set(n *Node, v T) {
	n.set(p.id, propertyInfos[p.id].clone(v))
}

// Clear removes the property.
func (p Property[T]) Clear(n *Node) { n.remove(p.id) }

// VecProperty is a typed accessor for a list-valued node property. An empty
// list and an absent property read the same.
type VecProperty[T any] struct {
	id PropertyID
}

func (p VecProperty[T]) ID() PropertyID { return p.id }

func (p VecProperty[T]) Name() string { return p.id.String() }

// Get returns a copy of the list. The result is never nil.
func (p VecProperty[T]) Get(n *Node) []T {
	v, ok := n.get(p.id)
	if !ok {
		return []T{}
	}
	return slices.Clone(v.([]T))
}

// Len returns the list length without copying.
func (p VecProperty[T]) Len(n *Node) int {
	v, ok := n.get(p.id)
	if !ok {
		return 0
	}
	return len(v.([]T))
}

// Set replaces the list with a copy of values.
func (p VecProperty[T]) Set(n *Node, values []T) {
	n.set(p.id, slices.Clone(values))
}

// Push appends one element.
func (p VecProperty[T]) Push(n *Node, v T) {
	cur, _ := n.get(p.id)
	list, _ := cur.([]T)
	n.set(p.id, append(slices.Clip(list), v))
}

// Clear removes the list.
func (p VecProperty[T]) Clear(n *Node) { n.remove(p.id) }
