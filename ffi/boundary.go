package ffi

import (
	"go.uber.org/zap"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/adapter"
	"github.com/wippyai/accesskit-go/bridge"
	"github.com/wippyai/accesskit-go/capture"
	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/tree"
)

// Handle type ids. They appear in diagnostics only.
const (
	TypeNode handle.TypeID = iota + 1
	TypeTree
	TypeTreeUpdate
	TypeAdapter
	TypeSubclassingAdapter
	TypeQueuedEvents
)

// Boundary is the C surface of the bindings, expressed over a foreign
// address space. Every exported C function is a thin shim over one method
// or function of this package.
//
// Contract violations by the caller panic with an *errors.Error. Operational
// failures such as an exhausted allocator are logged and reported as a null
// result.
type Boundary struct {
	mem   accesskit.Memory
	alloc accesskit.Allocator
	table *handle.Table

	Nodes               *handle.Manager[tree.Node]
	Trees               *handle.Manager[tree.Tree]
	Updates             *handle.Manager[tree.TreeUpdate]
	Adapters            *handle.Manager[Adapter]
	SubclassingAdapters *handle.Manager[SubclassingAdapter]
	Events              *handle.Manager[adapter.QueuedEvents]

	recorder bridge.Recorder
	sink     adapter.EventSink
}

// Option configures a Boundary.
type Option func(*Boundary)

// WithRecorder sets where updates received from the caller are captured.
// The default is the process-wide capture log.
func WithRecorder(r bridge.Recorder) Option {
	return func(b *Boundary) { b.recorder = r }
}

// WithEventSink sets where adapters deliver raised events.
func WithEventSink(s adapter.EventSink) Option {
	return func(b *Boundary) { b.sink = s }
}

// WithTable shares an existing handle table.
func WithTable(t *handle.Table) Option {
	return func(b *Boundary) { b.table = t }
}

// New creates a Boundary that encodes results into mem using alloc.
func New(mem accesskit.Memory, alloc accesskit.Allocator, opts ...Option) *Boundary {
	b := &Boundary{mem: mem, alloc: alloc}
	for _, opt := range opts {
		opt(b)
	}
	if b.table == nil {
		b.table = handle.NewTable()
	}
	if b.recorder == nil {
		b.recorder = capture.Default()
	}
	if b.sink == nil {
		b.sink = adapter.DiscardSink
	}

	b.Nodes = handle.NewManager[tree.Node](b.table, TypeNode, "accesskit_node")
	b.Trees = handle.NewManager[tree.Tree](b.table, TypeTree, "accesskit_tree")
	b.Updates = handle.NewManager[tree.TreeUpdate](b.table, TypeTreeUpdate, "accesskit_tree_update")
	b.Adapters = handle.NewManager[Adapter](b.table, TypeAdapter, "accesskit_adapter")
	b.SubclassingAdapters = handle.NewManager[SubclassingAdapter](b.table, TypeSubclassingAdapter, "accesskit_subclassing_adapter")
	b.Events = handle.NewManager[adapter.QueuedEvents](b.table, TypeQueuedEvents, "accesskit_queued_events")
	return b
}

// Memory returns the address space results are encoded into.
func (b *Boundary) Memory() accesskit.Memory { return b.mem }

// Allocator returns the allocator owning encoded results.
func (b *Boundary) Allocator() accesskit.Allocator { return b.alloc }

// Table returns the handle table.
func (b *Boundary) Table() *handle.Table { return b.table }

// Close drops every value still reachable through a handle.
func (b *Boundary) Close() error {
	return b.table.Close()
}

// check panics on contract violations and logs operational errors. It
// reports whether err was nil.
func (b *Boundary) check(op string, err error) bool {
	if err == nil {
		return true
	}
	if errors.IsContractViolation(err) {
		panic(err)
	}
	Logger().Warn("boundary operation failed", zap.String("op", op), zap.Error(err))
	return false
}

func requireValid[E interface {
	~uint8
	Valid() bool
}](cType string, v E, path ...string) {
	if !v.Valid() {
		errors.New(errors.PhaseDecode, errors.KindInvalidDiscriminant).
			Path(path...).CType(cType).Value(uint8(v)).
			Detail("discriminant %d out of range", uint8(v)).Panic()
	}
}

func requirePointer(addr accesskit.Addr, path, cType string) {
	if addr == 0 {
		panic(errors.NilPointer(errors.PhaseDecode, []string{path}, cType))
	}
}

// encodeString returns an owned copy of s, or null when absent or when the
// allocation fails.
func (b *Boundary) encodeString(op string, s string, ok bool) accesskit.Addr {
	if !ok {
		return 0
	}
	addr, err := codec.EncodeCString(b.mem, b.alloc, s)
	if !b.check(op, err) {
		return 0
	}
	return addr
}

// debug renders v for a *_debug function.
func (b *Boundary) debug(op string, v any) accesskit.Addr {
	s, err := tree.Debug(v)
	if !b.check(op, err) {
		return 0
	}
	return b.encodeString(op, s, true)
}

// StringFree releases a string returned by any getter.
func (b *Boundary) StringFree(addr accesskit.Addr) {
	b.check("string_free", codec.FreeCString(b.mem, b.alloc, addr))
}
