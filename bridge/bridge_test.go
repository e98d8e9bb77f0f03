package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/tree"
)

type recorder struct {
	updates []*tree.TreeUpdate
}

func (r *recorder) Update(u *tree.TreeUpdate) { r.updates = append(r.updates, u) }

type encoder struct {
	requests []*tree.ActionRequest
	addr     accesskit.Addr
	err      error
}

func (e *encoder) EncodeActionRequest(req *tree.ActionRequest) (accesskit.Addr, error) {
	e.requests = append(e.requests, req)
	return e.addr, e.err
}

func newUpdates() *handle.Manager[tree.TreeUpdate] {
	return handle.NewManager[tree.TreeUpdate](handle.NewTable(), 3, "accesskit_tree_update")
}

func requireViolation(t *testing.T, kind errors.Kind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(*errors.Error)
		require.True(t, ok, "panic value %T", r)
		assert.Equal(t, kind, err.Kind)
		assert.True(t, err.IsContractViolation())
	}()
	fn()
}

func TestConstructorsRejectNilCallbacks(t *testing.T) {
	updates := newUpdates()
	requireViolation(t, errors.KindMissingCallback, func() { NewActivationHandler(nil, 0, updates) })
	requireViolation(t, errors.KindMissingCallback, func() { NewActionHandler(nil, 0, &encoder{}) })
	requireViolation(t, errors.KindMissingCallback, func() { NewDeactivationHandler(nil, 0) })
	requireViolation(t, errors.KindMissingCallback, func() { NewUpdateFactory(nil, 0, updates) })
}

func TestActivationNullMeansNoUpdate(t *testing.T) {
	rec := &recorder{}
	var seen Userdata
	h := NewActivationHandler(func(u Userdata) handle.Handle {
		seen = u
		return handle.Null
	}, 0xbeef, newUpdates(), WithRecorder(rec))

	assert.Nil(t, h.RequestInitialTree())
	assert.Equal(t, Userdata(0xbeef), seen)
	assert.Empty(t, rec.updates)
}

func TestActivationTransfersOwnership(t *testing.T) {
	updates := newUpdates()
	rec := &recorder{}
	empty := tree.NewTreeUpdate(1)
	h := NewActivationHandler(func(Userdata) handle.Handle {
		return updates.ToHandle(empty)
	}, 0, updates, WithRecorder(rec))

	got := h.RequestInitialTree()
	require.NotNil(t, got, "an empty update is still an update")
	assert.Same(t, empty, got)
	assert.Empty(t, got.Nodes)
	assert.Equal(t, 0, updates.Len(), "handle must be consumed")
	require.Len(t, rec.updates, 1)
	assert.Same(t, got, rec.updates[0])
}

func TestActionHandlerPassesOwnedRecord(t *testing.T) {
	enc := &encoder{addr: 0x1234}
	var gotAddr accesskit.Addr
	var gotUserdata Userdata
	calls := 0
	h := NewActionHandler(func(addr accesskit.Addr, u Userdata) {
		calls++
		gotAddr, gotUserdata = addr, u
	}, 7, enc)

	req := &tree.ActionRequest{Action: tree.ActionClick, Target: 5}
	h.DoAction(req)

	assert.Equal(t, 1, calls)
	assert.Equal(t, accesskit.Addr(0x1234), gotAddr)
	assert.Equal(t, Userdata(7), gotUserdata)
	require.Len(t, enc.requests, 1)
	assert.Same(t, req, enc.requests[0])
}

func TestActionHandlerEncodeFailures(t *testing.T) {
	calls := 0
	fn := func(accesskit.Addr, Userdata) { calls++ }

	oom := NewActionHandler(fn, 0, &encoder{err: errors.AllocationFailed(errors.PhaseEncode, 64, 8)})
	assert.NotPanics(t, func() { oom.DoAction(&tree.ActionRequest{Action: tree.ActionFocus}) })
	assert.Equal(t, 0, calls)

	nul := NewActionHandler(fn, 0, &encoder{err: errors.EmbeddedNul(errors.PhaseEncode, 1)})
	requireViolation(t, errors.KindEmbeddedNul, func() {
		nul.DoAction(&tree.ActionRequest{Action: tree.ActionSetValue, Data: tree.ValueData{Value: "a\x00b"}})
	})
	assert.Equal(t, 0, calls)
}

func TestDeactivationHandler(t *testing.T) {
	var got []Userdata
	h := NewDeactivationHandler(func(u Userdata) { got = append(got, u) }, 9)
	h.DeactivateAccessibility()
	assert.Equal(t, []Userdata{9}, got)
}

func TestUpdateFactoryExactlyOnce(t *testing.T) {
	updates := newUpdates()
	rec := &recorder{}
	calls := 0
	f := NewUpdateFactory(func(Userdata) handle.Handle {
		calls++
		return updates.ToHandle(tree.NewTreeUpdate(1))
	}, 0, updates, WithRecorder(rec))

	assert.False(t, f.Used())
	u := f.Build()
	require.NotNil(t, u)
	assert.True(t, f.Used())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, updates.Len())
	assert.Len(t, rec.updates, 1)

	requireViolation(t, errors.KindFactoryReused, func() { f.Build() })
	assert.Equal(t, 1, calls)
}

func TestUpdateFactoryRejectsNull(t *testing.T) {
	f := NewUpdateFactory(func(Userdata) handle.Handle { return handle.Null }, 0, newUpdates(), WithRecorder(&recorder{}))
	requireViolation(t, errors.KindNullUpdate, func() { f.Build() })
}
