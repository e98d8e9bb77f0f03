package bridge

import (
	"sync/atomic"

	"go.uber.org/zap"

	accesskit "github.com/wippyai/accesskit-go"
	"github.com/wippyai/accesskit-go/capture"
	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/handle"
	"github.com/wippyai/accesskit-go/tree"
)

// Userdata is the opaque context the foreign caller pairs with a callback.
// It is passed back unchanged on every invocation and may be used from any
// goroutine: the foreign owner guarantees it stays valid and safe to access
// from whichever thread invokes the callback, for as long as the adapter
// holding it exists.
type Userdata uintptr

// Foreign callback shapes.
type (
	// ActivationFunc returns an owned TreeUpdate handle, or null when no
	// update is available.
	ActivationFunc func(userdata Userdata) handle.Handle

	// ActionFunc receives an owned action request record. The callee
	// releases it.
	ActionFunc func(request accesskit.Addr, userdata Userdata)

	DeactivationFunc func(userdata Userdata)

	// FactoryFunc returns an owned TreeUpdate handle. It never returns null.
	FactoryFunc func(userdata Userdata) handle.Handle
)

// Recorder observes updates that cross from the foreign side into Go.
type Recorder interface {
	Update(u *tree.TreeUpdate)
}

// RequestEncoder lays an action request out in foreign memory. The
// returned record and its payload are owned by the receiver of the
// address.
type RequestEncoder interface {
	EncodeActionRequest(req *tree.ActionRequest) (accesskit.Addr, error)
}

// Option configures a handler.
type Option func(*options)

type options struct {
	recorder Recorder
}

// WithRecorder replaces the process-wide capture log.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func buildOptions(opts []Option) options {
	o := options{recorder: capture.Default()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func requireCallback(present bool, role string) {
	if !present {
		errors.Violation(errors.PhaseCallback, errors.KindMissingCallback, "%s callback is null", role)
	}
}

// ActivationHandler asks the foreign side for a tree when a platform
// consumer first shows interest.
//
// On subclassing adapters it is invoked on the thread that owns the
// window. Other adapters may invoke it on any thread.
type ActivationHandler struct {
	fn       ActivationFunc
	userdata Userdata
	updates  *handle.Manager[tree.TreeUpdate]
	recorder Recorder
}

// NewActivationHandler wraps fn. A nil fn panics.
func NewActivationHandler(fn ActivationFunc, userdata Userdata, updates *handle.Manager[tree.TreeUpdate], opts ...Option) *ActivationHandler {
	requireCallback(fn != nil, "activation handler")
	o := buildOptions(opts)
	return &ActivationHandler{fn: fn, userdata: userdata, updates: updates, recorder: o.recorder}
}

// RequestInitialTree invokes the callback. A null result means no update
// and yields nil; otherwise ownership of the update moves to the caller and
// the foreign handle becomes invalid.
func (h *ActivationHandler) RequestInitialTree() *tree.TreeUpdate {
	result := h.fn(h.userdata)
	if result == handle.Null {
		Logger().Debug("activation handler returned no tree")
		return nil
	}
	u := h.updates.Take(result)
	h.recorder.Update(u)
	return u
}

// ActionHandler forwards action requests to the foreign side. It may be
// invoked on any thread.
type ActionHandler struct {
	fn       ActionFunc
	userdata Userdata
	encoder  RequestEncoder
}

// NewActionHandler wraps fn. A nil fn panics.
func NewActionHandler(fn ActionFunc, userdata Userdata, encoder RequestEncoder) *ActionHandler {
	requireCallback(fn != nil, "action handler")
	return &ActionHandler{fn: fn, userdata: userdata, encoder: encoder}
}

// DoAction encodes req and passes the record to the callback, which takes
// ownership of it. A request that cannot be encoded is a contract
// violation when the payload is unrepresentable and is dropped when memory
// runs out.
func (h *ActionHandler) DoAction(req *tree.ActionRequest) {
	addr, err := h.encoder.EncodeActionRequest(req)
	if err != nil {
		if errors.IsContractViolation(err) {
			panic(err)
		}
		Logger().Error("dropping action request",
			zap.Stringer("action", req.Action),
			zap.Uint64("target", uint64(req.Target)),
			zap.Error(err))
		return
	}
	h.fn(addr, h.userdata)
}

// DeactivationHandler tells the foreign side that no platform consumer
// needs updates any more.
type DeactivationHandler struct {
	fn       DeactivationFunc
	userdata Userdata
}

// NewDeactivationHandler wraps fn. A nil fn panics.
func NewDeactivationHandler(fn DeactivationFunc, userdata Userdata) *DeactivationHandler {
	requireCallback(fn != nil, "deactivation handler")
	return &DeactivationHandler{fn: fn, userdata: userdata}
}

func (h *DeactivationHandler) DeactivateAccessibility() {
	h.fn(h.userdata)
}

// UpdateFactory builds a tree update on demand. Adapters call Build at most
// once, and only when an update is actually needed.
type UpdateFactory struct {
	fn       FactoryFunc
	userdata Userdata
	updates  *handle.Manager[tree.TreeUpdate]
	recorder Recorder
	used     atomic.Bool
}

// NewUpdateFactory wraps fn. A nil fn panics.
func NewUpdateFactory(fn FactoryFunc, userdata Userdata, updates *handle.Manager[tree.TreeUpdate], opts ...Option) *UpdateFactory {
	requireCallback(fn != nil, "tree update factory")
	o := buildOptions(opts)
	return &UpdateFactory{fn: fn, userdata: userdata, updates: updates, recorder: o.recorder}
}

// Build invokes the factory and takes ownership of the result. A null
// result or a second call panics.
func (f *UpdateFactory) Build() *tree.TreeUpdate {
	if f.used.Swap(true) {
		errors.Violation(errors.PhaseCallback, errors.KindFactoryReused, "tree update factory invoked twice")
	}
	result := f.fn(f.userdata)
	if result == handle.Null {
		errors.Violation(errors.PhaseCallback, errors.KindNullUpdate, "tree update factory returned null")
	}
	u := f.updates.Take(result)
	f.recorder.Update(u)
	return u
}

// Used reports whether Build has been called.
func (f *UpdateFactory) Used() bool { return f.used.Load() }
