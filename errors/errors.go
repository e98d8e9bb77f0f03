package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in boundary processing the error occurred
type Phase string

const (
	PhaseHandle   Phase = "handle"   // handle table operations
	PhaseEncode   Phase = "encode"   // Go to foreign memory
	PhaseDecode   Phase = "decode"   // foreign memory to Go
	PhaseRelease  Phase = "release"  // freeing boundary-owned memory
	PhaseCallback Phase = "callback" // foreign callback bridging
	PhaseAdapter  Phase = "adapter"  // platform adapter operations
	PhaseCapture  Phase = "capture"  // capture log
	PhaseParse    Phase = "parse"    // reading capture records
)

// Kind categorizes the error
type Kind string

// Contract violations. The foreign caller broke the calling convention and
// the process cannot continue safely.
const (
	KindNilHandle           Kind = "nil_handle"
	KindStaleHandle         Kind = "stale_handle"
	KindTypeMismatch        Kind = "type_mismatch"
	KindDoubleFree          Kind = "double_free"
	KindBorrowedRelease     Kind = "borrowed_release"
	KindLengthMismatch      Kind = "length_mismatch"
	KindEmbeddedNul         Kind = "embedded_nul"
	KindMissingCallback     Kind = "missing_callback"
	KindNullUpdate          Kind = "null_update"
	KindFactoryReused       Kind = "factory_reused"
	KindInvalidDiscriminant Kind = "invalid_discriminant"
	KindOutOfBounds         Kind = "out_of_bounds"
	KindNilPointer          Kind = "nil_pointer"
)

// Operational failures. Logged and absorbed by the component that hit them.
const (
	KindAllocation  Kind = "allocation"
	KindIO          Kind = "io"
	KindSerialize   Kind = "serialize"
	KindPoisoned    Kind = "poisoned"
	KindInvalidData Kind = "invalid_data"
	KindNotFound    Kind = "not_found"
)

var contractKinds = map[Kind]bool{
	KindNilHandle:           true,
	KindStaleHandle:         true,
	KindTypeMismatch:        true,
	KindDoubleFree:          true,
	KindBorrowedRelease:     true,
	KindLengthMismatch:      true,
	KindEmbeddedNul:         true,
	KindMissingCallback:     true,
	KindNullUpdate:          true,
	KindFactoryReused:       true,
	KindInvalidDiscriminant: true,
	KindOutOfBounds:         true,
	KindNilPointer:          true,
}

// Error is the structured error type used throughout the bindings
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	CType  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.CType != "" {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.CType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", C type ")
			b.WriteString(e.CType)
		case e.GoType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("C type ")
			b.WriteString(e.CType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.CType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsContractViolation reports whether the error describes a broken calling
// convention rather than a recoverable failure.
func (e *Error) IsContractViolation() bool {
	return contractKinds[e.Kind]
}

// IsContractViolation reports whether err, or any error it wraps, is a
// contract violation.
func IsContractViolation(err error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.IsContractViolation() {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// CType sets the C type name
func (b *Builder) CType(t string) *Builder {
	b.err.CType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Panic builds the error and panics with it
func (b *Builder) Panic() {
	panic(b.Build())
}

// Violation panics with a contract violation error
func Violation(phase Phase, kind Kind, detail string, args ...any) {
	New(phase, kind).Detail(detail, args...).Panic()
}

// Must panics with err if it is non-nil
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Convenience constructors for common error patterns

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// InvalidDiscriminant creates an invalid discriminant error for tagged unions
func InvalidDiscriminant(phase Phase, path []string, disc uint32, maxValid uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidDiscriminant,
		Path:   path,
		Detail: fmt.Sprintf("discriminant %d out of range (max %d)", disc, maxValid),
		Value:  disc,
	}
}

// OutOfBounds creates an out of bounds error for a foreign memory access
func OutOfBounds(phase Phase, addr, size uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("access of %d bytes at %#x is out of bounds", size, addr),
		Value:  addr,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, cType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		CType:  cType,
		Detail: "null pointer",
	}
}

// EmbeddedNul creates an error for a string that cannot be NUL-terminated
func EmbeddedNul(phase Phase, index int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmbeddedNul,
		Detail: fmt.Sprintf("string contains NUL byte at offset %d", index),
		Value:  index,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}
