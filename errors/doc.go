// Package errors provides structured error types for the accesskit bindings.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/C type names, and cause chain.
//
// Kinds fall into two classes. Contract violations (stale handles, double
// frees, embedded NUL bytes, missing callbacks, null updates) mean the foreign
// caller broke the calling convention; they are raised with panic because the
// C boundary has no error channel. Operational failures (I/O, serialization,
// allocation) are returned and logged by the component that hit them.
//
//	err := errors.New(errors.PhaseDecode, errors.KindLengthMismatch).
//		Path("node", "children").
//		CType("accesskit_node_ids").
//		Detail("length %d exceeds mapped memory", n).
//		Build()
//
//	errors.Violation(errors.PhaseHandle, errors.KindDoubleFree, "handle %#x", h)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
