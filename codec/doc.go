// Package codec marshals values between Go and foreign (C) memory.
//
// The C ABI has no sum types, no slices and no strings, so each of those
// gets an explicit encoding:
//
//	optional    {bool has_value; T value}, or a nullable pointer when T is
//	            pointer-shaped
//	collection  {size_t length; T *values}, borrowed on input and owned on
//	            output with a paired free
//	string      NUL-terminated, or length-prefixed when the caller passes an
//	            explicit length
//
// Inputs are always copied, the foreign caller keeps its buffers. Outputs are
// freshly allocated through the Allocator and must be released through the
// matching Free* function. Decoding text is lossy: invalid UTF-8 never fails.
//
// Layouts follow the C rules of the supported 64-bit little-endian targets:
// natural alignment, fields padded to their alignment, struct size rounded up
// to the largest field alignment.
package codec
