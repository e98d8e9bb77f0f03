// Package ffi implements the C surface of the bindings in Go.
//
// A Boundary owns the handle managers for every opaque type and encodes
// results into a foreign address space through an Allocator. The cgo
// library in cmd/libaccesskit is a thin layer of exported functions over
// this package; tests drive the same code over a simulated heap.
//
// Ownership follows the C header:
//
//	*_new, *_with_*        return an owned handle, released with *_free
//	push_node, set_tree    consume the node or tree handle passed in
//	string getters         return an owned string or null, see StringFree
//	collection getters     return an owned array, see the matching *_free
//	setters                copy their input, the caller keeps its buffers
//	push_custom_action     takes ownership of the description string
//
// Property accessors are generic over the descriptors in package tree, so
// one helper serves every property of a family.
package ffi
