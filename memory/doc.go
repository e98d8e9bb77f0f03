// Package memory provides foreign address spaces for the boundary codecs.
//
// Heap is a self-contained simulated C heap. Every allocation gets a fresh
// address that is never reused, so freeing an address twice, freeing an
// address that was never allocated, freeing with the wrong size, and touching
// memory after it was freed are all detected. It backs the tests and any Go
// program that drives the boundary without cgo.
//
// Native reads and writes real process memory through unsafe pointers and
// delegates allocation to injected malloc/free functions, which is how the
// cgo shared library plugs the C allocator in.
package memory
