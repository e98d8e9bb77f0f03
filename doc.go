// Package accesskit exposes an accessibility tree data model to C callers.
//
// Foreign code builds nodes, trees and tree updates through opaque handles,
// hands them to a platform adapter, and answers activation, action and
// deactivation requests through registered callbacks. The Go side owns every
// value that crosses the boundary; the foreign side only ever holds handles
// and the buffers it was explicitly given ownership of.
//
// # Architecture Overview
//
//	accesskit/           Root package with Addr, Memory and Allocator
//	├── errors/          Structured errors, contract violations vs failures
//	├── handle/          Opaque handle table with generation checks
//	├── memory/          Simulated and native foreign heaps
//	├── codec/           Optional, collection and string marshaling
//	├── tree/            Node, Tree, TreeUpdate, ActionRequest, geometry
//	├── bridge/          Callback bridges and the lazy update factory
//	├── adapter/         Portable platform adapter and queued events
//	├── capture/         Tree update capture log and offline diffing
//	├── ffi/             The C surface expressed over Memory/Allocator
//	└── cmd/
//	    ├── libaccesskit/      cgo c-shared build of the C surface
//	    └── accesskit-capture/ capture log inspection tool
//
// # Ownership
//
// A handle returned by a constructor is owned by the caller until it is
// passed to a function that consumes it (pushing a node into an update,
// returning an update from a callback) or released with the matching free
// function. Strings and arrays returned to the caller are freed with their
// paired *_free function. Inputs are always borrowed and copied.
//
// # Thread Safety
//
// Handle tables are safe for concurrent use. Individual values are not;
// a node or update must not be mutated from two threads at once. Callback
// userdata must tolerate being used from the thread the adapter calls from.
package accesskit
