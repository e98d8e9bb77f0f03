// Package adapter implements the platform-facing side of the boundary for
// a single window.
//
// Platform accessibility engines are external. This package holds what the
// boundary needs from them: activation on the first platform request,
// lazy updates through an UpdateFactory, action dispatch, focus tracking,
// and deferred event delivery through QueuedEvents. An Adapter receives
// its activation handler per request; a SubclassingAdapter binds it at
// construction.
package adapter
