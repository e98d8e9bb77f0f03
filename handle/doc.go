// Package handle provides opaque handle management for values that cross
// the C boundary.
//
// Foreign code never sees Go pointers. Every Go value it holds is represented
// by a Handle, an integer address that the Table resolves back to the value.
// Handles carry a slot generation, so a released handle is detected instead
// of silently resolving to whatever value reused the slot.
//
// # Ownership
//
// Handles come in two flavors:
//
//	owned    - the caller releases it exactly once (Release) or gives it
//	           back to Go (Take), after which it is invalid
//	borrowed - issued by Lend/LendMut for the duration of one callback;
//	           never released by the caller
//
// # Typed Access
//
// Each boundary type gets a Manager bound to a unique TypeID:
//
//	table := handle.NewTable()
//	nodes := handle.NewManager[tree.Node](table, 1, "accesskit_node")
//
//	h := nodes.ToHandle(tree.NewNode(tree.RoleButton))
//	nodes.FromHandleMut(h).SetLabel("OK")
//	nodes.Release(h)
//	nodes.Release(h) // panics: stale handle
//
// Managers panic on contract violations because the C functions they back
// have no way to report errors. The Table underneath returns structured
// errors for callers that want to inspect failures.
//
// # Observers
//
// Observers receive created, released, taken, lent and returned events,
// which is how leak checks and debug logging hook in.
package handle
