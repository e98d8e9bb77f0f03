// Package bridge wraps foreign callbacks as the handler types adapters
// consume.
//
// Each handler pairs a callback with the opaque Userdata the foreign caller
// supplied. A nil callback is a contract violation and panics at
// construction. Updates returned by the activation handler and the update
// factory have their handles consumed and are recorded by the capture log.
package bridge
