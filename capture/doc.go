// Package capture records tree updates crossing the boundary to a file for
// offline inspection.
//
// The process-wide log is configured by the ACCESSKIT_CAPTURE_PATH
// environment variable, read once on the first Update. An empty or unset
// variable disables capture for the life of the process, as does a path
// that cannot be opened. When enabled, the file is truncated and each
// distinct update is appended as one JSON line, flushed and synced before
// Update returns. Consecutive duplicate updates are elided.
//
// Failures never reach the caller. They are reported through the package
// logger (stderr by default) and abort only the record being written.
//
// The reading side (Reader, ReadFile, Replay, Diff) turns a capture file
// back into tree states and describes what changed between them.
package capture
