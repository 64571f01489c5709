// Package sqlite implements driven.WaypointStore over the simulator's own
// database file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// # The simulator owns the file
//
// Unlike an application-private data directory, the database belongs to
// the C-130J module under Saved Games. The store therefore:
//
//   - refuses to open a missing file unless explicitly asked to create it
//   - copies the file to a .bak sibling before opening read-write, so a
//     bad write session is recoverable
//   - only ensures the custom_data table and keeps no migration
//     bookkeeping of its own in the simulator's file
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
