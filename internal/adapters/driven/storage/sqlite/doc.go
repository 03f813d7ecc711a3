// Package sqlite provides the SQLite-backed implementation of the PosStore
// driven port.
//
// The adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. The pos table enforces name uniqueness with a
// UNIQUE index; violations surface as domain.ErrDuplicatePosName.
//
// # Data Location
//
// By default, the database is stored at ~/.campuscoffee/campuscoffee.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on database-level
// locking provided by SQLite in WAL mode.
package sqlite
