// Package migrations embeds the SQL migration files for the SQLite store.
// Migrations are versioned NNN_name.up.sql / NNN_name.down.sql pairs; the
// store applies the up files in order.
package migrations

import "embed"

// FS holds the migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
