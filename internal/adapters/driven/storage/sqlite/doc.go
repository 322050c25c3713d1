// Package sqlite provides SQLite-backed implementations of the driven
// storage ports using the pure-Go modernc.org/sqlite driver. Schema
// changes are applied through embedded migrations on open.
package sqlite
