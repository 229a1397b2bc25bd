// Package store provides the vshell.Store backends: an in-memory map, a
// directory of JSON files with rotating backups, and a PostgreSQL table.
//
// All backends are safe for concurrent use. Values are opaque bytes; the
// persist package owns their encoding.
package store
