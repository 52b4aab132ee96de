// Package blobs provides the device-local key-value store the notes keeper
// persists into.
//
// # Overview
//
// The package defines a Store interface for get/set/delete of opaque string
// blobs by string key, and a SQLite-backed implementation (SQLiteStore) over a
// dbx.DBTX (either *sql.DB or *sql.Tx). Values are whole serialized documents:
// the user registry under one fixed key and one note collection per username.
// Every mutation rewrites the full blob; there are no partial updates.
//
// # Concurrency
//
// The store is a durable, single-writer, last-writer-wins string map. Callers
// that need a read-modify-write cycle to be complete-or-fail should run it
// inside dbx.WithTx with a Store bound to the transaction.
//
// Key Types
//
//   - type Store       — interface used by the services layer
//   - type SQLiteStore — SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	store := blobs.NewSQLiteStore(db)
//	_ = store.Set(ctx, key, payload)
//	value, ok, _ := store.Get(ctx, key)
package blobs
