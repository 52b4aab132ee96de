// Package services contains the application services of the notes keeper.
//
// AuthService owns the user registry blob: account lookup, sign-up, and
// login verification. NoteService owns one note-collection blob per user:
// load, wholesale replace, upsert, remove, and image attachment. Both sit on
// the blob store (internal/repositories/blobs) and express every mutation as
// a read-modify-write of an entire blob.
package services
