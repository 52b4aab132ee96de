// Package common defines sentinel errors shared across the notes keeper.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Identity errors.
	ErrNotFound      = errors.New("not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// Storage errors.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrImageCopyFailed is non-fatal: the caller keeps the original source
	// URI instead of failing the note save.
	ErrImageCopyFailed = errors.New("image copy failed")
)
