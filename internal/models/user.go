// Package models defines the data persisted and exchanged by the notes keeper.
package models

// User is one account in the user registry. The username is the primary key,
// unique and case-sensitive. The password is stored verbatim; the registry
// lives on the device and never leaves it.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
