package services

// Blob layout of the local store. UsersKey holds the serialized user
// registry; each user's note collection lives under NotesKeyPrefix plus the
// username. These values are part of the on-disk format and must stay stable.
const (
	UsersKey       = "app_users_v1"
	NotesKeyPrefix = "user_notes_"
)

// NotesKey returns the blob key of username's note collection.
func NotesKey(username string) string {
	return NotesKeyPrefix + username
}
