package models

// Note is a single note in a user's collection. The JSON field names are part
// of the on-disk blob format and must stay stable.
//
// An empty ImageURI means the note has no image. CreatedAt is set once on
// first save; UpdatedAt is bumped on every save. Both are epoch milliseconds.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURI  string `json:"imageUri"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// LastModified returns the recency sort key: UpdatedAt when set, otherwise
// CreatedAt, otherwise zero.
func (n Note) LastModified() int64 {
	if n.UpdatedAt != 0 {
		return n.UpdatedAt
	}
	return n.CreatedAt
}
