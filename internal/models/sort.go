package models

import "fmt"

// SortField selects the note attribute a listing is ordered by.
type SortField string

// SortOrder selects the direction of a listing.
type SortOrder string

const (
	SortFieldUpdated SortField = "updated"
	SortFieldTitle   SortField = "title"

	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortSpec is transient UI state describing how to order a note listing.
// It is never persisted.
type SortSpec struct {
	Field SortField
	Order SortOrder
}

// DefaultSort is the initial listing order: most recently updated first.
func DefaultSort() SortSpec {
	return SortSpec{Field: SortFieldUpdated, Order: SortOrderDesc}
}

func (s SortSpec) String() string {
	return fmt.Sprintf("%s (%s)", s.Field, s.Order)
}
