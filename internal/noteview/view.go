// Package noteview computes the display order of a note collection: a pure
// filter over title/body plus a stable sort driven by a SortSpec. It never
// touches storage.
package noteview

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jbalodis/localnotes/internal/models"
)

// View returns the notes matching query, ordered according to spec. The query
// is a case-insensitive substring match against title or body; an empty or
// blank query matches everything. The sort is stable: ties keep their prior
// relative order.
//
// The input slice is not modified.
func View(notes []models.Note, query string, spec models.SortSpec) []models.Note {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if q == "" ||
			strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Body), q) {
			out = append(out, n)
		}
	}

	// Collators carry mutable buffers, so build one per call.
	c := collate.New(language.Und)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if spec.Field == models.SortFieldTitle {
			cmp := c.CompareString(strings.ToLower(a.Title), strings.ToLower(b.Title))
			if spec.Order == models.SortOrderAsc {
				return cmp < 0
			}
			return cmp > 0
		}

		if spec.Order == models.SortOrderAsc {
			return a.LastModified() < b.LastModified()
		}
		return a.LastModified() > b.LastModified()
	})

	return out
}

// CycleSort advances a SortSpec through the fixed cycle
// (updated,desc) -> (updated,asc) -> (title,asc) -> (title,desc) -> (updated,desc).
// Any state outside the cycle resets to (updated,desc).
func CycleSort(current models.SortSpec) models.SortSpec {
	switch {
	case current.Field == models.SortFieldUpdated && current.Order == models.SortOrderDesc:
		return models.SortSpec{Field: models.SortFieldUpdated, Order: models.SortOrderAsc}
	case current.Field == models.SortFieldUpdated && current.Order == models.SortOrderAsc:
		return models.SortSpec{Field: models.SortFieldTitle, Order: models.SortOrderAsc}
	case current.Field == models.SortFieldTitle && current.Order == models.SortOrderAsc:
		return models.SortSpec{Field: models.SortFieldTitle, Order: models.SortOrderDesc}
	default:
		return models.DefaultSort()
	}
}
