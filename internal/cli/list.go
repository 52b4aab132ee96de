package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jbalodis/localnotes/internal/models"
	"github.com/jbalodis/localnotes/internal/noteview"
	"github.com/jbalodis/localnotes/internal/services"
)

func (a *App) list(ctx context.Context) {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	r := a.notes.Load(opCtx, *a.session)
	if r.Status == services.LoadStorageError {
		fmt.Fprintln(a.out, "Warning: could not read notes, showing empty list")
	}

	view := noteview.View(r.Notes, a.query, a.sort)

	fmt.Fprintf(a.out, "Sort: %s", a.sort)
	if a.query != "" {
		fmt.Fprintf(a.out, "  Search: %q", a.query)
	}
	fmt.Fprintln(a.out)

	if len(view) == 0 {
		fmt.Fprintln(a.out, "No notes yet. Type 'add' to create one.")
		return
	}

	for _, n := range view {
		fmt.Fprintln(a.out, formatNoteLine(n))
	}
}

func (a *App) search(args []string) {
	a.query = strings.Join(args, " ")
	if a.query == "" {
		fmt.Fprintln(a.out, "Search cleared")
		return
	}
	fmt.Fprintf(a.out, "Searching for %q\n", a.query)
}

func (a *App) cycleSort() {
	a.sort = noteview.CycleSort(a.sort)
	fmt.Fprintf(a.out, "Sort: %s\n", a.sort)
}

// formatNoteLine renders one listing row: id, title, timestamp, an image
// marker, and a one-line body preview.
func formatNoteLine(n models.Note) string {
	title := displayTitle(n)

	marker := ""
	if n.ImageURI != "" {
		marker = " [img]"
	}

	preview := n.Body
	if i := strings.IndexByte(preview, '\n'); i >= 0 {
		preview = preview[:i]
	}
	if r := []rune(preview); len(r) > 40 {
		preview = string(r[:40]) + "…"
	}
	if preview != "" {
		preview = "  " + preview
	}

	return fmt.Sprintf("%s  %s%s (%s)%s", n.ID, title, marker, formatTimestamp(n.LastModified()), preview)
}

// displayTitle matches the list rendering of untitled notes.
func displayTitle(n models.Note) string {
	if n.Title == "" {
		return "(No title)"
	}
	return n.Title
}

func formatTimestamp(millis int64) string {
	if millis == 0 {
		return "never"
	}
	return time.UnixMilli(millis).Format("2006-01-02 15:04")
}
