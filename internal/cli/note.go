package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbalodis/localnotes/internal/common"
	"github.com/jbalodis/localnotes/internal/models"
)

func (a *App) add(ctx context.Context) {

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	body, err := GetMultiline(a.reader, "Enter note text", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	saved, err := a.notes.Upsert(opCtx, *a.session, models.Note{Title: title, Body: body})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintf(a.out, "Saved note %s\n", saved.ID)
}

func (a *App) edit(ctx context.Context) {

	note, ok := a.pickNote(ctx, "Enter note id to edit")
	if !ok {
		return
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Enter title (Enter to keep %q)", displayTitle(note)), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if title != "" {
		note.Title = title
	}

	body, err := GetMultiline(a.reader, "Enter note text (empty to keep current)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if body != "" {
		note.Body = body
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	saved, err := a.notes.Upsert(opCtx, *a.session, note)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintf(a.out, "Saved note %s\n", saved.ID)
}

func (a *App) show(ctx context.Context) {

	note, ok := a.pickNote(ctx, "Enter note id to show")
	if !ok {
		return
	}

	fmt.Fprintln(a.out, displayTitle(note))
	fmt.Fprintln(a.out, note.Body)
	if note.ImageURI != "" {
		fmt.Fprintln(a.out, "Image:", note.ImageURI)
	}
	fmt.Fprintln(a.out, "Created:", formatTimestamp(note.CreatedAt))
	fmt.Fprintln(a.out, "Updated:", formatTimestamp(note.UpdatedAt))
}

func (a *App) attach(ctx context.Context) {

	note, ok := a.pickNote(ctx, "Enter note id to attach an image to")
	if !ok {
		return
	}

	path, err := GetSimpleText(a.reader, "Enter image file path", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	saved, err := a.notes.AttachImage(opCtx, *a.session, note.ID, path)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintln(a.out, "Image stored at", saved.ImageURI)
}

func (a *App) delete(ctx context.Context) {

	note, ok := a.pickNote(ctx, "Enter note id to delete")
	if !ok {
		return
	}

	confirmed, err := Confirm(a.reader, fmt.Sprintf("Delete %q?", displayTitle(note)), a.out)
	if err != nil || !confirmed {
		return
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.notes.Remove(opCtx, *a.session, note.ID); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintln(a.out, "Deleted")
}

// pickNote prompts for a note id and resolves it against the user's
// collection.
func (a *App) pickNote(ctx context.Context, prompt string) (models.Note, bool) {
	var zero models.Note

	id, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return zero, false
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	note, err := a.findNote(opCtx, id)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Fprintln(a.out, "No note with id", id)
		return zero, false
	}
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return zero, false
	}
	return note, true
}

func (a *App) findNote(ctx context.Context, id string) (models.Note, error) {
	for _, n := range a.notes.Notes(ctx, *a.session) {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, fmt.Errorf("note %q: %w", id, common.ErrNotFound)
}
