package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jbalodis/localnotes/internal/common"
	"github.com/jbalodis/localnotes/internal/dbx"
	"github.com/jbalodis/localnotes/internal/images"
	"github.com/jbalodis/localnotes/internal/logging"
	"github.com/jbalodis/localnotes/internal/models"
	"github.com/jbalodis/localnotes/internal/repositories/blobs"
)

// LoadStatus classifies the outcome of loading a note collection, so callers
// can tell "no data yet" apart from "store broken".
type LoadStatus int

const (
	// LoadOK means the collection blob was read and decoded.
	LoadOK LoadStatus = iota
	// LoadEmpty means no collection blob exists yet for the user.
	LoadEmpty
	// LoadStorageError means the read or decode failed; Notes is empty and
	// Err carries the cause.
	LoadStorageError
)

// LoadResult is the outcome of Load. Notes is never nil.
type LoadResult struct {
	Notes  []models.Note
	Status LoadStatus
	Err    error
}

// NoteService defines operations over one per-user note collection blob.
// Every mutation is a read-modify-write of the entire collection; the last
// completed write wins. There is no optimistic-concurrency check: two
// concurrent mutations for the same user can lose one of the writes. That is
// an accepted limitation of the single-device, single-active-session model.
type NoteService interface {
	// Load reads the user's full note collection and reports how the read
	// went. Callers that just want the fail-open behavior use Notes.
	Load(ctx context.Context, sess models.Session) LoadResult

	// Notes returns the user's collection, collapsing missing data and
	// storage failures to an empty slice.
	Notes(ctx context.Context, sess models.Session) []models.Note

	// ReplaceAll writes the full collection, overwriting prior content.
	// This is the only write primitive; all other mutations reduce to it.
	ReplaceAll(ctx context.Context, sess models.Session, notes []models.Note) error

	// Upsert saves a note: a zero ID gets a generated one, CreatedAt is set
	// on first save, UpdatedAt on every save. Any existing note with the
	// same ID is removed and the note is prepended to the collection.
	// The stored note is returned.
	Upsert(ctx context.Context, sess models.Session, note models.Note) (models.Note, error)

	// Remove deletes the note with the given ID and releases its image if
	// the app owns it. Removing a missing ID is a no-op.
	Remove(ctx context.Context, sess models.Session, noteID string) error

	// AttachImage persists the image at sourceURI into durable storage and
	// records it on the note. When the copy fails the note keeps the
	// original source URI. Fails with common.ErrNotFound for an unknown
	// note ID.
	AttachImage(ctx context.Context, sess models.Session, noteID, sourceURI string) (models.Note, error)
}

type noteService struct {
	db     *sql.DB
	images *images.Manager
	log    logging.Logger

	// now is a test seam for time.Now.
	now func() time.Time
}

// NewNoteService constructs a NoteService bound to the given database and
// image manager.
func NewNoteService(db *sql.DB, images *images.Manager, log logging.Logger) NoteService {
	return &noteService{db: db, images: images, log: log, now: time.Now}
}

// loadCollection decodes the user's collection blob from store.
func loadCollection(ctx context.Context, store blobs.Store, username string) LoadResult {
	data, ok, err := store.Get(ctx, NotesKey(username))
	if err != nil {
		return LoadResult{
			Notes:  []models.Note{},
			Status: LoadStorageError,
			Err:    fmt.Errorf("%w: read note collection: %w", common.ErrStorageUnavailable, err),
		}
	}
	if !ok {
		return LoadResult{Notes: []models.Note{}, Status: LoadEmpty}
	}

	var notes []models.Note
	if err := json.Unmarshal([]byte(data), &notes); err != nil {
		return LoadResult{
			Notes:  []models.Note{},
			Status: LoadStorageError,
			Err:    fmt.Errorf("%w: decode note collection: %w", common.ErrStorageUnavailable, err),
		}
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return LoadResult{Notes: notes, Status: LoadOK}
}

func (s *noteService) Load(ctx context.Context, sess models.Session) LoadResult {
	return loadCollection(ctx, blobs.NewSQLiteStore(s.db), sess.Username)
}

func (s *noteService) Notes(ctx context.Context, sess models.Session) []models.Note {
	r := s.Load(ctx, sess)
	if r.Status == LoadStorageError {
		s.log.Warn(ctx, "note collection load failed, treating as empty",
			"user", sess.Username, "error", r.Err)
	}
	return r.Notes
}

func writeCollection(ctx context.Context, store blobs.Store, username string, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode note collection: %w", err)
	}
	if err := store.Set(ctx, NotesKey(username), string(data)); err != nil {
		return fmt.Errorf("%w: write note collection: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *noteService) ReplaceAll(ctx context.Context, sess models.Session, notes []models.Note) error {
	return writeCollection(ctx, blobs.NewSQLiteStore(s.db), sess.Username, notes)
}

// transform runs a whole-collection mutation in one transaction: load the
// blob, apply fn, write the result back. Upsert, Remove, and AttachImage all
// share this path. A blob that fails to decode is treated as empty, so a
// corrupt collection is replaced by the mutation rather than blocking it; a
// store that cannot be read at all aborts the transaction.
func (s *noteService) transform(ctx context.Context, sess models.Session, fn func([]models.Note) ([]models.Note, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := blobs.NewSQLiteStore(tx)

		r := loadCollection(ctx, store, sess.Username)
		if r.Status == LoadStorageError {
			if !isDecodeFailure(r.Err) {
				return r.Err
			}
			s.log.Warn(ctx, "corrupt note collection, replacing",
				"user", sess.Username, "error", r.Err)
		}

		notes, err := fn(r.Notes)
		if err != nil {
			return err
		}
		return writeCollection(ctx, store, sess.Username, notes)
	})
}

// isDecodeFailure reports whether a LoadStorageError came from unmarshalling
// rather than from the store itself.
func isDecodeFailure(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func (s *noteService) Upsert(ctx context.Context, sess models.Session, note models.Note) (models.Note, error) {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	now := s.now().UnixMilli()
	if note.CreatedAt == 0 {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	err := s.transform(ctx, sess, func(notes []models.Note) ([]models.Note, error) {
		out := make([]models.Note, 0, len(notes)+1)
		out = append(out, note)
		for _, n := range notes {
			if n.ID != note.ID {
				out = append(out, n)
			}
		}
		return out, nil
	})
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *noteService) Remove(ctx context.Context, sess models.Session, noteID string) error {
	var removed *models.Note

	err := s.transform(ctx, sess, func(notes []models.Note) ([]models.Note, error) {
		out := make([]models.Note, 0, len(notes))
		for _, n := range notes {
			if n.ID == noteID {
				n := n
				removed = &n
				continue
			}
			out = append(out, n)
		}
		return out, nil
	})
	if err != nil {
		return err
	}

	if removed != nil && removed.ImageURI != "" {
		if err := s.images.Release(removed.ImageURI); err != nil {
			s.log.Warn(ctx, "image release failed",
				"user", sess.Username, "uri", removed.ImageURI, "error", err)
		}
	}
	return nil
}

func (s *noteService) AttachImage(ctx context.Context, sess models.Session, noteID, sourceURI string) (models.Note, error) {
	uri, err := s.images.Persist(ctx, sourceURI, sess.Username)
	if err != nil {
		// Non-fatal: the note keeps the original source reference.
		s.log.Warn(ctx, "image copy failed, keeping source uri",
			"user", sess.Username, "source", sourceURI, "error", err)
	}

	var updated models.Note
	err = s.transform(ctx, sess, func(notes []models.Note) ([]models.Note, error) {
		for i, n := range notes {
			if n.ID == noteID {
				// A replaced image is not released here; see Remove.
				notes[i].ImageURI = uri
				notes[i].UpdatedAt = s.now().UnixMilli()
				updated = notes[i]
				return notes, nil
			}
		}
		return nil, fmt.Errorf("note %q: %w", noteID, common.ErrNotFound)
	})
	if err != nil {
		return models.Note{}, err
	}
	return updated, nil
}
