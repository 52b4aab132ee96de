// Package images manages the lifecycle of note image files: copying a picked
// image into the app's durable directory and removing it when its note is
// deleted.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jbalodis/localnotes/internal/common"
	"github.com/jbalodis/localnotes/internal/filex"
)

// Manager persists and releases note images under a single durable root
// directory owned exclusively by the app.
type Manager struct {
	root string

	// newID is a test seam for uuid.NewString.
	newID func() string
}

// NewManager creates the durable directory at root (if needed) and returns a
// Manager rooted there.
func NewManager(root string) (*Manager, error) {
	dir, err := filex.EnsureDir(root)
	if err != nil {
		return nil, fmt.Errorf("image dir: %w", err)
	}
	return &Manager{root: dir, newID: uuid.NewString}, nil
}

// Root returns the absolute durable directory the manager owns.
func (m *Manager) Root() string {
	return m.root
}

// Persist copies the image at sourceURI into the durable directory under a
// generated filename scoped by username and returns the new durable URI.
//
// On copy failure it returns sourceURI together with an error wrapping
// common.ErrImageCopyFailed: the caller is expected to log the failure and
// keep the source reference rather than fail the note save.
func (m *Manager) Persist(ctx context.Context, sourceURI, username string) (string, error) {
	if err := ctx.Err(); err != nil {
		return sourceURI, fmt.Errorf("%w: %w", common.ErrImageCopyFailed, err)
	}

	ext := filepath.Ext(sourceURI)
	if ext == "" {
		ext = ".jpg"
	}

	dest := filepath.Join(m.root, fmt.Sprintf("%s_%s%s", username, m.newID(), ext))
	if err := copyFile(sourceURI, dest); err != nil {
		return sourceURI, fmt.Errorf("%w: %w", common.ErrImageCopyFailed, err)
	}
	return dest, nil
}

// Release deletes the file at uri if and only if it lives under the durable
// directory; files outside app-owned storage are never touched. Releasing a
// missing file is a no-op.
func (m *Manager) Release(uri string) error {
	if uri == "" || !m.Owns(uri) {
		return nil
	}

	if err := os.Remove(uri); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("release %s: %w", uri, err)
	}
	return nil
}

// Owns reports whether uri points inside the manager's durable directory.
func (m *Manager) Owns(uri string) bool {
	abs, err := filepath.Abs(uri)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(m.root, abs)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy to %s: %w", dest, err)
	}
	return out.Close()
}
