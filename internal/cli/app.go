// Package cli implements the interactive REPL of the notes keeper.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/jbalodis/localnotes/internal/config"
	"github.com/jbalodis/localnotes/internal/images"
	"github.com/jbalodis/localnotes/internal/logging"
	"github.com/jbalodis/localnotes/internal/models"
	"github.com/jbalodis/localnotes/internal/services"
	"github.com/jbalodis/localnotes/internal/storage"
)

// App holds the REPL state: the wired services plus the transient session,
// search query, and sort order of the current listing.
type App struct {
	config *config.Config
	auth   services.AuthService
	notes  services.NoteService
	log    logging.Logger

	session *models.Session
	query   string
	sort    models.SortSpec

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store, wires the services, and returns a ready App.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath())
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	imageManager, err := images.NewManager(cfg.ImagesPath())
	if err != nil {
		log.Error(ctx, "error initializing image storage", "error", err)
		return nil, err
	}

	return &App{
		config: cfg,
		auth:   services.NewAuthService(db, log),
		notes:  services.NewNoteService(db, imageManager, log),
		log:    log,
		sort:   models.DefaultSort(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// opCtx bounds a single storage operation with the configured timeout.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.OpTimeout)
}
