package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jbalodis/localnotes/internal/common"
	"github.com/jbalodis/localnotes/internal/dbx"
	"github.com/jbalodis/localnotes/internal/logging"
	"github.com/jbalodis/localnotes/internal/models"
	"github.com/jbalodis/localnotes/internal/repositories/blobs"
)

// AuthService defines account operations over the local user registry.
//
// Contract:
//   - FindUser: exact, case-sensitive username lookup.
//   - CreateUser: append to the registry and initialize an empty note
//     collection; both writes happen in one transaction.
//   - VerifyLogin: byte-exact password comparison, no hashing or
//     normalization.
//
// All methods honor context cancellation via the underlying store.
type AuthService interface {
	// FindUser returns the user registered under username, or an error
	// wrapping common.ErrNotFound.
	FindUser(ctx context.Context, username string) (*models.User, error)

	// CreateUser registers a new account and returns its session. It fails
	// with common.ErrValidation on blank credentials, common.ErrAlreadyExists
	// on a username collision, and common.ErrStorageUnavailable when the
	// store cannot be read or written. It is not idempotent: a second call
	// with the same username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, username, password string) (models.Session, error)

	// VerifyLogin returns a session for the given credentials, or an error
	// wrapping common.ErrNotFound or common.ErrWrongPassword.
	VerifyLogin(ctx context.Context, username, password string) (models.Session, error)
}

// authService is the concrete AuthService backed by the local blob store.
type authService struct {
	db  *sql.DB
	log logging.Logger
}

// NewAuthService constructs an AuthService bound to the given database.
func NewAuthService(db *sql.DB, log logging.Logger) AuthService {
	return &authService{db: db, log: log}
}

// readRegistry decodes the user registry blob. A missing blob is an empty
// registry; read and decode failures are returned to the caller.
func readRegistry(ctx context.Context, store blobs.Store) ([]models.User, error) {
	data, ok, err := store.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read user registry: %w", common.ErrStorageUnavailable, err)
	}
	if !ok {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, fmt.Errorf("%w: decode user registry: %w", common.ErrStorageUnavailable, err)
	}
	return users, nil
}

// registry is the fail-open variant used on read-only paths: any failure is
// logged and treated as an empty registry.
func (s *authService) registry(ctx context.Context) []models.User {
	users, err := readRegistry(ctx, blobs.NewSQLiteStore(s.db))
	if err != nil {
		s.log.Warn(ctx, "user registry load failed, treating as empty", "error", err)
		return []models.User{}
	}
	return users
}

func (s *authService) FindUser(ctx context.Context, username string) (*models.User, error) {
	for _, u := range s.registry(ctx) {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
}

func (s *authService) CreateUser(ctx context.Context, username, password string) (models.Session, error) {
	var zero models.Session

	if username == "" || password == "" {
		return zero, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := blobs.NewSQLiteStore(tx)

		users, err := readRegistry(ctx, store)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Username == username {
				return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
			}
		}

		// Empty collection first, then the registry: a crash in between
		// never leaves a registered user without a note collection.
		if err := store.Set(ctx, NotesKey(username), "[]"); err != nil {
			return fmt.Errorf("%w: init note collection: %w", common.ErrStorageUnavailable, err)
		}

		users = append(users, models.User{Username: username, Password: password})
		data, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("encode user registry: %w", err)
		}
		if err := store.Set(ctx, UsersKey, string(data)); err != nil {
			return fmt.Errorf("%w: write user registry: %w", common.ErrStorageUnavailable, err)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	s.log.Info(ctx, "user registered", "user", username)
	return models.Session{Username: username}, nil
}

func (s *authService) VerifyLogin(ctx context.Context, username, password string) (models.Session, error) {
	var zero models.Session

	user, err := s.FindUser(ctx, username)
	if err != nil {
		return zero, err
	}
	if user.Password != password {
		return zero, fmt.Errorf("user %q: %w", username, common.ErrWrongPassword)
	}
	return models.Session{Username: username}, nil
}
