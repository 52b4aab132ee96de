package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbalodis/localnotes/internal/common"
	"github.com/jbalodis/localnotes/internal/models"
)

func (a *App) Register(ctx context.Context) {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	sess, err := a.auth.CreateUser(opCtx, username, password)
	switch {
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Please fill in all fields")
		return
	case errors.Is(err, common.ErrAlreadyExists):
		fmt.Fprintln(a.out, "Username already exists")
		return
	case err != nil:
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	// Sign-up logs straight in, like the original flow.
	a.startSession(sess)
}

func (a *App) Login(ctx context.Context) {

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	sess, err := a.auth.VerifyLogin(opCtx, username, password)
	switch {
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "User not found")
		return
	case errors.Is(err, common.ErrWrongPassword):
		fmt.Fprintln(a.out, "Incorrect password")
		return
	case err != nil:
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	a.startSession(sess)
}

func (a *App) startSession(sess models.Session) {
	a.session = &sess
	a.query = ""
	a.sort = models.DefaultSort()
	fmt.Fprintf(a.out, "Logged in as %s\n", sess.Username)
}

func (a *App) Logout(ctx context.Context) {
	if a.session == nil {
		return
	}
	a.session = nil
	a.query = ""
	a.sort = models.DefaultSort()
	fmt.Fprintln(a.out, "Logged out")
}
