package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
)

// getSimpleText, getPassword and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

// Login prompts for email and password and signs in. On success the
// categories are shown.
func (a *App) Login(ctx context.Context) error {
	return a.withCredentials(ctx, a.ctrl.Login)
}

// Register prompts for email and password, creates the account and signs in.
func (a *App) Register(ctx context.Context) error {
	return a.withCredentials(ctx, a.ctrl.Register)
}

func (a *App) withCredentials(ctx context.Context, fn func(ctx context.Context, email, password string) error) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := fn(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	a.renderPick(a.ctrl.Snapshot())
	return nil
}

// Federated prompts for an identity provider token and exchanges it.
func (a *App) Federated(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter provider token", a.out)
	if err != nil {
		return err
	}
	if err := a.ctrl.LoginWithFederatedToken(ctx, token); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	a.renderPick(a.ctrl.Snapshot())
	return nil
}

// Logout signs out from any stage.
func (a *App) Logout(ctx context.Context) error {
	if err := a.ctrl.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Delete asks for confirmation and deletes the account.
func (a *App) Delete(ctx context.Context) error {
	switch a.stage() {
	case models.StageLogin:
		return common.ErrNotAuthenticated
	case models.StageSettings:
	default:
		return fmt.Errorf("delete: %w", common.ErrWrongStage)
	}

	ok, err := confirm(a.reader, "Delete your account and all scores? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}
	if err := a.ctrl.DeleteAccount(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account deleted.")
	return nil
}
