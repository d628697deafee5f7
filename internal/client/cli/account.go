package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
)

// Scores shows earlier results.
func (a *App) Scores(ctx context.Context) error {
	if err := a.ctrl.Navigate(ctx, models.StageScores); err != nil {
		return err
	}
	a.renderScores(a.ctrl.Snapshot())
	return nil
}

// Settings shows the account profile.
func (a *App) Settings(ctx context.Context) error {
	if err := a.ctrl.Navigate(ctx, models.StageSettings); err != nil {
		return err
	}
	a.renderProfile(a.ctrl.Snapshot())
	return nil
}

// Rename sets the display name to the remaining arguments.
func (a *App) Rename(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if common.IsBlank(name) {
		return fmt.Errorf("%w: usage: rename <name>", common.ErrValidation)
	}
	return a.updateProfile(ctx, models.ProfileUpdate{Name: &name})
}

// Email changes the account email.
func (a *App) Email(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: email <address>", common.ErrValidation)
	}
	return a.updateProfile(ctx, models.ProfileUpdate{Email: &args[0]})
}

func (a *App) updateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	if err := a.ctrl.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	a.renderProfile(a.ctrl.Snapshot())
	return nil
}
