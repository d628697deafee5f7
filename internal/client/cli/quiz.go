package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
)

// Categories lists the cached categories.
func (a *App) Categories(_ context.Context) error {
	snap := a.ctrl.Snapshot()
	if snap.Stage == models.StageLogin {
		return common.ErrNotAuthenticated
	}
	a.renderCategories(snap.Categories)
	return nil
}

// Start parses "start <category> <difficulty> [count]" and starts a quiz.
// The count defaults to the configured question count.
func (a *App) Start(ctx context.Context, args []string) error {
	cfg, err := a.parseStart(args)
	if err != nil {
		return err
	}
	if err := a.ctrl.StartQuiz(ctx, cfg); err != nil {
		return err
	}
	a.renderQuiz(a.ctrl.Snapshot())
	return nil
}

func (a *App) parseStart(args []string) (models.QuizConfig, error) {
	usage := fmt.Errorf("%w: usage: start <category> <easy|medium|hard> [count]", common.ErrValidation)
	if len(args) < 2 || len(args) > 3 {
		return models.QuizConfig{}, usage
	}

	category, err := strconv.Atoi(args[0])
	if err != nil {
		return models.QuizConfig{}, usage
	}
	difficulty, err := models.ParseDifficulty(args[1])
	if err != nil {
		return models.QuizConfig{}, err
	}
	count := a.config.QuestionCount
	if len(args) == 3 {
		if count, err = strconv.Atoi(args[2]); err != nil {
			return models.QuizConfig{}, usage
		}
	}

	cfg := models.QuizConfig{Category: category, Difficulty: difficulty, Count: count}
	return cfg, cfg.Validate()
}

// Show renders the current stage.
func (a *App) Show(_ context.Context) error {
	snap := a.ctrl.Snapshot()
	switch snap.Stage {
	case models.StageLogin:
		return common.ErrNotAuthenticated
	case models.StagePick:
		a.renderPick(snap)
	case models.StagePlay:
		a.renderQuiz(snap)
	case models.StageResult:
		a.renderResult(snap)
	case models.StageScores:
		a.renderScores(snap)
	case models.StageSettings:
		a.renderProfile(snap)
	}
	return nil
}

// Answer parses "answer <question#> <option#>" (both 1-based) and records
// the chosen option.
func (a *App) Answer(_ context.Context, args []string) error {
	usage := fmt.Errorf("%w: usage: answer <question#> <option#>", common.ErrValidation)
	if len(args) != 2 {
		return usage
	}
	q, err1 := strconv.Atoi(args[0])
	o, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return usage
	}

	snap := a.ctrl.Snapshot()
	if snap.Stage != models.StagePlay || snap.Quiz == nil {
		return fmt.Errorf("answer: %w", common.ErrWrongStage)
	}
	if q < 1 || q > len(snap.Quiz.Items) {
		return fmt.Errorf("%w: question must be between 1 and %d", common.ErrValidation, len(snap.Quiz.Items))
	}
	options := snap.Quiz.Items[q-1].Options
	if o < 1 || o > len(options) {
		return fmt.Errorf("%w: option must be between 1 and %d", common.ErrValidation, len(options))
	}

	if err := a.ctrl.SelectAnswer(q-1, options[o-1]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Q%d: %s\n", q, options[o-1])
	return nil
}

// Submit grades the quiz and shows the result.
func (a *App) Submit(ctx context.Context) error {
	snap := a.ctrl.Snapshot()
	if snap.Quiz != nil && snap.Stage == models.StagePlay {
		if n := len(snap.Quiz.Items) - snap.Quiz.AnsweredCount(); n > 0 {
			fmt.Fprintf(a.out, "%d question(s) unanswered; they score nothing.\n", n)
		}
	}

	res, err := a.ctrl.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "You scored %d / %d\n", res.Score.Correct, res.Score.Total)
	if res.Warning != nil {
		fmt.Fprintln(a.out, "Warning: your score was not saved:", res.Warning)
	}
	return nil
}

// Again leaves the result for a new pick.
func (a *App) Again(ctx context.Context) error {
	if err := a.ctrl.PlayAgain(ctx); err != nil {
		return err
	}
	a.renderPick(a.ctrl.Snapshot())
	return nil
}

// Pick navigates to the category picker, reloading the catalog if it is empty.
func (a *App) Pick(ctx context.Context) error {
	if err := a.ctrl.Navigate(ctx, models.StagePick); err != nil {
		return err
	}
	a.renderPick(a.ctrl.Snapshot())
	return nil
}
