package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/client/session"
)

func (a *App) renderPick(snap session.Snapshot) {
	a.warn(snap)
	a.renderCategories(snap.Categories)
	fmt.Fprintln(a.out, "Start a quiz with: start <category> <easy|medium|hard> [count]")
}

func (a *App) renderCategories(cats []models.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(a.out, "No categories available. Type 'pick' to retry.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY")
	for _, c := range cats {
		fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
	}
	_ = w.Flush()
}

func (a *App) renderQuiz(snap session.Snapshot) {
	if snap.Quiz == nil {
		return
	}
	for i, it := range snap.Quiz.Items {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, it.Question.Text)
		for j, opt := range it.Options {
			mark := " "
			if it.Answered && it.Selected == opt {
				mark = "*"
			}
			fmt.Fprintf(a.out, "   %s %d) %s\n", mark, j+1, opt)
		}
	}
	fmt.Fprintf(a.out, "Answered %d of %d. Type 'submit' when done.\n", snap.Quiz.AnsweredCount(), len(snap.Quiz.Items))
}

func (a *App) renderResult(snap session.Snapshot) {
	if snap.Result == nil {
		return
	}
	fmt.Fprintf(a.out, "You scored %d / %d\n", snap.Result.Score.Correct, snap.Result.Score.Total)
	if snap.Quiz != nil {
		for i, it := range snap.Quiz.Items {
			verdict := "wrong"
			switch {
			case it.IsCorrect():
				verdict = "correct"
			case !it.Answered:
				verdict = "unanswered"
			}
			fmt.Fprintf(a.out, "%d. %s: %s (answer: %s)\n", i+1, it.Question.Text, verdict, it.Question.CorrectAnswer)
		}
	}
	if snap.Result.Warning != nil {
		fmt.Fprintln(a.out, "Warning: your score was not saved:", snap.Result.Warning)
	}
}

func (a *App) renderScores(snap session.Snapshot) {
	a.warn(snap)
	if len(snap.Scores) == 0 {
		fmt.Fprintln(a.out, "No scores yet.")
		return
	}
	names := make(map[string]string, len(snap.Categories))
	for _, c := range snap.Categories {
		names[strconv.Itoa(c.ID)] = c.Name
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tDIFFICULTY\tSCORE")
	for _, r := range snap.Scores {
		category := r.Category
		if name, ok := names[category]; ok {
			category = name
		}
		fmt.Fprintf(w, "%s\t%s\t%d/%d\n", category, r.Difficulty, r.Correct, r.Total)
	}
	_ = w.Flush()
}

func (a *App) renderProfile(snap session.Snapshot) {
	a.warn(snap)
	if snap.Profile == nil {
		return
	}
	fmt.Fprintf(a.out, "Email: %s\nName:  %s\n", snap.Profile.Email, snap.Profile.Name)
}
