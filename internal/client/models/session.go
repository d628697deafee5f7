package models

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/google/uuid"
)

// Difficulty is the second quiz configuration axis.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts easy, medium or hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", common.ErrValidation, s)
}

// QuizConfig is what the user picks before starting.
type QuizConfig struct {
	Category   int
	Difficulty Difficulty
	Count      int
}

// Validate checks the config locally, before any network call.
func (c QuizConfig) Validate() error {
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return err
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: question count must be positive, got %d", common.ErrValidation, c.Count)
	}
	return nil
}

// QuizSession is one play-through: the fetched questions, their option
// orderings and the captured answers. ID identifies the play-through for
// at-most-once score submission.
type QuizSession struct {
	ID             uuid.UUID
	Category       int
	Difficulty     Difficulty
	RequestedCount int
	Items          []AnsweredQuestion
}

// Select records option as the answer to item index, replacing any earlier
// selection. It fails with common.ErrInvalidSelection when index is out of
// range or option is not one of that item's options.
func (s *QuizSession) Select(index int, option string) error {
	if index < 0 || index >= len(s.Items) {
		return fmt.Errorf("%w: question %d out of range [0,%d)", common.ErrInvalidSelection, index, len(s.Items))
	}
	item := &s.Items[index]
	if !item.HasOption(option) {
		return fmt.Errorf("%w: %q is not an option of question %d", common.ErrInvalidSelection, option, index)
	}
	item.Selected = option
	item.Answered = true
	return nil
}

// AnsweredCount returns how many items have a selection.
func (s *QuizSession) AnsweredCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Answered {
			n++
		}
	}
	return n
}

// Clone returns a deep copy safe to hand to the view layer.
func (s *QuizSession) Clone() *QuizSession {
	if s == nil {
		return nil
	}
	c := *s
	c.Items = make([]AnsweredQuestion, len(s.Items))
	for i, it := range s.Items {
		it.Options = slices.Clone(it.Options)
		it.Question.IncorrectAnswers = slices.Clone(it.Question.IncorrectAnswers)
		c.Items[i] = it
	}
	return &c
}
