package models

import "slices"

// Question is one multiple-choice item as served by the quiz service.
type Question struct {
	Text             string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// AllAnswers returns the correct answer followed by the incorrect ones.
func (q Question) AllAnswers() []string {
	out := make([]string, 0, 1+len(q.IncorrectAnswers))
	out = append(out, q.CorrectAnswer)
	return append(out, q.IncorrectAnswers...)
}

// AnsweredQuestion pairs a question with the option order shown to the user
// and the user's current selection.
//
// Options is a permutation of Question.AllAnswers, fixed when the question
// set arrives.
type AnsweredQuestion struct {
	Question Question
	Options  []string
	Selected string
	Answered bool
}

// HasOption reports whether option is one of the item's options.
func (a AnsweredQuestion) HasOption(option string) bool {
	return slices.Contains(a.Options, option)
}

// IsCorrect reports an exact, case-sensitive match of the selection.
func (a AnsweredQuestion) IsCorrect() bool {
	return a.Answered && a.Selected == a.Question.CorrectAnswer
}
