package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/client/clienttest"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleQuestions = []models.Question{
	{Text: "Q1", CorrectAnswer: "A", IncorrectAnswers: []string{"B", "C", "D"}},
	{Text: "Q2", CorrectAnswer: "X", IncorrectAnswers: []string{"Y"}},
}

func questionsFake(qs []models.Question) *clienttest.Fake {
	return &clienttest.Fake{StartQuizFn: func(context.Context, string, int, models.Difficulty, int) ([]models.Question, error) {
		return qs, nil
	}}
}

func noShuffle(int, func(i, j int)) {}

func TestStartQuiz_ValidatesBeforeNetwork(t *testing.T) {
	fc := questionsFake(sampleQuestions)
	e := NewQuizEngine(fc, logging.Discard())
	ctx := context.Background()

	for _, cfg := range []models.QuizConfig{
		{Category: 9, Difficulty: "extreme", Count: 2},
		{Category: 9, Difficulty: models.DifficultyEasy, Count: 0},
		{Category: 9, Difficulty: models.DifficultyEasy, Count: -1},
	} {
		_, err := e.StartQuiz(ctx, testCred, cfg)
		require.ErrorIs(t, err, common.ErrValidation, "%+v", cfg)
	}
	assert.Zero(t, fc.Calls("startQuiz"))

	_, err := e.StartQuiz(ctx, models.Credential{}, models.QuizConfig{Category: 9, Difficulty: models.DifficultyEasy, Count: 2})
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestStartQuiz_PassesParameters(t *testing.T) {
	fc := &clienttest.Fake{StartQuizFn: func(_ context.Context, token string, category int, d models.Difficulty, amount int) ([]models.Question, error) {
		assert.Equal(t, "tok", token)
		assert.Equal(t, 9, category)
		assert.Equal(t, models.DifficultyHard, d)
		assert.Equal(t, 2, amount)
		return sampleQuestions, nil
	}}
	e := NewQuizEngine(fc, logging.Discard())

	s, err := e.StartQuiz(context.Background(), testCred, models.QuizConfig{Category: 9, Difficulty: models.DifficultyHard, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 9, s.Category)
	assert.Equal(t, models.DifficultyHard, s.Difficulty)
	assert.NotEqual(t, uuid.Nil, s.ID)
}

func TestStartQuiz_OptionsArePermutations(t *testing.T) {
	qs := make([]models.Question, 20)
	for i := range qs {
		qs[i] = models.Question{
			Text:             fmt.Sprintf("Q%d", i),
			CorrectAnswer:    "right",
			IncorrectAnswers: []string{"w1", "w2", "w3", "w2"},
		}
	}
	e := NewQuizEngine(questionsFake(qs), logging.Discard())

	s, err := e.StartQuiz(context.Background(), testCred, models.QuizConfig{Category: 1, Difficulty: models.DifficultyEasy, Count: len(qs)})
	require.NoError(t, err)
	require.Len(t, s.Items, len(qs))
	for i, it := range s.Items {
		assert.Equal(t, qs[i], it.Question)
		assert.ElementsMatch(t, qs[i].AllAnswers(), it.Options)
		assert.False(t, it.Answered)
		assert.Empty(t, it.Selected)
	}
	assert.Zero(t, s.AnsweredCount())
}

func TestStartQuiz_UsesInjectedShuffleOncePerItem(t *testing.T) {
	calls := 0
	e := NewQuizEngine(questionsFake(sampleQuestions), logging.Discard())
	e.shuffle = func(n int, swap func(i, j int)) {
		calls++
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}

	s, err := e.StartQuiz(context.Background(), testCred, models.QuizConfig{Category: 9, Difficulty: models.DifficultyEasy, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"D", "C", "B", "A"}, s.Items[0].Options)
	assert.Equal(t, []string{"Y", "X"}, s.Items[1].Options)

	// the question itself is left in served order
	assert.Equal(t, []string{"B", "C", "D"}, s.Items[0].Question.IncorrectAnswers)
}

func TestStartQuiz_QuestionSetSizes(t *testing.T) {
	ctx := context.Background()
	cfg := models.QuizConfig{Category: 9, Difficulty: models.DifficultyEasy, Count: 2}

	t.Run("empty", func(t *testing.T) {
		e := NewQuizEngine(questionsFake(nil), logging.Discard())
		_, err := e.StartQuiz(ctx, testCred, cfg)
		require.ErrorIs(t, err, common.ErrQuestionFetch)
	})

	t.Run("more than requested", func(t *testing.T) {
		qs := append(append([]models.Question{}, sampleQuestions...), models.Question{Text: "Q3", CorrectAnswer: "Z"})
		e := NewQuizEngine(questionsFake(qs), logging.Discard())
		s, err := e.StartQuiz(ctx, testCred, cfg)
		require.NoError(t, err)
		require.Len(t, s.Items, 2)
		assert.Equal(t, "Q2", s.Items[1].Question.Text)
	})

	t.Run("fewer than requested", func(t *testing.T) {
		e := NewQuizEngine(questionsFake(sampleQuestions[:1]), logging.Discard())
		s, err := e.StartQuiz(ctx, testCred, cfg)
		require.NoError(t, err)
		assert.Len(t, s.Items, 1)
		assert.Equal(t, 2, s.RequestedCount)
	})
}

func TestStartQuiz_ErrorMapping(t *testing.T) {
	cfg := models.QuizConfig{Category: 9, Difficulty: models.DifficultyEasy, Count: 2}
	cases := []struct {
		name    string
		err     error
		want    []error
		notWant error
	}{
		{"server", client.ErrServer, []error{common.ErrQuestionFetch}, common.ErrAuthExpired},
		{"rejected", client.ErrRejected, []error{common.ErrQuestionFetch}, common.ErrAuthExpired},
		{"unavailable", client.ErrUnavailable, []error{common.ErrQuestionFetch, common.ErrServiceUnavailable}, common.ErrAuthExpired},
		{"unauthorized", client.ErrUnauthorized, []error{common.ErrAuthExpired}, common.ErrQuestionFetch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fc := &clienttest.Fake{StartQuizFn: func(context.Context, string, int, models.Difficulty, int) ([]models.Question, error) {
				return nil, tc.err
			}}
			e := NewQuizEngine(fc, logging.Discard())

			s, err := e.StartQuiz(context.Background(), testCred, cfg)
			assert.Nil(t, s)
			for _, w := range tc.want {
				assert.ErrorIs(t, err, w)
			}
			assert.NotErrorIs(t, err, tc.notWant)
		})
	}
}

func TestSelectAnswer(t *testing.T) {
	e := NewQuizEngine(questionsFake(sampleQuestions), logging.Discard())
	e.shuffle = noShuffle
	s, err := e.StartQuiz(context.Background(), testCred, models.QuizConfig{Category: 9, Difficulty: models.DifficultyEasy, Count: 2})
	require.NoError(t, err)

	require.NoError(t, e.SelectAnswer(s, 0, "B"))
	require.NoError(t, e.SelectAnswer(s, 0, "A"))
	require.NoError(t, e.SelectAnswer(s, 0, "A"))
	assert.Equal(t, "A", s.Items[0].Selected)
	assert.Equal(t, 1, s.AnsweredCount())

	require.ErrorIs(t, e.SelectAnswer(s, 2, "A"), common.ErrInvalidSelection)
	require.ErrorIs(t, e.SelectAnswer(s, -1, "A"), common.ErrInvalidSelection)
	require.ErrorIs(t, e.SelectAnswer(s, 1, "A"), common.ErrInvalidSelection)
	require.ErrorIs(t, e.SelectAnswer(nil, 0, "A"), common.ErrInvalidSelection)
	assert.Equal(t, "A", s.Items[0].Selected, "failed selections change nothing")
}
