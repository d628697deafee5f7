package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/client/clienttest"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startSample(t *testing.T) *models.QuizSession {
	t.Helper()
	e := NewQuizEngine(questionsFake(sampleQuestions), logging.Discard())
	s, err := e.StartQuiz(context.Background(), testCred, models.QuizConfig{Category: 9, Difficulty: models.DifficultyEasy, Count: 2})
	require.NoError(t, err)
	return s
}

func TestGrade_GeneralKnowledgeScenario(t *testing.T) {
	s := startSample(t)
	require.NoError(t, s.Select(0, "A"))
	require.NoError(t, s.Select(1, "Y"))

	rec := NewGrader(&clienttest.Fake{}, logging.Discard()).Grade(s)
	assert.Equal(t, models.ScoreRecord{Total: 2, Correct: 1, Category: "9", Difficulty: "easy"}, rec)
}

func TestGrade_IsPure(t *testing.T) {
	s := startSample(t)
	require.NoError(t, s.Select(0, "A"))
	g := NewGrader(&clienttest.Fake{}, logging.Discard())

	first := g.Grade(s)
	for range 5 {
		assert.Equal(t, first, g.Grade(s))
	}
}

func TestGrade_MonotonicAndUnansweredScoresNothing(t *testing.T) {
	s := startSample(t)
	g := NewGrader(&clienttest.Fake{}, logging.Discard())

	assert.Zero(t, g.Grade(s).Correct)
	require.NoError(t, s.Select(0, "A"))
	assert.Equal(t, 1, g.Grade(s).Correct)
	require.NoError(t, s.Select(1, "X"))
	assert.Equal(t, 2, g.Grade(s).Correct)
	assert.Equal(t, 2, g.Grade(s).Total)
}

func TestGrade_CaseSensitive(t *testing.T) {
	s := &models.QuizSession{Category: 1, Difficulty: models.DifficultyEasy, Items: []models.AnsweredQuestion{{
		Question: models.Question{CorrectAnswer: "Paris", IncorrectAnswers: []string{"paris"}},
		Options:  []string{"paris", "Paris"},
	}}}
	require.NoError(t, s.Select(0, "paris"))

	assert.Zero(t, NewGrader(&clienttest.Fake{}, logging.Discard()).Grade(s).Correct)
}

func TestPersist(t *testing.T) {
	rec := models.ScoreRecord{Total: 2, Correct: 1, Category: "9", Difficulty: "easy"}
	ctx := context.Background()

	t.Run("sends key and record", func(t *testing.T) {
		fc := &clienttest.Fake{SubmitScoreFn: func(_ context.Context, token, key string, got models.ScoreRecord) (*models.ScoreRecord, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "session-1", key)
			assert.Equal(t, rec, got)
			got.ID = 7
			return &got, nil
		}}
		saved, err := NewGrader(fc, logging.Discard()).Persist(ctx, testCred, "session-1", rec)
		require.NoError(t, err)
		assert.Equal(t, 7, saved.ID)
	})

	t.Run("rejection is persistence error", func(t *testing.T) {
		fc := &clienttest.Fake{SubmitScoreFn: func(context.Context, string, string, models.ScoreRecord) (*models.ScoreRecord, error) {
			return nil, client.ErrRejected
		}}
		_, err := NewGrader(fc, logging.Discard()).Persist(ctx, testCred, "k", rec)
		require.ErrorIs(t, err, common.ErrPersistence)
	})

	t.Run("unauthorized is auth expired", func(t *testing.T) {
		fc := &clienttest.Fake{SubmitScoreFn: func(context.Context, string, string, models.ScoreRecord) (*models.ScoreRecord, error) {
			return nil, client.ErrUnauthorized
		}}
		_, err := NewGrader(fc, logging.Discard()).Persist(ctx, testCred, "k", rec)
		require.ErrorIs(t, err, common.ErrAuthExpired)
	})

	t.Run("no credential", func(t *testing.T) {
		fc := &clienttest.Fake{}
		_, err := NewGrader(fc, logging.Discard()).Persist(ctx, models.Credential{}, "k", rec)
		require.ErrorIs(t, err, common.ErrNotAuthenticated)
		assert.Zero(t, fc.Calls("submitScore"))
	})
}

func TestHistory(t *testing.T) {
	want := []models.ScoreRecord{{ID: 2, Total: 10, Correct: 7, Category: "9", Difficulty: "hard"}}
	fc := &clienttest.Fake{ScoresFn: func(context.Context, string) ([]models.ScoreRecord, error) { return want, nil }}

	got, err := NewGrader(fc, logging.Discard()).History(context.Background(), testCred)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	fc.ScoresFn = func(context.Context, string) ([]models.ScoreRecord, error) { return nil, client.ErrServer }
	_, err = NewGrader(fc, logging.Discard()).History(context.Background(), testCred)
	require.ErrorIs(t, err, common.ErrServiceUnavailable)
}
