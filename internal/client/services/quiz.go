package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
	"github.com/google/uuid"
)

// QuizEngine fetches question sets and builds quiz sessions from them.
type QuizEngine struct {
	client  client.Client
	log     logging.Logger
	shuffle func(n int, swap func(i, j int))
}

func NewQuizEngine(c client.Client, log logging.Logger) *QuizEngine {
	return &QuizEngine{client: c, log: log.With("component", "quiz"), shuffle: rand.Shuffle}
}

// StartQuiz requests cfg.Count questions and returns a session in which no
// item is answered yet. Each item's options are shuffled exactly once, here.
//
// An empty question set fails with common.ErrQuestionFetch. A longer set is
// truncated to cfg.Count; a shorter one is accepted as is.
func (e *QuizEngine) StartQuiz(ctx context.Context, cred models.Credential, cfg models.QuizConfig) (*models.QuizSession, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cred.Valid() {
		return nil, common.ErrNotAuthenticated
	}

	questions, err := e.client.StartQuiz(ctx, cred.Token, cfg.Category, cfg.Difficulty, cfg.Count)
	if err != nil {
		e.log.Warn(ctx, "question fetch failed", "category", cfg.Category, "difficulty", cfg.Difficulty, "error", err)
		return nil, authenticatedError("start quiz", common.ErrQuestionFetch, err)
	}

	switch {
	case len(questions) == 0:
		return nil, fmt.Errorf("start quiz: %w: no %s questions available in category %d",
			common.ErrQuestionFetch, cfg.Difficulty, cfg.Category)
	case len(questions) > cfg.Count:
		questions = questions[:cfg.Count]
	case len(questions) < cfg.Count:
		e.log.Info(ctx, "fewer questions than requested", "requested", cfg.Count, "received", len(questions))
	}

	session := &models.QuizSession{
		ID:             uuid.New(),
		Category:       cfg.Category,
		Difficulty:     cfg.Difficulty,
		RequestedCount: cfg.Count,
		Items:          make([]models.AnsweredQuestion, len(questions)),
	}
	for i, q := range questions {
		session.Items[i] = models.AnsweredQuestion{Question: q, Options: e.shuffled(q)}
	}

	e.log.Debug(ctx, "quiz started", "session", session.ID, "items", len(session.Items))
	return session, nil
}

// shuffled returns a uniformly random permutation of q's answers
// (Fisher-Yates via rand.Shuffle).
func (e *QuizEngine) shuffled(q models.Question) []string {
	options := q.AllAnswers()
	e.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// SelectAnswer records option for item index of session. Out-of-range
// indexes and foreign options fail with common.ErrInvalidSelection.
func (e *QuizEngine) SelectAnswer(session *models.QuizSession, index int, option string) error {
	if session == nil {
		return fmt.Errorf("%w: no active quiz", common.ErrInvalidSelection)
	}
	return session.Select(index, option)
}
