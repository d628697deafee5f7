package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
)

// Grader scores quiz sessions and talks to the scoring service.
type Grader struct {
	client client.Client
	log    logging.Logger
}

func NewGrader(c client.Client, log logging.Logger) *Grader {
	return &Grader{client: c, log: log.With("component", "grader")}
}

// Grade counts exact, case-sensitive matches of the selected answers.
// Unanswered items score nothing. It performs no I/O.
func (g *Grader) Grade(session *models.QuizSession) models.ScoreRecord {
	correct := 0
	for _, it := range session.Items {
		if it.IsCorrect() {
			correct++
		}
	}
	return models.ScoreRecord{
		Total:      len(session.Items),
		Correct:    correct,
		Category:   strconv.Itoa(session.Category),
		Difficulty: string(session.Difficulty),
	}
}

// Persist sends rec to the scoring service. idempotencyKey identifies the
// play-through so a replayed request cannot create a second record.
func (g *Grader) Persist(ctx context.Context, cred models.Credential, idempotencyKey string, rec models.ScoreRecord) (*models.ScoreRecord, error) {
	if !cred.Valid() {
		return nil, common.ErrNotAuthenticated
	}
	saved, err := g.client.SubmitScore(ctx, cred.Token, idempotencyKey, rec)
	if err != nil {
		g.log.Warn(ctx, "score not saved", "key", idempotencyKey, "error", err)
		return nil, authenticatedError("save score", common.ErrPersistence, err)
	}
	g.log.Info(ctx, "score saved", "key", idempotencyKey, "correct", rec.Correct, "total", rec.Total)
	return saved, nil
}

// History returns the user's earlier scores, newest first as served.
func (g *Grader) History(ctx context.Context, cred models.Credential) ([]models.ScoreRecord, error) {
	if !cred.Valid() {
		return nil, common.ErrNotAuthenticated
	}
	recs, err := g.client.Scores(ctx, cred.Token)
	if err != nil {
		return nil, authenticatedError("score history", common.ErrServiceUnavailable, err)
	}
	return recs, nil
}
