package client

import (
	"context"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
)

// Client is the request/response contract of the remote quiz service.
// Authenticated calls take the bearer token explicitly; the client itself
// holds no credential.
type Client interface {
	Close() error

	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
	FederatedLogin(ctx context.Context, providerToken string) (string, error)

	GetProfile(ctx context.Context, token string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (*models.Profile, error)
	DeleteProfile(ctx context.Context, token string) error

	Categories(ctx context.Context, token string) ([]models.Category, error)
	StartQuiz(ctx context.Context, token string, category int, difficulty models.Difficulty, amount int) ([]models.Question, error)

	Scores(ctx context.Context, token string) ([]models.ScoreRecord, error)
	SubmitScore(ctx context.Context, token, idempotencyKey string, rec models.ScoreRecord) (*models.ScoreRecord, error)
}
