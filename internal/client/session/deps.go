package session

import (
	"context"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
)

// Identity holds the credential. Implemented by services.AuthService.
type Identity interface {
	Credential() models.Credential
	Restore(ctx context.Context) (models.Credential, error)
	Login(ctx context.Context, email, password string) (models.Credential, error)
	Register(ctx context.Context, email, password string) (models.Credential, error)
	LoginWithFederatedToken(ctx context.Context, providerToken string) (models.Credential, error)
	Logout(ctx context.Context) error
	Expire(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)
}

// Catalog caches categories. Implemented by services.CatalogService.
type Catalog interface {
	EnsureLoaded(ctx context.Context, cred models.Credential) ([]models.Category, error)
	Categories() []models.Category
	Clear()
}

// Engine builds quiz sessions. Implemented by services.QuizEngine.
type Engine interface {
	StartQuiz(ctx context.Context, cred models.Credential, cfg models.QuizConfig) (*models.QuizSession, error)
	SelectAnswer(session *models.QuizSession, index int, option string) error
}

// Scorer grades and stores results. Implemented by services.Grader.
type Scorer interface {
	Grade(session *models.QuizSession) models.ScoreRecord
	Persist(ctx context.Context, cred models.Credential, idempotencyKey string, rec models.ScoreRecord) (*models.ScoreRecord, error)
	History(ctx context.Context, cred models.Credential) ([]models.ScoreRecord, error)
}
