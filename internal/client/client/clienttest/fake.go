// Package clienttest provides an in-memory client.Client for tests.
package clienttest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
)

var _ client.Client = (*Fake)(nil)

// Fake implements client.Client with per-method hooks. Unset hooks return
// zero values (SubmitScore echoes the record). It counts calls per method.
type Fake struct {
	mu    sync.Mutex
	calls map[string]int

	LoginFn         func(ctx context.Context, email, password string) (string, error)
	RegisterFn      func(ctx context.Context, email, password string) (string, error)
	FederatedFn     func(ctx context.Context, providerToken string) (string, error)
	GetProfileFn    func(ctx context.Context, token string) (*models.Profile, error)
	UpdateProfileFn func(ctx context.Context, token string, upd models.ProfileUpdate) (*models.Profile, error)
	DeleteProfileFn func(ctx context.Context, token string) error
	CategoriesFn    func(ctx context.Context, token string) ([]models.Category, error)
	StartQuizFn     func(ctx context.Context, token string, category int, difficulty models.Difficulty, amount int) ([]models.Question, error)
	ScoresFn        func(ctx context.Context, token string) ([]models.ScoreRecord, error)
	SubmitScoreFn   func(ctx context.Context, token, key string, rec models.ScoreRecord) (*models.ScoreRecord, error)
}

func (f *Fake) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

// Calls returns how many times the named method ("login", "categories", ...) ran.
func (f *Fake) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *Fake) Close() error { return nil }

func (f *Fake) Login(ctx context.Context, email, password string) (string, error) {
	f.count("login")
	if f.LoginFn == nil {
		return "", nil
	}
	return f.LoginFn(ctx, email, password)
}

func (f *Fake) Register(ctx context.Context, email, password string) (string, error) {
	f.count("register")
	if f.RegisterFn == nil {
		return "", nil
	}
	return f.RegisterFn(ctx, email, password)
}

func (f *Fake) FederatedLogin(ctx context.Context, providerToken string) (string, error) {
	f.count("federated")
	if f.FederatedFn == nil {
		return "", nil
	}
	return f.FederatedFn(ctx, providerToken)
}

func (f *Fake) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	f.count("getProfile")
	if f.GetProfileFn == nil {
		return &models.Profile{}, nil
	}
	return f.GetProfileFn(ctx, token)
}

func (f *Fake) UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (*models.Profile, error) {
	f.count("updateProfile")
	if f.UpdateProfileFn == nil {
		return &models.Profile{}, nil
	}
	return f.UpdateProfileFn(ctx, token, upd)
}

func (f *Fake) DeleteProfile(ctx context.Context, token string) error {
	f.count("deleteProfile")
	if f.DeleteProfileFn == nil {
		return nil
	}
	return f.DeleteProfileFn(ctx, token)
}

func (f *Fake) Categories(ctx context.Context, token string) ([]models.Category, error) {
	f.count("categories")
	if f.CategoriesFn == nil {
		return nil, nil
	}
	return f.CategoriesFn(ctx, token)
}

func (f *Fake) StartQuiz(ctx context.Context, token string, category int, difficulty models.Difficulty, amount int) ([]models.Question, error) {
	f.count("startQuiz")
	if f.StartQuizFn == nil {
		return nil, nil
	}
	return f.StartQuizFn(ctx, token, category, difficulty, amount)
}

func (f *Fake) Scores(ctx context.Context, token string) ([]models.ScoreRecord, error) {
	f.count("scores")
	if f.ScoresFn == nil {
		return nil, nil
	}
	return f.ScoresFn(ctx, token)
}

func (f *Fake) SubmitScore(ctx context.Context, token, key string, rec models.ScoreRecord) (*models.ScoreRecord, error) {
	f.count("submitScore")
	if f.SubmitScoreFn == nil {
		return &rec, nil
	}
	return f.SubmitScoreFn(ctx, token, key, rec)
}
