package credentials

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
)

// MemoryRepository keeps the credential in process memory only.
type MemoryRepository struct {
	mu   sync.Mutex
	cred models.Credential
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(context.Context) (models.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cred, nil
}

func (r *MemoryRepository) Save(_ context.Context, cred models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cred = cred
	return nil
}

func (r *MemoryRepository) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cred = models.Credential{}
	return nil
}
