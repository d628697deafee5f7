package credentials

import (
	"context"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
)

// Repository stores at most one credential.
type Repository interface {
	// Load returns the stored credential, or a zero Credential if none is stored.
	Load(ctx context.Context) (models.Credential, error)
	// Save replaces the stored credential atomically.
	Save(ctx context.Context, cred models.Credential) error
	// Clear removes the stored credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
