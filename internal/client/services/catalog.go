package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
	"golang.org/x/sync/singleflight"
)

// CatalogService caches the quiz categories for the lifetime of one
// credential. Concurrent EnsureLoaded calls for the same credential share a
// single outstanding fetch.
type CatalogService struct {
	client client.Client
	log    logging.Logger
	group  singleflight.Group

	mu         sync.Mutex
	token      string
	pending    string
	categories []models.Category
	loaded     bool
	generation uint64
}

func NewCatalogService(c client.Client, log logging.Logger) *CatalogService {
	return &CatalogService{client: c, log: log.With("component", "catalog")}
}

// EnsureLoaded returns the cached categories for cred, fetching them first if
// needed. A populated catalog is never refetched for the same credential. On
// failure the catalog stays empty and is not retried until the next call.
func (s *CatalogService) EnsureLoaded(ctx context.Context, cred models.Credential) ([]models.Category, error) {
	if !cred.Valid() {
		return nil, common.ErrNotAuthenticated
	}

	s.mu.Lock()
	if s.loaded && s.token == cred.Token {
		cats := slices.Clone(s.categories)
		s.mu.Unlock()
		return cats, nil
	}
	gen := s.generation
	s.pending = cred.Token
	s.mu.Unlock()

	// The cache is filled inside the flight so that a caller arriving after
	// the flight ends always finds it populated.
	v, err, shared := s.group.Do(cred.Token, func() (any, error) {
		if cats, ok := s.cached(cred.Token); ok {
			return cats, nil
		}

		cats, err := s.client.Categories(ctx, cred.Token)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != gen {
			return nil, common.ErrStaleResponse
		}
		if err != nil {
			s.categories, s.loaded, s.token = nil, false, ""
			return nil, err
		}
		s.categories, s.loaded, s.token = cats, true, cred.Token
		return cats, nil
	})

	switch {
	case errors.Is(err, common.ErrStaleResponse):
		return nil, fmt.Errorf("categories: %w", err)
	case err != nil:
		s.log.Warn(ctx, "category load failed", "error", err)
		return nil, authenticatedError("categories", common.ErrServiceUnavailable, err)
	}

	cats := v.([]models.Category)
	s.log.Debug(ctx, "categories loaded", "count", len(cats), "shared", shared)
	return slices.Clone(cats), nil
}

func (s *CatalogService) cached(token string) ([]models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded && s.token == token {
		return s.categories, true
	}
	return nil, false
}

// Categories returns the cached categories without fetching.
func (s *CatalogService) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

// Clear empties the catalog. A fetch still in flight is discarded when it lands.
func (s *CatalogService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range []string{s.token, s.pending} {
		if key != "" {
			s.group.Forget(key)
		}
	}
	s.pending = ""
	s.generation++
	s.categories, s.loaded, s.token = nil, false, ""
}
