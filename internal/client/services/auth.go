package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService is the identity holder: it owns the bearer credential, keeps
// it in memory for authenticated calls and durably in the credential store.
//
// Every logout (explicit, expiry or account deletion) bumps a generation
// counter. A login, register or federated response that arrives after the
// generation moved on is dropped with common.ErrStaleResponse, so a logout
// issued during an in-flight login always wins.
type AuthService struct {
	client client.Client
	store  credentials.Repository
	log    logging.Logger
	now    func() time.Time

	mu         sync.Mutex
	cred       models.Credential
	generation uint64
}

// NewAuthService constructs an AuthService bound to the API client and credential store.
func NewAuthService(c client.Client, store credentials.Repository, log logging.Logger) *AuthService {
	return &AuthService{client: c, store: store, log: log.With("component", "auth"), now: time.Now}
}

// Credential returns the current credential; it is zero when logged out.
func (a *AuthService) Credential() models.Credential {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cred
}

// Restore loads the durable credential written by an earlier run. A stored
// JWT whose exp claim has passed is discarded; opaque tokens are kept and
// validated by the first authenticated call.
func (a *AuthService) Restore(ctx context.Context) (models.Credential, error) {
	cred, err := a.store.Load(ctx)
	if err != nil {
		return models.Credential{}, fmt.Errorf("restore credential: %w", err)
	}
	if !cred.Valid() {
		return models.Credential{}, nil
	}

	if tokenExpired(cred.Token, a.now()) {
		a.log.Info(ctx, "stored credential expired", "email", cred.Email)
		if err := a.store.Clear(ctx); err != nil {
			return models.Credential{}, err
		}
		return models.Credential{}, nil
	}

	a.mu.Lock()
	a.cred = cred
	a.mu.Unlock()
	return cred, nil
}

func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}

// Login authenticates with email and password. Blank fields fail with
// common.ErrValidation before any network call; a rejection fails with
// common.ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.Credential, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.Credential{}, err
	}
	return a.authenticate(ctx, "login", email, func(ctx context.Context) (string, error) {
		return a.client.Login(ctx, email, password)
	})
}

// Register creates an account and logs into it. A conflict fails with
// common.ErrEmailInUse.
func (a *AuthService) Register(ctx context.Context, email, password string) (models.Credential, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.Credential{}, err
	}
	return a.authenticate(ctx, "register", email, func(ctx context.Context) (string, error) {
		return a.client.Register(ctx, email, password)
	})
}

// LoginWithFederatedToken exchanges a third-party identity token. The token
// is opaque and not validated locally.
func (a *AuthService) LoginWithFederatedToken(ctx context.Context, providerToken string) (models.Credential, error) {
	return a.authenticate(ctx, "federated", "", func(ctx context.Context) (string, error) {
		return a.client.FederatedLogin(ctx, providerToken)
	})
}

func validateCredentials(email, password string) error {
	if common.IsBlank(email) || common.IsBlank(password) {
		return fmt.Errorf("%w: email and password cannot be empty", common.ErrValidation)
	}
	return nil
}

func (a *AuthService) authenticate(ctx context.Context, op, email string, call func(context.Context) (string, error)) (models.Credential, error) {
	a.mu.Lock()
	gen := a.generation
	a.mu.Unlock()

	token, err := call(ctx)
	if err != nil {
		a.log.Warn(ctx, op+" failed", "error", err)
		return models.Credential{}, authError(op, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.generation != gen {
		a.log.Info(ctx, op+" response dropped after logout")
		return models.Credential{}, fmt.Errorf("%s: %w", op, common.ErrStaleResponse)
	}

	cred := models.Credential{Token: token, Email: email}
	if err := a.store.Save(ctx, cred); err != nil {
		return models.Credential{}, fmt.Errorf("%s: save credential: %w", op, err)
	}
	a.cred = cred
	a.log.Info(ctx, op+" succeeded", "email", email)
	return cred, nil
}

// authError converts an unauthenticated auth-endpoint failure. Unlike
// authenticatedError, a 401 here is a rejection, not an expired session.
func authError(op string, err error) error {
	var rejected bool
	var kind error
	switch op {
	case "login":
		kind = common.ErrInvalidCredentials
		rejected = errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrRejected)
	case "register":
		kind = common.ErrEmailInUse
		rejected = errors.Is(err, client.ErrConflict) || errors.Is(err, client.ErrRejected)
	default:
		kind = common.ErrFederatedAuthFailed
		rejected = errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrRejected) ||
			errors.Is(err, client.ErrConflict)
	}
	if rejected {
		return fmt.Errorf("%s: %w", op, kind)
	}
	return fmt.Errorf("%s: %w: %v", op, common.ErrServiceUnavailable, err)
}

// Logout forgets the credential in memory and in the store. It is
// idempotent; the in-memory credential is cleared even if the store fails.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.clear(ctx, "logout")
}

// Expire is Logout triggered by a 401-equivalent on an authenticated call.
func (a *AuthService) Expire(ctx context.Context) error {
	return a.clear(ctx, "credential expired")
}

func (a *AuthService) clear(ctx context.Context, reason string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.generation++
	had := a.cred.Valid()
	a.cred = models.Credential{}

	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear stored credential", "error", err)
		return err
	}
	if had {
		a.log.Info(ctx, reason)
	}
	return nil
}

// DeleteAccount deletes the account remotely and then logs out. It fails
// closed: on a remote error the credential is kept and the error returned.
func (a *AuthService) DeleteAccount(ctx context.Context) error {
	cred := a.Credential()
	if !cred.Valid() {
		return common.ErrNotAuthenticated
	}

	if err := a.client.DeleteProfile(ctx, cred.Token); err != nil {
		a.log.Warn(ctx, "account deletion failed", "error", err)
		return authenticatedError("delete account", common.ErrDeleteAccount, err)
	}
	return a.clear(ctx, "account deleted")
}

// Profile fetches the account profile.
func (a *AuthService) Profile(ctx context.Context) (*models.Profile, error) {
	cred := a.Credential()
	if !cred.Valid() {
		return nil, common.ErrNotAuthenticated
	}

	p, err := a.client.GetProfile(ctx, cred.Token)
	if err != nil {
		return nil, authenticatedError("profile", common.ErrProfile, err)
	}
	return p, nil
}

// UpdateProfile applies a partial update. At least one non-blank field is
// required; blank fields are dropped. A changed email is written back to the stored credential.
func (a *AuthService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	if upd.Name != nil && common.IsBlank(*upd.Name) {
		upd.Name = nil
	}
	if upd.Email != nil && common.IsBlank(*upd.Email) {
		upd.Email = nil
	}
	if upd.Name == nil && upd.Email == nil {
		return nil, fmt.Errorf("%w: nothing to update", common.ErrValidation)
	}
	cred := a.Credential()
	if !cred.Valid() {
		return nil, common.ErrNotAuthenticated
	}

	p, err := a.client.UpdateProfile(ctx, cred.Token, upd)
	if err != nil {
		return nil, authenticatedError("update profile", common.ErrProfile, err)
	}

	if p.Email != "" && p.Email != cred.Email {
		a.mu.Lock()
		if a.cred.Token == cred.Token {
			a.cred.Email = p.Email
			if err := a.store.Save(ctx, a.cred); err != nil {
				a.log.Warn(ctx, "failed to store updated email", "error", err)
			}
		}
		a.mu.Unlock()
	}
	return p, nil
}
