package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
)

// Result is the outcome shown in the result stage. Warning carries a
// persistence failure; the computed score is valid regardless.
type Result struct {
	Score   models.ScoreRecord
	Saved   *models.ScoreRecord
	Warning error
}

// Controller is the session state machine. Exactly one stage is active at a
// time; the zero stage is login.
type Controller struct {
	auth    Identity
	catalog Catalog
	engine  Engine
	scorer  Scorer
	log     logging.Logger

	mu      sync.Mutex
	stage   models.Stage
	epoch   uint64
	quiz    *models.QuizSession
	result  *Result
	scores  []models.ScoreRecord
	profile *models.Profile
	warning string
}

func NewController(auth Identity, catalog Catalog, engine Engine, scorer Scorer, log logging.Logger) *Controller {
	return &Controller{
		auth:    auth,
		catalog: catalog,
		engine:  engine,
		scorer:  scorer,
		log:     log.With("component", "session"),
		stage:   models.StageLogin,
	}
}

// Stage returns the active stage, forcing login when no credential is held.
func (c *Controller) Stage() models.Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enforceAuthLocked()
	return c.stage
}

// Restore resumes a session from the stored credential. Without one the
// controller stays in login.
func (c *Controller) Restore(ctx context.Context) error {
	if err := c.check(triggerAuthenticate); err != nil {
		return err
	}
	cred, err := c.auth.Restore(ctx)
	if err != nil {
		c.log.Warn(ctx, "could not restore credential", "error", err)
		return err
	}
	if !cred.Valid() {
		return nil
	}
	return c.transition(ctx, triggerAuthenticate, models.StagePick)
}

// Login authenticates with email and password and enters pick. Failures
// leave the stage unchanged.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, func(ctx context.Context) (models.Credential, error) {
		return c.auth.Login(ctx, email, password)
	})
}

// Register creates an account and enters pick.
func (c *Controller) Register(ctx context.Context, email, password string) error {
	return c.authenticate(ctx, func(ctx context.Context) (models.Credential, error) {
		return c.auth.Register(ctx, email, password)
	})
}

// LoginWithFederatedToken exchanges a third-party token and enters pick.
func (c *Controller) LoginWithFederatedToken(ctx context.Context, providerToken string) error {
	return c.authenticate(ctx, func(ctx context.Context) (models.Credential, error) {
		return c.auth.LoginWithFederatedToken(ctx, providerToken)
	})
}

func (c *Controller) authenticate(ctx context.Context, fn func(context.Context) (models.Credential, error)) error {
	if err := c.check(triggerAuthenticate); err != nil {
		return err
	}
	if _, err := fn(ctx); err != nil {
		return err
	}
	return c.transition(ctx, triggerAuthenticate, models.StagePick)
}

// Logout clears the credential, the quiz and the catalog and enters login.
// It is accepted in every stage and always ends in login; the returned error
// only reports a failure to clear the stored credential.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.auth.Logout(ctx)
	c.catalog.Clear()

	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
	return err
}

// DeleteAccount deletes the account and logs out. On failure the stage and
// credential are left as they were.
func (c *Controller) DeleteAccount(ctx context.Context) error {
	if err := c.check(triggerDeleteAccount); err != nil {
		return err
	}
	cred := c.auth.Credential()
	if err := c.auth.DeleteAccount(ctx); err != nil {
		if errors.Is(err, common.ErrAuthExpired) {
			return c.expire(ctx, cred, err)
		}
		c.setWarning(err)
		return err
	}

	c.catalog.Clear()
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
	c.log.Info(ctx, "account deleted")
	return nil
}

// Navigate moves between pick, scores and settings, running the target's
// lazy load. Leaving play abandons the quiz.
func (c *Controller) Navigate(ctx context.Context, target models.Stage) error {
	if !navigable[target] {
		return fmt.Errorf("navigate to %s: %w", target, common.ErrWrongStage)
	}
	return c.transition(ctx, triggerNavigate, target)
}

// PlayAgain leaves the result stage for pick.
func (c *Controller) PlayAgain(ctx context.Context) error {
	return c.transition(ctx, triggerPlayAgain, models.StagePick)
}

// StartQuiz fetches a question set and enters play. On failure the stage
// stays pick. A question set that arrives after the stage changed is
// discarded with common.ErrStaleResponse.
func (c *Controller) StartQuiz(ctx context.Context, cfg models.QuizConfig) error {
	c.mu.Lock()
	if err := c.checkLocked(triggerStartQuiz); err != nil {
		c.mu.Unlock()
		return err
	}
	epoch := c.epoch
	c.warning = ""
	c.mu.Unlock()

	cred := c.auth.Credential()
	quiz, err := c.engine.StartQuiz(ctx, cred, cfg)
	if err != nil {
		if errors.Is(err, common.ErrAuthExpired) {
			return c.expire(ctx, cred, err)
		}
		c.setWarning(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch || c.stage != models.StagePick {
		c.log.Info(ctx, "discarding late question set", "session", quiz.ID)
		return fmt.Errorf("start quiz: %w", common.ErrStaleResponse)
	}
	c.setStageLocked(models.StagePlay)
	c.quiz = quiz
	return nil
}

// SelectAnswer records option for question index of the active quiz.
func (c *Controller) SelectAnswer(index int, option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkLocked(triggerSelectAnswer); err != nil {
		return err
	}
	return c.engine.SelectAnswer(c.quiz, index, option)
}

// Submit grades the active quiz, enters result and persists the score once.
// Only the first call for a quiz is accepted: the stage leaves play before
// the score is sent. A persistence failure is reported in Result.Warning and
// does not fail the call.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if err := c.checkLocked(triggerSubmit); err != nil {
		c.mu.Unlock()
		return Result{}, err
	}
	quiz := c.quiz
	res := &Result{Score: c.scorer.Grade(quiz)}
	c.setStageLocked(models.StageResult)
	c.result = res
	c.mu.Unlock()

	cred := c.auth.Credential()
	saved, err := c.scorer.Persist(ctx, cred, quiz.ID.String(), res.Score)
	if errors.Is(err, common.ErrAuthExpired) {
		return Result{Score: res.Score, Warning: err}, c.expire(ctx, cred, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	res.Saved = saved
	if err != nil {
		res.Warning = err
		if c.result == res {
			c.warning = err.Error()
		}
	}
	return *res, nil
}

// UpdateProfile changes the account name or email from the settings stage.
func (c *Controller) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	if err := c.check(triggerUpdateProfile); err != nil {
		return err
	}
	cred := c.auth.Credential()
	p, err := c.auth.UpdateProfile(ctx, upd)
	if err != nil {
		if errors.Is(err, common.ErrAuthExpired) {
			return c.expire(ctx, cred, err)
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage == models.StageSettings {
		c.profile = p
	}
	return nil
}

func (c *Controller) check(t trigger) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkLocked(t)
}

func (c *Controller) checkLocked(t trigger) error {
	if requiresCredential(t) && c.enforceAuthLocked() {
		return fmt.Errorf("%s: %w", t, common.ErrNotAuthenticated)
	}
	if !transitions[c.stage][t] {
		return wrongStage(t, c.stage)
	}
	return nil
}

// enforceAuthLocked forces login when the credential is gone and reports
// whether it is.
func (c *Controller) enforceAuthLocked() bool {
	if c.auth.Credential().Valid() {
		return false
	}
	if c.stage.Authenticated() {
		c.resetLocked()
	}
	return true
}

// transition checks t, enters target and runs its lazy load.
func (c *Controller) transition(ctx context.Context, t trigger, target models.Stage) error {
	c.mu.Lock()
	if err := c.checkLocked(t); err != nil {
		c.mu.Unlock()
		return err
	}
	c.setStageLocked(target)
	epoch := c.epoch
	c.mu.Unlock()

	c.log.Debug(ctx, "stage changed", "stage", target, "trigger", string(t))
	return c.load(ctx, target, epoch)
}

// load runs the lazy load of target. Failures other than an expired
// credential become a warning in the snapshot; results that arrive after
// the stage changed are dropped.
func (c *Controller) load(ctx context.Context, target models.Stage, epoch uint64) error {
	cred := c.auth.Credential()

	var (
		err   error
		apply func()
	)
	switch target {
	case models.StagePick:
		_, err = c.catalog.EnsureLoaded(ctx, cred)
	case models.StageScores:
		var recs []models.ScoreRecord
		recs, err = c.scorer.History(ctx, cred)
		apply = func() { c.scores = recs }
	case models.StageSettings:
		var p *models.Profile
		p, err = c.auth.Profile(ctx)
		apply = func() { c.profile = p }
	default:
		return nil
	}

	if errors.Is(err, common.ErrAuthExpired) {
		return c.expire(ctx, cred, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return nil
	}
	if err != nil {
		if !errors.Is(err, common.ErrStaleResponse) {
			c.log.Warn(ctx, "stage data unavailable", "stage", target, "error", err)
			c.warning = err.Error()
		}
		return nil
	}
	if apply != nil {
		apply()
	}
	return nil
}

// expire handles a credential rejected by the server: it logs out and
// enters login. A rejection of a credential that was already replaced is
// ignored.
func (c *Controller) expire(ctx context.Context, cred models.Credential, cause error) error {
	if c.auth.Credential().Token != cred.Token {
		return cause
	}
	c.log.Warn(ctx, "credential rejected, logging out", "error", cause)
	if err := c.auth.Expire(ctx); err != nil {
		c.log.Error(ctx, "failed to clear expired credential", "error", err)
	}
	c.catalog.Clear()

	c.mu.Lock()
	c.resetLocked()
	c.warning = "session expired, please log in again"
	c.mu.Unlock()
	return cause
}

func (c *Controller) setWarning(err error) {
	c.mu.Lock()
	c.warning = err.Error()
	c.mu.Unlock()
}

// setStageLocked enters target. Every stage change bumps the epoch, which
// invalidates responses still in flight for the previous stage.
func (c *Controller) setStageLocked(target models.Stage) {
	c.stage = target
	c.epoch++
	c.warning = ""
	switch target {
	case models.StagePlay:
		c.result = nil
	case models.StageResult:
	default:
		c.quiz, c.result = nil, nil
	}
}

func (c *Controller) resetLocked() {
	c.setStageLocked(models.StageLogin)
	c.scores = nil
	c.profile = nil
}

// Snapshot is a copy of the controller state for rendering.
type Snapshot struct {
	Stage      models.Stage
	Email      string
	Categories []models.Category
	Quiz       *models.QuizSession
	Result     *Result
	Scores     []models.ScoreRecord
	Profile    *models.Profile
	Warning    string
}

// Snapshot returns the current stage with the data relevant to it.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enforceAuthLocked()

	s := Snapshot{Stage: c.stage, Warning: c.warning}
	if c.stage == models.StageLogin {
		return s
	}
	s.Email = c.auth.Credential().Email
	s.Categories = c.catalog.Categories()

	switch c.stage {
	case models.StagePlay:
		s.Quiz = c.quiz.Clone()
	case models.StageResult:
		s.Quiz = c.quiz.Clone()
		if c.result != nil {
			r := *c.result
			s.Result = &r
		}
	case models.StageScores:
		s.Scores = slices.Clone(c.scores)
	case models.StageSettings:
		if c.profile != nil {
			p := *c.profile
			s.Profile = &p
		}
	}
	return s
}
