package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/client/config"
	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/quizmaster/internal/client/services"
	"github.com/dmitrijs2005/quizmaster/internal/client/session"
	"github.com/dmitrijs2005/quizmaster/internal/logging"
)

// controller is the part of session.Controller the commands drive.
type controller interface {
	Snapshot() session.Snapshot
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	LoginWithFederatedToken(ctx context.Context, providerToken string) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Navigate(ctx context.Context, target models.Stage) error
	StartQuiz(ctx context.Context, cfg models.QuizConfig) error
	SelectAnswer(index int, option string) error
	Submit(ctx context.Context) (session.Result, error)
	PlayAgain(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error
}

type App struct {
	config  *config.Config
	log     logging.Logger
	ctrl    controller
	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// NewApp opens the credential database, builds the API client and services
// and returns an App ready to Run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.APIBaseURL, client.WithTimeout(c.RequestTimeout))

	auth := services.NewAuthService(api, credentials.NewSQLiteRepository(db), log)
	ctrl := session.NewController(
		auth,
		services.NewCatalogService(api, log),
		services.NewQuizEngine(api, log),
		services.NewGrader(api, log),
		log,
	)

	return &App{
		config:  c,
		log:     log,
		ctrl:    ctrl,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closers: []func() error{api.Close, db.Close},
	}, nil
}

// Run resumes a stored session if there is one and blocks in the REPL until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "close failed", "error", err)
		}
	}()

	if err := a.ctrl.Restore(ctx); err != nil {
		printlnFn(userMessage(err))
	}
	if a.stage() != models.StageLogin {
		a.renderPick(a.ctrl.Snapshot())
	}
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the API client and the database.
func (a *App) Close() error {
	var errs []error
	for _, fn := range a.closers {
		errs = append(errs, fn())
	}
	return errors.Join(errs...)
}

func (a *App) stage() models.Stage {
	return a.ctrl.Snapshot().Stage
}

func (a *App) status() string {
	snap := a.ctrl.Snapshot()
	if snap.Stage == models.StageLogin {
		return "not logged in"
	}
	return fmt.Sprintf("%s | %s", snap.Email, snap.Stage)
}

// warn prints the snapshot warning, if any.
func (a *App) warn(snap session.Snapshot) {
	if snap.Warning != "" {
		fmt.Fprintln(a.out, "Warning:", snap.Warning)
	}
}
