package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	stage() models.Stage
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Federated(ctx context.Context) error
	Categories(ctx context.Context) error
	Start(ctx context.Context, args []string) error
	Show(ctx context.Context) error
	Answer(ctx context.Context, args []string) error
	Submit(ctx context.Context) error
	Again(ctx context.Context) error
	Pick(ctx context.Context) error
	Scores(ctx context.Context) error
	Settings(ctx context.Context) error
	Rename(ctx context.Context, args []string) error
	Email(ctx context.Context, args []string) error
	Delete(ctx context.Context) error
	Logout(ctx context.Context) error
}

var helpByStage = map[models.Stage]string{
	models.StageLogin:    "Available commands: login, register, federated, exit",
	models.StagePick:     "Available commands: categories, start <category> <difficulty> [count], scores, settings, logout, exit",
	models.StagePlay:     "Available commands: show, answer <question#> <option#>, submit, pick, scores, settings, logout, exit",
	models.StageResult:   "Available commands: show, again, pick, scores, settings, logout, exit",
	models.StageScores:   "Available commands: show, pick, settings, logout, exit",
	models.StageSettings: "Available commands: show, rename <name>, email <address>, delete, pick, scores, logout, exit",
}

// runREPL starts a simple read–eval–print loop for the QuizMaster CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn). Command errors are
// printed as user-facing messages and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("quiz> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpByStage[a.stage()])
		case "login":
			cmdErr = a.Login(ctx)
		case "register":
			cmdErr = a.Register(ctx)
		case "federated":
			cmdErr = a.Federated(ctx)
		case "categories", "c":
			cmdErr = a.Categories(ctx)
		case "start":
			cmdErr = a.Start(ctx, args)
		case "show", "s":
			cmdErr = a.Show(ctx)
		case "answer", "a":
			cmdErr = a.Answer(ctx, args)
		case "submit":
			cmdErr = a.Submit(ctx)
		case "again":
			cmdErr = a.Again(ctx)
		case "pick":
			cmdErr = a.Pick(ctx)
		case "scores":
			cmdErr = a.Scores(ctx)
		case "settings":
			cmdErr = a.Settings(ctx)
		case "rename":
			cmdErr = a.Rename(ctx, args)
		case "email":
			cmdErr = a.Email(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(userMessage(cmdErr))
		}
	}
}

// userMessage turns a command error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Incorrect email or password."
	case errors.Is(err, common.ErrEmailInUse):
		return "This email is already registered."
	case errors.Is(err, common.ErrFederatedAuthFailed):
		return "Sign-in with the identity provider failed."
	case errors.Is(err, common.ErrAuthExpired):
		return "Your session has expired, please log in again."
	case errors.Is(err, common.ErrNotAuthenticated):
		return "Please log in first."
	case errors.Is(err, common.ErrWrongStage):
		return "That command is not available here. Type 'help'."
	case errors.Is(err, common.ErrStaleResponse):
		return "The screen changed before the response arrived; it was ignored."
	case errors.Is(err, common.ErrQuestionFetch):
		return "Could not start the quiz: " + err.Error()
	case errors.Is(err, common.ErrServiceUnavailable):
		return "The quiz service is unavailable, try again later."
	default:
		return "Error: " + err.Error()
	}
}
