package session

import (
	"fmt"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
)

type trigger string

const (
	triggerAuthenticate  trigger = "authenticate"
	triggerStartQuiz     trigger = "start quiz"
	triggerSelectAnswer  trigger = "select answer"
	triggerSubmit        trigger = "submit"
	triggerPlayAgain     trigger = "play again"
	triggerNavigate      trigger = "navigate"
	triggerUpdateProfile trigger = "update profile"
	triggerDeleteAccount trigger = "delete account"
	triggerLogout        trigger = "logout"
)

// transitions lists the triggers each stage accepts.
var transitions = map[models.Stage]map[trigger]bool{
	models.StageLogin: {
		triggerAuthenticate: true,
		triggerLogout:       true,
	},
	models.StagePick: {
		triggerStartQuiz: true,
		triggerNavigate:  true,
		triggerLogout:    true,
	},
	models.StagePlay: {
		triggerSelectAnswer: true,
		triggerSubmit:       true,
		triggerNavigate:     true,
		triggerLogout:       true,
	},
	models.StageResult: {
		triggerPlayAgain: true,
		triggerNavigate:  true,
		triggerLogout:    true,
	},
	models.StageScores: {
		triggerNavigate: true,
		triggerLogout:   true,
	},
	models.StageSettings: {
		triggerNavigate:      true,
		triggerUpdateProfile: true,
		triggerDeleteAccount: true,
		triggerLogout:        true,
	},
}

// navigable are the stages Navigate may target.
var navigable = map[models.Stage]bool{
	models.StagePick:     true,
	models.StageScores:   true,
	models.StageSettings: true,
}

func requiresCredential(t trigger) bool {
	return t != triggerAuthenticate && t != triggerLogout
}

func wrongStage(t trigger, stage models.Stage) error {
	return fmt.Errorf("%s in stage %s: %w", t, stage, common.ErrWrongStage)
}
