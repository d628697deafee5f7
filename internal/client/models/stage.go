package models

// Stage is the session controller's top-level mode.
type Stage string

const (
	StageLogin    Stage = "login"
	StagePick     Stage = "pick"
	StagePlay     Stage = "play"
	StageResult   Stage = "result"
	StageScores   Stage = "scores"
	StageSettings Stage = "settings"
)

// Authenticated reports whether the stage requires a credential.
func (s Stage) Authenticated() bool {
	return s != StageLogin
}
