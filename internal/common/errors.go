package common

import "errors"

// Error kinds surfaced by the session core. Every remote failure is converted
// to one of these at the boundary where the call is issued; callers match them
// with errors.Is.
var (
	// Local, pre-network input errors (empty credentials, bad quiz config).
	ErrValidation = errors.New("validation error")

	// Remote auth rejections. They never change the current stage.
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrEmailInUse          = errors.New("email already in use")
	ErrFederatedAuthFailed = errors.New("federated login failed")

	// Quiz lifecycle errors.
	ErrQuestionFetch    = errors.New("could not fetch questions")
	ErrInvalidSelection = errors.New("invalid answer selection")
	ErrPersistence      = errors.New("score was not saved")

	// ErrAuthExpired is any 401-equivalent on an authenticated call. It forces logout.
	ErrAuthExpired = errors.New("session expired, please log in again")

	// Controller guard errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrWrongStage       = errors.New("operation not allowed in current stage")
	ErrStaleResponse    = errors.New("response arrived after state change and was discarded")

	// Account errors outside the login flow.
	ErrProfile       = errors.New("profile request failed")
	ErrDeleteAccount = errors.New("account deletion failed")

	// ErrServiceUnavailable means the remote service could not be reached at all.
	ErrServiceUnavailable = errors.New("service unavailable")
)
