package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/quizmaster/internal/client/client"
	"github.com/dmitrijs2005/quizmaster/internal/common"
)

// authenticatedError converts the failure of a bearer-authenticated call.
// A 401-equivalent becomes common.ErrAuthExpired. Everything else becomes
// kind; an unreachable service additionally matches common.ErrServiceUnavailable.
func authenticatedError(op string, kind error, err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return fmt.Errorf("%s: %w", op, common.ErrAuthExpired)
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Errorf("%s: %w: %w: %v", op, kind, common.ErrServiceUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, kind, err)
	}
}
