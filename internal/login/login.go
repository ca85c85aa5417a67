// Package login implements the login form flow.
package login

import (
	"context"
	"errors"
	"net/http"

	"github.com/qdm12/geotrack/internal/backend"
	"github.com/qdm12/geotrack/internal/constants"
	"github.com/qdm12/geotrack/internal/regex"
)

type State uint8

const (
	StateIdle State = iota
	StateSubmitting
	StateAuthenticated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt is the outcome of a login form submission.
type Attempt struct {
	State State
	// Email is kept so the form can be filled in again on failure.
	Email string
	// Token is set when the state is authenticated.
	Token string
	// Message is the user facing message set when the state is failed.
	Message string
}

type Flow struct {
	matcher  *regex.Matcher
	backend  Backend
	logger   Warner
	notifier Notifier
}

func New(backend Backend, logger Warner, notifier Notifier) *Flow {
	return &Flow{
		matcher:  regex.NewMatcher(),
		backend:  backend,
		logger:   logger,
		notifier: notifier,
	}
}

// Submit exchanges the credentials for a token with the backend.
// Malformed credentials fail without contacting the backend. On failure, the message is the one given by the backend if any,
// and a generic message otherwise.
func (f *Flow) Submit(ctx context.Context, email, password string) (attempt Attempt) {
	attempt = Attempt{
		State: StateSubmitting,
		Email: email,
	}

	if !f.matcher.Email(email) || password == "" {
		attempt.State = StateFailed
		attempt.Message = constants.MessageLoginFailed
		return attempt
	}

	token, err := f.backend.Login(ctx, email, password)
	if err == nil {
		attempt.State = StateAuthenticated
		attempt.Token = token
		return attempt
	}

	attempt.State = StateFailed
	attempt.Message = constants.MessageLoginFailed

	var responseErr *backend.ResponseError
	isResponseErr := errors.As(err, &responseErr)
	if isResponseErr && responseErr.Message != "" {
		attempt.Message = responseErr.Message
	}

	f.logger.Warn("login for " + email + " failed: " + err.Error())
	if !isResponseErr || responseErr.StatusCode >= http.StatusInternalServerError {
		// rejected credentials are not worth a notification
		f.notifier.Notify("backend login failed: " + err.Error())
	}

	return attempt
}
