package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Session struct {
	// Secret signs and encrypts the session cookie. If left empty,
	// a random secret is generated at startup, so sessions do not
	// survive a restart.
	Secret *string
	MaxAge time.Duration
	Secure *bool
}

func (s *Session) setDefaults() {
	s.Secret = gosettings.DefaultPointer(s.Secret, "")
	const defaultMaxAge = 30 * 24 * time.Hour
	s.MaxAge = gosettings.DefaultComparable(s.MaxAge, defaultMaxAge)
	s.Secure = gosettings.DefaultPointer(s.Secure, false)
}

var (
	ErrSessionSecretTooShort = errors.New("session secret is too short")
	ErrSessionMaxAgeTooLow   = errors.New("session max age is too low")
)

func (s Session) Validate() (err error) {
	const minSecretLength = 32
	if *s.Secret != "" && len(*s.Secret) < minSecretLength {
		return fmt.Errorf("%w: %d bytes must be at least %d bytes",
			ErrSessionSecretTooShort, len(*s.Secret), minSecretLength)
	}

	if s.MaxAge < time.Minute {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrSessionMaxAgeTooLow, s.MaxAge, time.Minute)
	}

	return nil
}

func (s Session) String() string {
	return s.toLinesNode().String()
}

func (s Session) toLinesNode() *gotree.Node {
	node := gotree.New("Session")
	if *s.Secret == "" {
		node.Appendf("Secret: [random]")
	} else {
		node.Appendf("Secret: [set]")
	}
	node.Appendf("Max age: %s", s.MaxAge)
	node.Appendf("Secure cookie: %s", gosettings.BoolToYesNo(s.Secure))
	return node
}

func (s *Session) read(r *reader.Reader) (err error) {
	s.Secret = r.Get("SESSION_SECRET", reader.ForceLowercase(false))

	s.MaxAge, err = r.Duration("SESSION_MAX_AGE")
	if err != nil {
		return err
	}

	s.Secure, err = r.BoolPtr("SESSION_SECURE")
	return err
}
