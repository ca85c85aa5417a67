// Package session keeps the bearer token of the logged in user in an
// encrypted browser cookie, so it survives browser restarts.
package session

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	tokenKey = "token"
	idKey    = "id"
)

type Settings struct {
	// Name is the cookie name.
	Name string
	// Secret is used to sign the cookie and to derive
	// its encryption key.
	Secret []byte
	Path   string
	MaxAge time.Duration
	Secure bool
}

type Store struct {
	cookies *sessions.CookieStore
	name    string
}

func NewStore(settings Settings) *Store {
	encryptionKey := sha256.Sum256(settings.Secret)
	cookies := sessions.NewCookieStore(settings.Secret, encryptionKey[:])
	cookies.Options = &sessions.Options{
		Path:     settings.Path,
		MaxAge:   int(settings.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   settings.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	cookies.MaxAge(cookies.Options.MaxAge)

	return &Store{
		cookies: cookies,
		name:    settings.Name,
	}
}

// Load returns the session of the request. A missing cookie, or a
// cookie which cannot be decoded, results in an empty session.
func (s *Store) Load(w http.ResponseWriter, r *http.Request) *Session {
	// An error is returned alongside a new empty session
	// when the cookie cannot be decoded.
	session, _ := s.cookies.Get(r, s.name)
	return &Session{
		session: session,
		request: r,
		writer:  w,
	}
}

// Session is the cookie session of a single request.
type Session struct {
	session *sessions.Session
	request *http.Request
	writer  http.ResponseWriter
}

// Token returns the bearer token, or the empty string if the
// user is not logged in.
func (s *Session) Token() (token string) {
	token, _ = s.session.Values[tokenKey].(string)
	return token
}

// ID returns the session identifier, which is set together with
// the token on login and is empty otherwise.
func (s *Session) ID() (id string) {
	id, _ = s.session.Values[idKey].(string)
	return id
}

// SetToken stores the token and a new session identifier
// in the response cookie.
func (s *Session) SetToken(token string) (err error) {
	s.session.Values[tokenKey] = token
	s.session.Values[idKey] = uuid.NewString()
	err = s.session.Save(s.request, s.writer)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// ClearToken removes the token and session identifier,
// and expires the cookie.
func (s *Session) ClearToken() (err error) {
	delete(s.session.Values, tokenKey)
	delete(s.session.Values, idKey)
	s.session.Options.MaxAge = -1
	err = s.session.Save(s.request, s.writer)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
