package session

import (
	"context"
	"net/http"
)

// Tokens is the token storage of the current request.
type Tokens interface {
	Token() (token string)
	ID() (id string)
	SetToken(token string) (err error)
	ClearToken() (err error)
}

type contextKey struct{}

func WithContext(ctx context.Context, tokens Tokens) context.Context {
	return context.WithValue(ctx, contextKey{}, tokens)
}

// FromContext returns the tokens storage set in the context,
// or nil if none is set.
func FromContext(ctx context.Context) Tokens { //nolint:ireturn
	tokens, _ := ctx.Value(contextKey{}).(Tokens)
	return tokens
}

// Middleware loads the session of each request and
// sets it in the request context.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := s.Load(w, r)
		ctx := WithContext(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
