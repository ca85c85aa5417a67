package server

import (
	"context"
	"net/http"

	"github.com/qdm12/geotrack/internal/login"
	"github.com/qdm12/geotrack/internal/tracker"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . LoginFlow

type LoginFlow interface {
	Submit(ctx context.Context, email, password string) (attempt login.Attempt)
}

type Trackers interface {
	Get(sessionID string) *tracker.Tracker
	Delete(sessionID string)
}

type SessionLoader interface {
	Middleware(next http.Handler) http.Handler
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
