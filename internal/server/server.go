package server

import (
	"time"

	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address  string
	RootURL  string
	Sessions SessionLoader
	Login    LoginFlow
	Trackers Trackers
	Logger   Logger
}

func New(settings Settings) (server *httpserver.Server, err error) {
	handler := newHandler(settings.RootURL, settings.Sessions,
		settings.Login, settings.Trackers, settings.Logger, time.Now)
	name := "http"
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
