package shoutrrr

import (
	"fmt"

	"github.com/containrrr/shoutrrr"
	"github.com/qdm12/gosettings"
)

type Settings struct {
	// Addresses are the shoutrrr service URLs to notify.
	// No address disables notifications.
	Addresses []string
	// DefaultTitle is set as the title of every address
	// not already setting a title query parameter.
	DefaultTitle string
	Logger       Erroer
}

type Erroer interface {
	Error(s string)
}

func (s *Settings) setDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	s.DefaultTitle = gosettings.DefaultComparable(s.DefaultTitle, "GeoTrack")
	if s.Logger == nil {
		s.Logger = &noopLogger{}
	}
}

func (s Settings) validate() (err error) {
	_, err = shoutrrr.CreateSender(s.Addresses...)
	if err != nil {
		return fmt.Errorf("creating sender: %w", err)
	}
	return nil
}

type noopLogger struct{}

func (l *noopLogger) Error(_ string) {}
