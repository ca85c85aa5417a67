package lookup

import (
	"errors"
	"fmt"
)

type settings struct {
	providers      []Provider
	ipinfoToken    string
	ip2locationKey string
	maxmindDBPath  string
}

func (s *settings) setDefaults() {
	if len(s.providers) == 0 {
		s.providers = []Provider{Ipinfo}
	}
}

var ErrMaxMindDBPathNotSet = errors.New("MaxMind database path is not set")

func (s settings) validate() (err error) {
	for _, provider := range s.providers {
		if provider == MaxMind && s.maxmindDBPath == "" {
			return fmt.Errorf("%w", ErrMaxMindDBPathNotSet)
		}
	}
	return nil
}
