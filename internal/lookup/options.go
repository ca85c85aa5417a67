package lookup

type Option func(s *settings) error

func SetProviders(first Provider, providers ...Provider) Option {
	return func(s *settings) (err error) {
		providers = append([]Provider{first}, providers...)
		for _, provider := range providers {
			err = ValidateProvider(provider)
			if err != nil {
				return err
			}
		}
		s.providers = providers
		return nil
	}
}

// SetIpinfoToken sets the optional ipinfo.io access token.
func SetIpinfoToken(token string) Option {
	return func(s *settings) error {
		s.ipinfoToken = token
		return nil
	}
}

// SetIP2LocationKey sets the optional ip2location.io API key.
func SetIP2LocationKey(key string) Option {
	return func(s *settings) error {
		s.ip2locationKey = key
		return nil
	}
}

// SetMaxMindDBPath sets the path to the MaxMind City database file,
// required when the maxmind provider is used.
func SetMaxMindDBPath(path string) Option {
	return func(s *settings) error {
		s.maxmindDBPath = path
		return nil
	}
}
