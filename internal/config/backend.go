package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Backend struct {
	// URL is the base URL of the authentication and
	// own location backend, without trailing slash.
	URL string
}

func (b *Backend) setDefaults() {
	b.URL = gosettings.DefaultComparable(b.URL, "")
}

var (
	ErrBackendURLNotSet         = errors.New("backend URL is not set")
	ErrBackendURLSchemeNotValid = errors.New("backend URL scheme is not valid")
	ErrBackendURLHostEmpty      = errors.New("backend URL host is empty")
)

func (b Backend) Validate() (err error) {
	if b.URL == "" {
		return fmt.Errorf("%w", ErrBackendURLNotSet)
	}

	u, err := url.Parse(b.URL)
	if err != nil {
		return fmt.Errorf("parsing backend URL: %w", err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%w: %q must be http or https",
			ErrBackendURLSchemeNotValid, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%w: in %s", ErrBackendURLHostEmpty, b.URL)
	}

	return nil
}

func (b Backend) String() string {
	return b.toLinesNode().String()
}

func (b Backend) toLinesNode() *gotree.Node {
	node := gotree.New("Backend")
	node.Appendf("URL: %s", b.URL)
	return node
}

func (b *Backend) read(r *reader.Reader, warner Warner) {
	// Retro-compatibility: VITE_API_URL from the former .env file
	viteURL := r.Get("VITE_API_URL", reader.ForceLowercase(false))
	if viteURL != nil {
		handleDeprecated(warner, "VITE_API_URL", "API_URL")
		b.URL = *viteURL
	}

	apiURL := r.Get("API_URL", reader.ForceLowercase(false))
	if apiURL != nil {
		b.URL = *apiURL
	}

	b.URL = strings.TrimSuffix(b.URL, "/")
}
