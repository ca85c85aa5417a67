package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/qdm12/geotrack/internal/models"
)

type Provider string

const (
	Ipinfo      Provider = "ipinfo"
	IP2Location Provider = "ip2location"
	MaxMind     Provider = "maxmind"
)

func ListProviders() []Provider {
	return []Provider{
		Ipinfo,
		IP2Location,
		MaxMind,
	}
}

var ErrUnknownProvider = errors.New("unknown provider")

func ValidateProvider(provider Provider) error {
	for _, possible := range ListProviders() {
		if provider == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}

type provider interface {
	fmt.Stringer
	get(ctx context.Context, ip netip.Addr) (record models.GeoRecord, err error)
}

//nolint:ireturn
func newProvider(providerName Provider, client *http.Client,
	settings settings) (provider, error) {
	switch providerName {
	case Ipinfo:
		return newIpinfo(client, ipinfoBaseURL, settings.ipinfoToken), nil
	case IP2Location:
		return newIP2Location(client, ip2locationBaseURL, settings.ip2locationKey), nil
	case MaxMind:
		return newMaxMind(settings.maxmindDBPath)
	default:
		panic(fmt.Sprintf("provider %s not implemented", providerName))
	}
}
