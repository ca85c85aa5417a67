// Package lookup resolves the geolocation of an IP address using
// public IP information services or a local MaxMind database.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/netip"

	"github.com/qdm12/geotrack/internal/models"
)

type Lookup struct {
	rand      *rand.Rand
	providers []provider
}

func New(client *http.Client, options ...Option) (lookup *Lookup, err error) {
	var settings settings
	for _, option := range options {
		err = option(&settings)
		if err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	settings.setDefaults()

	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	providers := make([]provider, len(settings.providers))
	for i := range settings.providers {
		providers[i], err = newProvider(settings.providers[i], client, settings)
		if err != nil {
			_ = closeProviders(providers[:i])
			return nil, fmt.Errorf("creating provider %s: %w", settings.providers[i], err)
		}
	}

	// fast & thread safe random generator
	generator := rand.New(new(mapHashSource)) //nolint:gosec

	return &Lookup{
		rand:      generator,
		providers: providers,
	}, nil
}

func (l *Lookup) pickProvider() provider { //nolint:ireturn
	index := 0
	if L := len(l.providers); L > 1 {
		index = l.rand.Intn(L)
	}
	return l.providers[index]
}

// Get finds geolocation information for the given IP address using
// one of the configured providers picked at random.
func (l *Lookup) Get(ctx context.Context, ip netip.Addr) (record models.GeoRecord, err error) {
	if !ip.IsValid() {
		return record, fmt.Errorf("%w", ErrIPNotValid)
	}
	provider := l.pickProvider()
	record, err = provider.get(ctx, ip)
	if err != nil {
		return record, fmt.Errorf("%s: %w", provider, err)
	}
	return record, nil
}

// Close releases resources held by providers, such as
// an opened MaxMind database.
func (l *Lookup) Close() (err error) {
	return closeProviders(l.providers)
}

func closeProviders(providers []provider) (err error) {
	var errs []error
	for _, provider := range providers {
		closer, ok := provider.(io.Closer)
		if !ok {
			continue
		}
		closeErr := closer.Close()
		if closeErr != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", provider, closeErr))
		}
	}
	return errors.Join(errs...)
}
