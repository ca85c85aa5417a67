package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/qdm12/geotrack/internal/lookup"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Lookup struct {
	Providers      []string
	IpinfoToken    *string
	IP2LocationKey *string
	MaxMindDBPath  *string
}

func (l *Lookup) setDefaults() {
	l.Providers = gosettings.DefaultSlice(l.Providers, []string{string(lookup.Ipinfo)})
	l.IpinfoToken = gosettings.DefaultPointer(l.IpinfoToken, "")
	l.IP2LocationKey = gosettings.DefaultPointer(l.IP2LocationKey, "")
	l.MaxMindDBPath = gosettings.DefaultPointer(l.MaxMindDBPath, "")
}

var ErrMaxMindDBPathNotSet = errors.New("MaxMind database path is not set")

func (l Lookup) Validate() (err error) {
	for _, provider := range l.Providers {
		err = lookup.ValidateProvider(lookup.Provider(provider))
		if err != nil {
			return err
		}

		if lookup.Provider(provider) != lookup.MaxMind {
			continue
		}

		if *l.MaxMindDBPath == "" {
			return fmt.Errorf("%w: required by the %s provider",
				ErrMaxMindDBPathNotSet, provider)
		}
		_, err = os.Stat(*l.MaxMindDBPath)
		if err != nil {
			return fmt.Errorf("MaxMind database file: %w", err)
		}
	}
	return nil
}

func (l Lookup) String() string {
	return l.toLinesNode().String()
}

func (l Lookup) toLinesNode() *gotree.Node {
	node := gotree.New("IP lookup")
	providersNode := node.Appendf("Providers")
	for _, provider := range l.Providers {
		providersNode.Appendf(provider)
	}
	if *l.IpinfoToken != "" {
		node.Appendf("Ipinfo token: [set]")
	}
	if *l.IP2LocationKey != "" {
		node.Appendf("IP2Location key: [set]")
	}
	if *l.MaxMindDBPath != "" {
		node.Appendf("MaxMind database path: %s", *l.MaxMindDBPath)
	}
	return node
}

func (l Lookup) ToOptions() (options []lookup.Option) {
	providers := make([]lookup.Provider, len(l.Providers))
	for i, provider := range l.Providers {
		providers[i] = lookup.Provider(provider)
	}
	return []lookup.Option{
		lookup.SetProviders(providers[0], providers[1:]...),
		lookup.SetIpinfoToken(*l.IpinfoToken),
		lookup.SetIP2LocationKey(*l.IP2LocationKey),
		lookup.SetMaxMindDBPath(*l.MaxMindDBPath),
	}
}

func (l *Lookup) read(r *reader.Reader) {
	l.Providers = r.CSV("LOOKUP_PROVIDERS")
	l.IpinfoToken = r.Get("IPINFO_TOKEN", reader.ForceLowercase(false))
	l.IP2LocationKey = r.Get("IP2LOCATION_KEY", reader.ForceLowercase(false))
	l.MaxMindDBPath = r.Get("MAXMIND_DB_PATH", reader.ForceLowercase(false))
}
