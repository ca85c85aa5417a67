package lookup

import (
	"context"
	"fmt"
	"net"
	"net/netip"

	"github.com/oschwald/geoip2-golang"
	"github.com/qdm12/geotrack/internal/models"
)

func newMaxMind(path string) (*maxMind, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &maxMind{
		reader: reader,
	}, nil
}

type maxMind struct {
	reader *geoip2.Reader
}

func (p *maxMind) String() string {
	return string(MaxMind)
}

func (p *maxMind) Close() error {
	return p.reader.Close()
}

func (p *maxMind) get(ctx context.Context, ip netip.Addr) (
	record models.GeoRecord, err error) {
	if err := ctx.Err(); err != nil {
		return record, err
	}

	city, err := p.reader.City(net.IP(ip.AsSlice()))
	if err != nil {
		return record, fmt.Errorf("reading database: %w", err)
	}

	if city.Country.IsoCode == "" && city.Location.Latitude == 0 &&
		city.Location.Longitude == 0 {
		return record, fmt.Errorf("%w: %s", ErrIPNotFound, ip)
	}

	const language = "en"
	record = models.GeoRecord{
		IP:       ip.String(),
		City:     city.City.Names[language],
		Country:  city.Country.IsoCode,
		Loc:      formatLoc(city.Location.Latitude, city.Location.Longitude),
		Timezone: city.Location.TimeZone,
	}
	if len(city.Subdivisions) > 0 {
		record.Region = city.Subdivisions[0].Names[language]
	}

	return record, nil
}
