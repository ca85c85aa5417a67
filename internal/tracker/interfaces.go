package tracker

import (
	"context"
	"net/netip"

	"github.com/qdm12/geotrack/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Backend,Lookuper

type Backend interface {
	Home(ctx context.Context, token string) (record models.GeoRecord, err error)
}

type Lookuper interface {
	Get(ctx context.Context, ip netip.Addr) (record models.GeoRecord, err error)
}

type Logger interface {
	Debug(s string)
}
