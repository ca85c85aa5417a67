package health

import "context"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Pinger

type Pinger interface {
	Ping(ctx context.Context) (err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
