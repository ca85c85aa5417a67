package login

import "context"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Backend,Notifier

type Backend interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}

type Notifier interface {
	Notify(message string)
}

type Warner interface {
	Warn(s string)
}
