package lookup

import "errors"

var (
	ErrTooManyRequests = errors.New("too many requests sent")
	ErrBadHTTPStatus   = errors.New("bad HTTP status received")
	ErrIPNotFound      = errors.New("IP address not found")
	ErrIPNotValid      = errors.New("IP address is not valid")
)
