package regex

import "regexp"

type Matcher struct {
	ipv4, email *regexp.Regexp
}

var (
	ipv4Octet = `(25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)`
	ipv4      = regexp.MustCompile(`^` + ipv4Octet + `(\.` + ipv4Octet + `){3}$`)
	email     = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
)

func NewMatcher() *Matcher {
	return &Matcher{
		ipv4:  ipv4,
		email: email,
	}
}

// IPv4 returns true if s is a dotted-quad IPv4 address with
// every octet between 0 and 255 and no leading zero.
func (m *Matcher) IPv4(s string) bool  { return m.ipv4.MatchString(s) }
func (m *Matcher) Email(s string) bool { return m.email.MatchString(s) }
