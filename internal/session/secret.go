package session

import "github.com/gorilla/securecookie"

// GenerateSecret returns a random secret. Cookies signed with it
// become invalid once the program restarts.
func GenerateSecret() []byte {
	const length = 32
	return securecookie.GenerateRandomKey(length)
}
