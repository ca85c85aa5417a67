// Package backend is the client for the application backend, which
// authenticates users and resolves the location of the logged in user.
package backend

import (
	"net/http"
	"strings"
)

type Client struct {
	client  *http.Client
	baseURL string
}

// New creates a backend client for the API at baseURL,
// for example https://api.example.com.
func New(client *http.Client, baseURL string) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (c *Client) String() string {
	return "backend " + c.baseURL
}
