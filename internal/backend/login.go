package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qdm12/geotrack/internal/network"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges the credentials for a bearer token.
// A non 2xx response is returned as a *ResponseError.
func (c *Client) Login(ctx context.Context, email, password string) (
	token string, err error) {
	url := c.baseURL + "/api/login"
	body := credentials{Email: email, Password: password}
	request, err := network.BuildHTTPPost(ctx, url, body)
	if err != nil {
		return "", err
	}

	response, err := c.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("doing request: %w", err)
	}

	if !isSuccess(response.StatusCode) {
		return "", makeResponseError(response)
	}

	var data struct {
		Token string `json:"token"`
	}
	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&data)
	_ = response.Body.Close()
	if err != nil {
		return "", fmt.Errorf("decoding JSON response: %w", err)
	}

	if data.Token == "" {
		return "", fmt.Errorf("%w", ErrTokenEmpty)
	}

	return data.Token, nil
}
