package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	const timeout = 5 * time.Second
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

var ErrUnhealthy = errors.New("program is unhealthy")

// Query sends an HTTP request to the health server of the
// long running instance of the program listening on address.
func (c *Client) Query(ctx context.Context, address string) (err error) {
	url := "http://" + address
	if strings.HasPrefix(address, ":") {
		url = "http://127.0.0.1" + address
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusOK {
		return nil
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("reading body from response with status %s: %w",
			response.Status, err)
	}

	return fmt.Errorf("%w: %s: %s", ErrUnhealthy, response.Status,
		strings.TrimSpace(string(b)))
}
