package backend

import (
	"context"
	"fmt"
	"net/http"
)

// Ping checks the backend answers HTTP requests at its base URL.
// Any HTTP response, whatever its status code, is considered healthy.
func (c *Client) Ping(ctx context.Context) (err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}
	_ = response.Body.Close()
	return nil
}
