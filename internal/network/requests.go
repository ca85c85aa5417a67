package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// BuildHTTPPost builds a POST request with the body JSON encoded.
func BuildHTTPPost(ctx context.Context, url string, body any) (request *http.Request, err error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding body: %w", err)
	}
	request, err = http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(b))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	return request, nil
}

// BuildHTTPGet builds a GET request accepting JSON.
func BuildHTTPGet(ctx context.Context, url string) (request *http.Request, err error) {
	request, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	return request, nil
}
