package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/qdm12/geotrack/internal/models"
	"github.com/qdm12/geotrack/internal/network"
)

// Home fetches the geolocation of the user authenticated by the token.
func (c *Client) Home(ctx context.Context, token string) (
	record models.GeoRecord, err error) {
	url := c.baseURL + "/api/home"
	request, err := network.BuildHTTPGet(ctx, url)
	if err != nil {
		return record, err
	}
	request.Header.Set("Authorization", "Bearer "+token)

	response, err := c.client.Do(request)
	if err != nil {
		return record, fmt.Errorf("doing request: %w", err)
	}

	if !isSuccess(response.StatusCode) {
		return record, makeResponseError(response)
	}

	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&record)
	_ = response.Body.Close()
	if err != nil {
		return record, fmt.Errorf("decoding JSON response: %w", err)
	}

	return record, nil
}
