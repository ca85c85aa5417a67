package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"

	"github.com/qdm12/geotrack/internal/models"
)

const ipinfoBaseURL = "https://ipinfo.io"

func newIpinfo(client *http.Client, baseURL, token string) *ipinfo {
	return &ipinfo{
		client:  client,
		baseURL: baseURL,
		token:   token,
	}
}

type ipinfo struct {
	client  *http.Client
	baseURL string
	token   string
}

func (p *ipinfo) String() string {
	return string(Ipinfo)
}

func (p *ipinfo) get(ctx context.Context, ip netip.Addr) (
	record models.GeoRecord, err error) {
	u := p.baseURL + "/" + ip.String() + "/geo"
	if p.token != "" {
		u += "?" + url.Values{"token": []string{p.token}}.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return record, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := p.client.Do(request)
	if err != nil {
		return record, fmt.Errorf("doing request: %w", err)
	}

	err = checkResponse(response)
	if err != nil {
		return record, err
	}

	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&record)
	_ = response.Body.Close()
	if err != nil {
		return record, fmt.Errorf("decoding JSON response: %w", err)
	}

	if record.IP == "" {
		record.IP = ip.String()
	}

	return record, nil
}
