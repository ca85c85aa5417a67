package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strconv"

	"github.com/qdm12/geotrack/internal/models"
)

const ip2locationBaseURL = "https://api.ip2location.io"

func newIP2Location(client *http.Client, baseURL, key string) *ip2Location {
	return &ip2Location{
		client:  client,
		baseURL: baseURL,
		key:     key,
	}
}

type ip2Location struct {
	client  *http.Client
	baseURL string
	key     string
}

func (p *ip2Location) String() string {
	return string(IP2Location)
}

func (p *ip2Location) get(ctx context.Context, ip netip.Addr) (
	record models.GeoRecord, err error) {
	values := url.Values{"ip": []string{ip.String()}}
	if p.key != "" {
		values.Set("key", p.key)
	}
	u := p.baseURL + "/?" + values.Encode()

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
	var data struct {
		IP          string   `json:"ip"`
		CountryCode string   `json:"country_code"`
		RegionName  string   `json:"region_name"`
		CityName    string   `json:"city_name"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		TimeZone    string   `json:"time_zone"`
		ASN         string   `json:"asn"`
		AS          string   `json:"as"`
		// More fields available see https://www.ip2location.io/ip2location-documentation
	}
	err = decoder.Decode(&data)
	_ = response.Body.Close()
	if err != nil {
		return record, fmt.Errorf("decoding JSON response: %w", err)
	}

	record = models.GeoRecord{
		IP:       data.IP,
		City:     data.CityName,
		Region:   data.RegionName,
		Country:  data.CountryCode,
		Timezone: utcOffsetToTimezone(data.TimeZone),
	}
	if record.IP == "" {
		record.IP = ip.String()
	}
	if data.Latitude != nil && data.Longitude != nil {
		record.Loc = formatLoc(*data.Latitude, *data.Longitude)
	}
	switch {
	case data.ASN != "" && data.AS != "":
		record.Org = "AS" + data.ASN + " " + data.AS
	case data.AS != "":
		record.Org = data.AS
	}

	return record, nil
}

// utcOffsetToTimezone converts an offset such as -07:00 to UTC-07:00.
func utcOffsetToTimezone(offset string) string {
	if offset == "" || offset == "-" {
		return ""
	}
	return "UTC" + offset
}

func formatLoc(latitude, longitude float64) string {
	const precision, bits = 4, 64
	return strconv.FormatFloat(latitude, 'f', precision, bits) + "," +
		strconv.FormatFloat(longitude, 'f', precision, bits)
}
