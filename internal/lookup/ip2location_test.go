package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/qdm12/geotrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ip2Location_get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		assert.Equal(t, "8.8.8.8", r.URL.Query().Get("ip"))
		assert.Equal(t, "key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"ip":"8.8.8.8","country_code":"US",` +
			`"country_name":"United States of America","region_name":"California",` +
			`"city_name":"Mountain View","latitude":37.4056,"longitude":-122.0775,` +
			`"zip_code":"94035","time_zone":"-07:00","asn":"15169","as":"Google LLC","is_proxy":false}`))
	}))
	t.Cleanup(server.Close)

	provider := newIP2Location(server.Client(), server.URL, "key")

	record, err := provider.get(context.Background(), netip.MustParseAddr("8.8.8.8"))

	require.NoError(t, err)
	expected := models.GeoRecord{
		IP:       "8.8.8.8",
		City:     "Mountain View",
		Region:   "California",
		Country:  "US",
		Loc:      "37.4056,-122.0775",
		Org:      "AS15169 Google LLC",
		Timezone: "UTC-07:00",
	}
	assert.Equal(t, expected, record)
}

func Test_ip2Location_get_forbidden(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("{\n\"error\": \"quota\"\n}"))
	}))
	t.Cleanup(server.Close)

	provider := newIP2Location(server.Client(), server.URL, "")

	_, err := provider.get(context.Background(), netip.MustParseAddr("8.8.8.8"))

	assert.ErrorIs(t, err, ErrTooManyRequests)
	assert.EqualError(t, err, `too many requests sent ({"error": "quota"})`)
}

func Test_utcOffsetToTimezone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", utcOffsetToTimezone(""))
	assert.Equal(t, "", utcOffsetToTimezone("-"))
	assert.Equal(t, "UTC+08:00", utcOffsetToTimezone("+08:00"))
}
