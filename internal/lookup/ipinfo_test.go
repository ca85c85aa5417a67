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

func Test_ipinfo_get(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		token      string
		statusCode int
		body       string
		path       string
		query      string
		record     models.GeoRecord
		errWrapped error
		errMessage string
	}{
		"success": {
			statusCode: http.StatusOK,
			body: `{"ip":"8.8.8.8","city":"Mountain View","region":"California",` +
				`"country":"US","loc":"37.4056,-122.0775","org":"AS15169 Google LLC",` +
				`"postal":"94043","timezone":"America/Los_Angeles"}`,
			path: "/8.8.8.8/geo",
			record: models.GeoRecord{
				IP:       "8.8.8.8",
				City:     "Mountain View",
				Region:   "California",
				Country:  "US",
				Loc:      "37.4056,-122.0775",
				Org:      "AS15169 Google LLC",
				Timezone: "America/Los_Angeles",
			},
		},
		"with token": {
			token:      "abc",
			statusCode: http.StatusOK,
			body:       `{"ip":"1.1.1.1"}`,
			path:       "/1.1.1.1/geo",
			query:      "token=abc",
			record:     models.GeoRecord{IP: "1.1.1.1"},
		},
		"missing ip in body": {
			statusCode: http.StatusOK,
			body:       `{"city":"Sydney"}`,
			path:       "/1.1.1.1/geo",
			record:     models.GeoRecord{IP: "1.1.1.1", City: "Sydney"},
		},
		"rate limited": {
			statusCode: http.StatusTooManyRequests,
			body:       "slow down",
			path:       "/1.1.1.1/geo",
			errWrapped: ErrTooManyRequests,
			errMessage: "too many requests sent (slow down)",
		},
		"server error": {
			statusCode: http.StatusInternalServerError,
			body:       "oops",
			path:       "/1.1.1.1/geo",
			errWrapped: ErrBadHTTPStatus,
			errMessage: "bad HTTP status received: 500 Internal Server Error (oops)",
		},
		"malformed body": {
			statusCode: http.StatusOK,
			body:       `{`,
			path:       "/1.1.1.1/geo",
			errMessage: "decoding JSON response: unexpected EOF",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, testCase.path, r.URL.Path)
				assert.Equal(t, testCase.query, r.URL.RawQuery)
				assert.Empty(t, r.Header.Get("Authorization"))
				w.WriteHeader(testCase.statusCode)
				_, _ = w.Write([]byte(testCase.body))
			}))
			t.Cleanup(server.Close)

			provider := newIpinfo(server.Client(), server.URL, testCase.token)
			ip := netip.MustParseAddr(testCase.path[1 : len(testCase.path)-len("/geo")])

			record, err := provider.get(context.Background(), ip)

			if testCase.errMessage != "" {
				require.Error(t, err)
				if testCase.errWrapped != nil {
					assert.ErrorIs(t, err, testCase.errWrapped)
				}
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.record, record)
		})
	}
}
