package tracker

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/geotrack/internal/constants"
	"github.com/qdm12/geotrack/internal/models"
	"github.com/qdm12/geotrack/internal/tracker/mock_tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string) {}

func geo(ip, city string) models.GeoRecord {
	return models.GeoRecord{IP: ip, City: city, Country: "US", Loc: "37.4056,-122.0775"}
}

func ips(entries []models.HistoryEntry) (result []string) {
	result = make([]string, len(entries))
	for i, entry := range entries {
		result[i] = entry.IP
	}
	return result
}

func Test_Tracker_EnsureLoaded(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	own := geo("203.0.113.5", "Home")
	backend := mock_tracker.NewMockBackend(ctrl)
	backend.EXPECT().Home(ctx, "abc").Return(own, nil)

	tracker := New(backend, nil, noopLogger{})

	err := tracker.EnsureLoaded(ctx, "abc")
	require.NoError(t, err)
	err = tracker.EnsureLoaded(ctx, "abc")
	require.NoError(t, err)

	state := tracker.State()
	require.NotNil(t, state.Geo)
	assert.Equal(t, own, *state.Geo)
	assert.Empty(t, state.Error)
	assert.Empty(t, state.History)
}

func Test_Tracker_LoadOwnLocation_failure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	own := geo("203.0.113.5", "Home")
	errTest := errors.New("test error")
	backend := mock_tracker.NewMockBackend(ctrl)
	gomock.InOrder(
		backend.EXPECT().Home(ctx, "abc").Return(own, nil),
		backend.EXPECT().Home(ctx, "abc").Return(models.GeoRecord{}, errTest),
	)

	tracker := New(backend, nil, noopLogger{})

	err := tracker.LoadOwnLocation(ctx, "abc")
	require.NoError(t, err)
	err = tracker.LoadOwnLocation(ctx, "abc")
	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "fetching own location: test error")

	state := tracker.State()
	require.NotNil(t, state.Geo)
	assert.Equal(t, own, *state.Geo)
	assert.Equal(t, constants.MessageFetchFailed, state.Error)
}

func Test_Tracker_Search(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		ip           string
		lookupRecord models.GeoRecord
		lookupErr    error
		lookupCalled bool
		errWrapped   error
		errMessage   string
		stateError   string
		stateGeo     *models.GeoRecord
		historyIPs   []string
	}{
		"invalid_ip": {
			ip:         "999.1.1.1",
			errWrapped: ErrIPNotValid,
			errMessage: `IP address is not valid: "999.1.1.1"`,
			stateError: constants.MessageInvalidIP,
			historyIPs: []string{},
		},
		"empty_ip": {
			ip:         "",
			errWrapped: ErrIPNotValid,
			errMessage: `IP address is not valid: ""`,
			stateError: constants.MessageInvalidIP,
			historyIPs: []string{},
		},
		"lookup_error": {
			ip:           "8.8.8.8",
			lookupErr:    errTest,
			lookupCalled: true,
			errWrapped:   errTest,
			errMessage:   "looking up IP address: test error",
			stateError:   constants.MessageFetchFailed,
			historyIPs:   []string{},
		},
		"success": {
			ip:           "8.8.8.8",
			lookupRecord: geo("8.8.8.8", "Mountain View"),
			lookupCalled: true,
			stateGeo:     ptrTo(geo("8.8.8.8", "Mountain View")),
			historyIPs:   []string{"8.8.8.8"},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			lookup := mock_tracker.NewMockLookuper(ctrl)
			if testCase.lookupCalled {
				lookup.EXPECT().Get(ctx, netip.MustParseAddr(testCase.ip)).
					Return(testCase.lookupRecord, testCase.lookupErr)
			}

			tracker := New(nil, lookup, noopLogger{})

			err := tracker.Search(ctx, testCase.ip)

			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}

			state := tracker.State()
			assert.Equal(t, testCase.stateError, state.Error)
			assert.Equal(t, testCase.stateGeo, state.Geo)
			assert.Equal(t, testCase.historyIPs, ips(state.History))
		})
	}
}

func ptrTo[T any](value T) *T { return &value }

func Test_Tracker_Search_historyOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	lookup := mock_tracker.NewMockLookuper(ctrl)
	gomock.InOrder(
		lookup.EXPECT().Get(ctx, netip.MustParseAddr("8.8.8.8")).
			Return(geo("8.8.8.8", "Mountain View"), nil),
		lookup.EXPECT().Get(ctx, netip.MustParseAddr("1.1.1.1")).
			Return(geo("1.1.1.1", "Sydney"), nil),
		lookup.EXPECT().Get(ctx, netip.MustParseAddr("8.8.8.8")).
			Return(geo("8.8.8.8", "Mountain View"), nil),
	)

	tracker := New(nil, lookup, noopLogger{})

	for _, ip := range []string{"8.8.8.8", "1.1.1.1", "8.8.8.8"} {
		err := tracker.Search(ctx, ip)
		require.NoError(t, err)
	}

	state := tracker.State()
	assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, ips(state.History))
	require.NotNil(t, state.Geo)
	assert.Equal(t, "8.8.8.8", state.Geo.IP)
}

func Test_Tracker_Search_staleResponse(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	lookup := mock_tracker.NewMockLookuper(ctrl)
	tracker := New(nil, lookup, noopLogger{})

	lookup.EXPECT().Get(ctx, netip.MustParseAddr("8.8.8.8")).
		DoAndReturn(func(ctx context.Context, _ netip.Addr) (models.GeoRecord, error) {
			// A newer search completes before this one does.
			err := tracker.Search(ctx, "1.1.1.1")
			require.NoError(t, err)
			return geo("8.8.8.8", "Mountain View"), nil
		})
	lookup.EXPECT().Get(ctx, netip.MustParseAddr("1.1.1.1")).
		Return(geo("1.1.1.1", "Sydney"), nil)

	err := tracker.Search(ctx, "8.8.8.8")
	assert.ErrorIs(t, err, ErrStaleResponse)

	state := tracker.State()
	require.NotNil(t, state.Geo)
	assert.Equal(t, "1.1.1.1", state.Geo.IP)
	assert.Equal(t, []string{"1.1.1.1"}, ips(state.History))
}

func Test_Tracker_Search_keepsGeoOnError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	lookup := mock_tracker.NewMockLookuper(ctrl)
	lookup.EXPECT().Get(ctx, netip.MustParseAddr("8.8.8.8")).
		Return(geo("8.8.8.8", "Mountain View"), nil)

	tracker := New(nil, lookup, noopLogger{})

	err := tracker.Search(ctx, "8.8.8.8")
	require.NoError(t, err)
	err = tracker.Search(ctx, "1.1.1")
	require.ErrorIs(t, err, ErrIPNotValid)

	state := tracker.State()
	require.NotNil(t, state.Geo)
	assert.Equal(t, "8.8.8.8", state.Geo.IP)
	assert.Equal(t, constants.MessageInvalidIP, state.Error)
}

func Test_Tracker_Clear(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	own := geo("203.0.113.5", "Home")
	backend := mock_tracker.NewMockBackend(ctrl)
	backend.EXPECT().Home(ctx, "abc").Return(own, nil)
	lookup := mock_tracker.NewMockLookuper(ctrl)
	lookup.EXPECT().Get(ctx, netip.MustParseAddr("8.8.8.8")).
		Return(geo("8.8.8.8", "Mountain View"), nil)

	tracker := New(backend, lookup, noopLogger{})

	err := tracker.Search(ctx, "8.8.8.8")
	require.NoError(t, err)
	_ = tracker.Search(ctx, "bad")

	err = tracker.Clear(ctx, "abc")
	require.NoError(t, err)

	state := tracker.State()
	require.NotNil(t, state.Geo)
	assert.Equal(t, own, *state.Geo)
	assert.Empty(t, state.Error)
	assert.Equal(t, []string{"8.8.8.8"}, ips(state.History))
}

func Test_Tracker_Replay(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	lookup := mock_tracker.NewMockLookuper(ctrl)
	lookup.EXPECT().Get(ctx, netip.MustParseAddr("8.8.8.8")).
		Return(geo("8.8.8.8", "Mountain View"), nil)
	lookup.EXPECT().Get(ctx, netip.MustParseAddr("1.1.1.1")).
		Return(geo("1.1.1.1", "Sydney"), nil)

	tracker := New(nil, lookup, noopLogger{})
	require.NoError(t, tracker.Search(ctx, "8.8.8.8"))
	require.NoError(t, tracker.Search(ctx, "1.1.1.1"))

	err := tracker.Replay("8.8.8.8")
	require.NoError(t, err)

	state := tracker.State()
	require.NotNil(t, state.Geo)
	assert.Equal(t, geo("8.8.8.8", "Mountain View"), *state.Geo)
	assert.Equal(t, []string{"1.1.1.1", "8.8.8.8"}, ips(state.History))

	err = tracker.Replay("9.9.9.9")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	assert.EqualError(t, err, "history entry not found: 9.9.9.9")
}

func Test_Tracker_DeleteSelected(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	lookup := mock_tracker.NewMockLookuper(ctrl)
	for _, ip := range []string{"8.8.8.8", "1.1.1.1", "9.9.9.9"} {
		lookup.EXPECT().Get(ctx, netip.MustParseAddr(ip)).
			Return(geo(ip, ""), nil)
	}

	tracker := New(nil, lookup, noopLogger{})
	for _, ip := range []string{"8.8.8.8", "1.1.1.1", "9.9.9.9"} {
		require.NoError(t, tracker.Search(ctx, ip))
	}

	tracker.ToggleSelect("8.8.8.8")
	tracker.ToggleSelect("9.9.9.9")
	tracker.ToggleSelect("1.1.1.1")
	tracker.ToggleSelect("1.1.1.1")
	assert.Equal(t, []string{"9.9.9.9", "8.8.8.8"}, tracker.State().Selected)

	deleted := tracker.DeleteSelected()
	assert.Equal(t, 2, deleted)

	state := tracker.State()
	assert.Equal(t, []string{"1.1.1.1"}, ips(state.History))
	assert.Empty(t, state.Selected)
	require.NotNil(t, state.Geo)
	assert.Equal(t, "9.9.9.9", state.Geo.IP)
}
