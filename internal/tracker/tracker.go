// Package tracker implements the home screen state: the displayed
// geolocation record, the error message and the search history.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"sync"

	"github.com/qdm12/geotrack/internal/constants"
	"github.com/qdm12/geotrack/internal/history"
	"github.com/qdm12/geotrack/internal/models"
	"github.com/qdm12/geotrack/internal/regex"
)

var (
	ErrIPNotValid    = errors.New("IP address is not valid")
	ErrStaleResponse = errors.New("response is stale")
	ErrEntryNotFound = errors.New("history entry not found")
)

// Tracker holds the home screen state of a single session.
// Each user action displaying a record is tagged with a monotonic
// request id, and its outcome is only applied if no other such
// action started in the meantime.
type Tracker struct {
	backend Backend
	lookup  Lookuper
	matcher *regex.Matcher
	logger  Logger
	ledger  *history.Ledger

	mutex         sync.Mutex
	current       *models.GeoRecord
	errMessage    string
	loaded        bool
	lastRequestID uint64
}

func New(backend Backend, lookup Lookuper, logger Logger) *Tracker {
	return &Tracker{
		backend: backend,
		lookup:  lookup,
		matcher: regex.NewMatcher(),
		logger:  logger,
		ledger:  history.New(),
	}
}

// State is a snapshot of the tracker state.
type State struct {
	Geo      *models.GeoRecord
	Error    string
	History  []models.HistoryEntry
	Selected []string
}

func (t *Tracker) State() (state State) {
	t.mutex.Lock()
	if t.current != nil {
		current := *t.current
		state.Geo = &current
	}
	state.Error = t.errMessage
	t.mutex.Unlock()

	state.History = t.ledger.Entries()
	state.Selected = t.ledger.Selected()
	return state
}

func (t *Tracker) begin() (requestID uint64) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.lastRequestID++
	return t.lastRequestID
}

// apply runs set if requestID is still the latest request id,
// and returns ErrStaleResponse otherwise.
func (t *Tracker) apply(requestID uint64, set func()) (err error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if requestID != t.lastRequestID {
		return fmt.Errorf("%w: request %d superseded by request %d",
			ErrStaleResponse, requestID, t.lastRequestID)
	}
	set()
	return nil
}

// EnsureLoaded loads the location of the logged in user the first
// time it is called.
func (t *Tracker) EnsureLoaded(ctx context.Context, token string) (err error) {
	t.mutex.Lock()
	loaded := t.loaded
	t.loaded = true
	t.mutex.Unlock()
	if loaded {
		return nil
	}
	return t.LoadOwnLocation(ctx, token)
}

// LoadOwnLocation fetches the location of the logged in user from the
// backend and displays it. It is never added to the history.
// On failure, the generic fetch error message is set and the
// displayed record is left untouched.
func (t *Tracker) LoadOwnLocation(ctx context.Context, token string) (err error) {
	requestID := t.begin()

	record, err := t.backend.Home(ctx, token)
	if err != nil {
		t.logger.Debug("fetching own location: " + err.Error())
		applyErr := t.apply(requestID, func() {
			t.errMessage = constants.MessageFetchFailed
		})
		if applyErr != nil {
			return applyErr
		}
		return fmt.Errorf("fetching own location: %w", err)
	}

	return t.apply(requestID, func() {
		t.current = &record
		t.errMessage = ""
	})
}

// Search looks up the geolocation of the ip given. The ip must be a
// dotted-quad IPv4 address, otherwise the invalid IP message is set
// and no request is sent. On success, the record is displayed and
// added to the history.
func (t *Tracker) Search(ctx context.Context, ip string) (err error) {
	requestID := t.begin()

	if !t.matcher.IPv4(ip) {
		_ = t.apply(requestID, func() {
			t.errMessage = constants.MessageInvalidIP
		})
		return fmt.Errorf("%w: %q", ErrIPNotValid, ip)
	}

	record, err := t.lookupIP(ctx, ip)
	if err != nil {
		t.logger.Debug("looking up " + ip + ": " + err.Error())
		applyErr := t.apply(requestID, func() {
			t.errMessage = constants.MessageFetchFailed
		})
		if applyErr != nil {
			return applyErr
		}
		return err
	}
	t.logger.Debug("found " + record.String())

	return t.apply(requestID, func() {
		t.current = &record
		t.errMessage = ""
		t.ledger.Add(models.HistoryEntry{IP: ip, Geo: record})
	})
}

func (t *Tracker) lookupIP(ctx context.Context, ip string) (
	record models.GeoRecord, err error) {
	address, err := netip.ParseAddr(ip)
	if err != nil {
		return record, fmt.Errorf("parsing IP address: %w", err)
	}

	record, err = t.lookup.Get(ctx, address)
	if err != nil {
		return record, fmt.Errorf("looking up IP address: %w", err)
	}
	return record, nil
}

// Clear clears the error message and reloads the location
// of the logged in user.
func (t *Tracker) Clear(ctx context.Context, token string) (err error) {
	t.mutex.Lock()
	t.errMessage = ""
	t.mutex.Unlock()
	return t.LoadOwnLocation(ctx, token)
}

// Replay displays the record stored in the history for the ip,
// without sending any request.
func (t *Tracker) Replay(ip string) (err error) {
	requestID := t.begin()

	entry, ok := t.ledger.Get(ip)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, ip)
	}

	return t.apply(requestID, func() {
		record := entry.Geo
		t.current = &record
	})
}

// ToggleSelect toggles the selection of the history entry for the ip.
func (t *Tracker) ToggleSelect(ip string) {
	t.ledger.Toggle(ip)
}

// DeleteSelected removes the selected history entries and clears
// the selection.
func (t *Tracker) DeleteSelected() (deleted int) {
	return t.ledger.DeleteSelected()
}
