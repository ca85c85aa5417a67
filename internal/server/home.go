package server

import (
	"net/http"
	"strconv"

	"github.com/qdm12/geotrack/internal/mapview"
	"github.com/qdm12/geotrack/internal/models"
	"github.com/qdm12/geotrack/internal/session"
	"github.com/qdm12/geotrack/internal/tracker"
)

// sessionTracker returns the tracker of the session and its token.
func (h *handlers) sessionTracker(r *http.Request) (
	sessionTracker *tracker.Tracker, token string) {
	tokens := session.FromContext(r.Context())
	return h.trackers.Get(tokens.ID()), tokens.Token()
}

func (h *handlers) getHome(w http.ResponseWriter, r *http.Request) {
	sessionTracker, token := h.sessionTracker(r)
	err := sessionTracker.EnsureLoaded(r.Context(), token)
	if err != nil {
		h.logger.Debug(err.Error())
	}

	h.render(w, "home.html", makeHomePage(h.rootURL, sessionTracker.State()))
}

func makeHomePage(rootURL string, state tracker.State) (page models.HomePage) {
	page = models.HomePage{
		RootURL:  rootURL,
		Geo:      state.Geo,
		Error:    state.Error,
		History:  make([]models.HistoryRow, len(state.History)),
		Selected: len(state.Selected),
	}

	selected := make(map[string]struct{}, len(state.Selected))
	for _, ip := range state.Selected {
		selected[ip] = struct{}{}
	}

	for i, entry := range state.History {
		_, isSelected := selected[entry.IP]
		page.History[i] = models.HistoryRow{
			IP:       entry.IP,
			Selected: isSelected,
			Active:   state.Geo != nil && state.Geo.IP == entry.IP,
		}
	}

	mapData, ok := mapview.New(state.Geo)
	if ok {
		page.Map = &mapData
	}

	return page
}

func (h *handlers) postSearch(w http.ResponseWriter, r *http.Request) {
	sessionTracker, _ := h.sessionTracker(r)
	err := sessionTracker.Search(r.Context(), r.PostFormValue("ip"))
	if err != nil {
		h.logger.Debug(err.Error())
	}
	h.redirectHome(w, r)
}

func (h *handlers) postClear(w http.ResponseWriter, r *http.Request) {
	sessionTracker, token := h.sessionTracker(r)
	err := sessionTracker.Clear(r.Context(), token)
	if err != nil {
		h.logger.Debug(err.Error())
	}
	h.redirectHome(w, r)
}

func (h *handlers) postSelect(w http.ResponseWriter, r *http.Request) {
	sessionTracker, _ := h.sessionTracker(r)
	sessionTracker.ToggleSelect(r.PostFormValue("ip"))
	h.redirectHome(w, r)
}

func (h *handlers) postDelete(w http.ResponseWriter, r *http.Request) {
	sessionTracker, _ := h.sessionTracker(r)
	deleted := sessionTracker.DeleteSelected()
	h.logger.Debug("deleted " + strconv.Itoa(deleted) + " history entries")
	h.redirectHome(w, r)
}

func (h *handlers) postShow(w http.ResponseWriter, r *http.Request) {
	sessionTracker, _ := h.sessionTracker(r)
	err := sessionTracker.Replay(r.PostFormValue("ip"))
	if err != nil {
		h.logger.Debug(err.Error())
	}
	h.redirectHome(w, r)
}
