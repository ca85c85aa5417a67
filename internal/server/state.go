package server

import (
	"encoding/json"
	"net/http"

	"github.com/qdm12/geotrack/internal/models"
)

func (h *handlers) getState(w http.ResponseWriter, r *http.Request) {
	sessionTracker, token := h.sessionTracker(r)
	err := sessionTracker.EnsureLoaded(r.Context(), token)
	if err != nil {
		h.logger.Debug(err.Error())
	}
	state := sessionTracker.State()

	stateJSON := models.StateJSON{
		Geo:      state.Geo,
		Error:    state.Error,
		History:  state.History,
		Selected: state.Selected,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	err = json.NewEncoder(w).Encode(stateJSON)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed encoding JSON: "+err.Error())
		return
	}
}
