package server

import (
	"net/http"

	"github.com/qdm12/geotrack/internal/login"
	"github.com/qdm12/geotrack/internal/models"
	"github.com/qdm12/geotrack/internal/session"
)

func (h *handlers) getLogin(w http.ResponseWriter, _ *http.Request) {
	h.render(w, "login.html", models.LoginPage{RootURL: h.rootURL})
}

func (h *handlers) postLogin(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		httpError(w, http.StatusBadRequest, "parsing form: "+err.Error())
		return
	}

	email := r.PostForm.Get("email")
	password := r.PostForm.Get("password")
	attempt := h.login.Submit(r.Context(), email, password)
	if attempt.State != login.StateAuthenticated {
		h.render(w, "login.html", models.LoginPage{
			RootURL: h.rootURL,
			Email:   attempt.Email,
			Error:   attempt.Message,
		})
		return
	}

	tokens := session.FromContext(r.Context())
	err = tokens.SetToken(attempt.Token)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}

	h.logger.Info("user " + email + " logged in")
	h.redirectHome(w, r)
}

func (h *handlers) postLogout(w http.ResponseWriter, r *http.Request) {
	tokens := session.FromContext(r.Context())
	h.trackers.Delete(tokens.ID())
	err := tokens.ClearToken()
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}
	http.Redirect(w, r, h.rootURL+"/", http.StatusSeeOther)
}
