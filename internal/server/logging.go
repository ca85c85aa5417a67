package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

func (h *handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := h.timeNow()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(wrapped, r)
		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}
		message := fmt.Sprintf("%s %s %d %s (%s)", r.Method, r.URL.Path,
			status, http.StatusText(status), h.timeNow().Sub(start))
		if status >= http.StatusInternalServerError {
			h.logger.Warn(message)
			return
		}
		h.logger.Debug(message)
	})
}
