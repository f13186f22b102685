package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/hlog"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/api/respond"
)

var panicsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mango",
	Subsystem: "http",
	Name:      "panics_total",
	Help:      "Handler panics recovered by the ad service, by method.",
}, []string{"method"})

// Middleware turns a panicking ad handler into a 500 Failure body. Aborted
// handlers keep propagating so net/http can drop the connection.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			panicsTotal.WithLabelValues(r.Method).Inc()
			hlog.FromRequest(r).Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("ad handler panicked")
			respond.Fail(w, r, http.StatusInternalServerError, "ad service hit an unexpected error")
		}()
		next.ServeHTTP(w, r)
	})
}
