package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/wellness/internal/telemetry/metrics"
	"github.com/2beens/wellness/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a JSON 500 and counts it.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method": req.Method,
					"route":  routeName(req),
				}).Errorf("panic serving %s: %v\n%s", req.URL.Path, rec, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
