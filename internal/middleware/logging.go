package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// slow requests are logged at warn level; Gemini meal scans usually land here
const slowRequestThreshold = 2 * time.Second

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}
			next.ServeHTTP(resp, r)
			took := time.Since(begin)

			entry := log.WithFields(log.Fields{
				"method": r.Method,
				"route":  routeName(r),
				"status": resp.statusCode,
				"took":   took.Round(time.Millisecond).String(),
			})
			if took > slowRequestThreshold {
				entry.Warn("slow request")
				return
			}
			entry.Trace("request")
		})
	}
}
