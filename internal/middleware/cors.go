package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/wellness/internal/auth"

	log "github.com/sirupsen/logrus"
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
	"http://localhost:8081", // expo web
}

// native app builds and tooling send no Origin, only a user agent
var allowedAgentPrefixes = []string{
	"curl/",
	"test-agent",
	"Go-http-client/",
	"okhttp/",
	"Wellness/",
}

var corsAllowHeaders = strings.Join([]string{
	"Accept",
	"Content-Type",
	"Content-Length",
	"Accept-Encoding",
	"Authorization",
	auth.TokenHeader,
}, ", ")

// Cors lets through the default and extra origins plus known client agents.
// Preflight requests are answered here and never reach the router.
func Cors(extraOrigins ...string) func(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{}
	for _, o := range append(defaultAllowedOrigins, extraOrigins...) {
		allowedOrigins[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if !allowedOrigins[origin] && !knownAgent(r.Header.Get("User-Agent")) {
				log.Warnf("cors: rejected %s %s from origin [%s]", r.Method, r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			if origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func knownAgent(userAgent string) bool {
	for _, prefix := range allowedAgentPrefixes {
		if strings.HasPrefix(userAgent, prefix) {
			return true
		}
	}
	return false
}
