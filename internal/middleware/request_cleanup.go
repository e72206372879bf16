package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes bounds how much of an unread body we consume to keep the
// connection reusable. Anything bigger (an abandoned photo upload) is cheaper
// to drop together with the connection.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards what is left of the request body, closes it
// and removes temp files left behind by multipart photo uploads.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if r.MultipartForm != nil {
				if err := r.MultipartForm.RemoveAll(); err != nil {
					log.Warnf("remove multipart temp files for %s: %s", r.URL.Path, err)
				}
			}
			if r.Body == nil {
				return
			}
			if _, err := io.CopyN(io.Discard, r.Body, maxDrainBytes); err == nil {
				log.Debugf("request body of %s not fully drained", r.URL.Path)
			}
			_ = r.Body.Close()
		})
	}
}
