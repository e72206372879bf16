package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/wellness/internal/auth"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	UserID(ctx context.Context, token string) (string, error)
}

// paths reachable without a session; logout validates its own token
var publicPaths = map[string]bool{
	"/":            true,
	"/version":     true,
	"/auth/signup": true,
	"/auth/login":  true,
	"/auth/logout": true,
}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{loginChecker: loginChecker}
}

// AuthCheck resolves the X-WELLNESS-TOKEN session to a user and stores the
// user ID in the request context. Unknown, expired or corrupt sessions get a
// 401, a failing session store a 503.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				return
			}
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			token := r.Header.Get(auth.TokenHeader)
			if token == "" {
				log.Tracef("auth: no token for %s", r.URL.Path)
				span.SetStatus(codes.Error, "missing-token")
				pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
				return
			}

			userID, err := h.loginChecker.UserID(ctx, token)
			switch {
			case errors.Is(err, auth.ErrSessionNotFound), errors.Is(err, auth.ErrSessionExpired), errors.Is(err, auth.ErrMalformedSession):
				log.Tracef("auth: %s for %s", err, r.URL.Path)
				span.SetStatus(codes.Error, "not-logged")
				pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
				return
			case err != nil:
				log.Errorf("auth: session lookup for %s: %s", r.URL.Path, err)
				span.RecordError(err)
				span.SetStatus(codes.Error, "session-lookup")
				pkg.WriteJSONError(w, "session store unavailable", http.StatusServiceUnavailable)
				return
			}

			span.SetAttributes(attribute.String("user.id", userID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
