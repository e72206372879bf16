package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/wellness/internal/telemetry/metrics"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

// TokenHeader carries the session token of every authenticated request.
const TokenHeader = "X-WELLNESS-TOKEN"

type authService interface {
	Signup(ctx context.Context, creds Credentials) (*User, error)
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (*LoginSession, error)
	Logout(ctx context.Context, token string) (bool, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

type Handler struct {
	authService    authService
	metricsManager *metrics.Manager
}

func NewHandler(authService authService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		authService:    authService,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the auth endpoints. Signup and login go through rateLimit.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, rateLimit mux.MiddlewareFunc) {
	limited := mainRouter.PathPrefix("/auth").Subrouter()
	limited.HandleFunc("/signup", handler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	limited.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	if rateLimit != nil {
		limited.Use(rateLimit)
	}

	mainRouter.HandleFunc("/auth/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	mainRouter.HandleFunc("/auth/password", handler.HandleChangePassword).Methods("POST", "OPTIONS").Name("change-password")
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var creds Credentials
	if r.Header.Get("Content-Type") != "application/json" {
		return creds, errors.New("invalid content type")
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return creds, err
	}
	if creds.Email == "" || creds.Password == "" {
		return creds, errors.New("email or password empty")
	}
	return creds, nil
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signup")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("signup, bad request: %s", err)
		pkg.WriteJSONError(w, "error, invalid signup request", http.StatusBadRequest)
		return
	}

	user, err := handler.authService.Signup(ctx, creds)
	switch {
	case errors.Is(err, ErrEmailTaken):
		pkg.WriteJSONError(w, "error, email already registered", http.StatusConflict)
		return
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrPasswordTooShort), errors.Is(err, ErrPasswordTooLong):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("signup failed: %s", err)
		pkg.WriteJSONError(w, "error, signup failed", http.StatusInternalServerError)
		return
	}
	span.SetAttributes(attribute.String("user.id", user.ID))
	handler.metricsManager.CounterSignups.Inc()

	session, err := handler.authService.Login(ctx, creds, time.Now())
	if err != nil {
		log.Errorf("login after signup [%s] failed: %s", user.ID, err)
		pkg.WriteJSONError(w, "error, account created but login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("login, bad request: %s", err)
		pkg.WriteJSONError(w, "error, invalid login request", http.StatusBadRequest)
		return
	}

	session, err := handler.authService.Login(ctx, creds, time.Now())
	if errors.Is(err, ErrWrongCredentials) {
		log.Tracef("failed login attempt for: %s", creds.Email)
		handler.metricsManager.CounterLogins.WithLabelValues("wrong_credentials").Inc()
		pkg.WriteJSONError(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Errorf("login failed: %s", err)
		handler.metricsManager.CounterLogins.WithLabelValues("error").Inc()
		pkg.WriteJSONError(w, "error, login failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogins.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.String("user.id", session.UserID))
	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := r.Header.Get(TokenHeader)
	if token == "" {
		pkg.WriteJSONError(w, "error, missing token", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		pkg.WriteJSONError(w, "error, logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		pkg.WriteJSONError(w, "error, session not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, map[string]bool{"loggedOut": true}, http.StatusOK)
}

func (handler *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.changePassword")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteJSONError(w, "invalid content type", http.StatusBadRequest)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	err := handler.authService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, ErrWrongCredentials):
		pkg.WriteJSONError(w, "error, wrong credentials", http.StatusUnauthorized)
	case errors.Is(err, ErrPasswordTooShort), errors.Is(err, ErrPasswordTooLong):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUserNotFound):
		pkg.WriteJSONError(w, "error, user not found", http.StatusNotFound)
	case err != nil:
		log.Errorf("change password [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "error, change password failed", http.StatusInternalServerError)
	default:
		pkg.WriteJSON(w, map[string]bool{"changed": true}, http.StatusOK)
	}
}
