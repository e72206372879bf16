package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/wellness/internal/auth"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Overview(ctx context.Context, userID string) (*Overview, error)
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/dashboard", handler.HandleOverview).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.overview")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	overview, err := handler.service.Overview(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrOnboardingIncomplete), errors.Is(err, profile.ErrProfileNotFound):
			pkg.WriteJSONError(w, "error, onboarding not complete", http.StatusConflict)
		default:
			log.Errorf("dashboard [%s]: %s", userID, err)
			pkg.WriteJSONError(w, "error, internal server error", http.StatusInternalServerError)
		}
		return
	}
	pkg.WriteJSON(w, overview, http.StatusOK)
}
