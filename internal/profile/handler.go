package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/wellness/internal/auth"
	"github.com/2beens/wellness/internal/targets"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

type profileService interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	SaveProgress(ctx context.Context, userID string, fields Fields) (*Profile, error)
	CompleteOnboarding(ctx context.Context, userID string, fields Fields) (*Profile, error)
	Update(ctx context.Context, userID string, fields Fields) (*Profile, error)
}

type Handler struct {
	service profileService
}

func NewHandler(service profileService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	mainRouter.HandleFunc("/profile", handler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-profile")
	mainRouter.HandleFunc("/profile/onboarding", handler.HandleSaveProgress).Methods("PUT", "OPTIONS").Name("save-onboarding")
	mainRouter.HandleFunc("/profile/onboarding/complete", handler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-onboarding")
	mainRouter.HandleFunc("/profile/goals", handler.HandleGoals).Methods("GET", "OPTIONS").Name("goals")
}

// writeServiceError maps profile errors to response codes.
func writeServiceError(w http.ResponseWriter, userID string, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		pkg.WriteJSONError(w, "error, profile not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidValue), errors.Is(err, ErrMissingBiometrics), errors.Is(err, targets.ErrInvalidBiometrics):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("profile [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "error, internal server error", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	p, err := handler.service.Get(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) handleFields(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	apply func(ctx context.Context, userID string, fields Fields) (*Profile, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	var fields Fields
	if err := pkg.DecodeJSON(r, &fields); err != nil {
		log.Tracef("%s, bad request: %s", spanName, err)
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	p, err := apply(ctx, userID, fields)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleSaveProgress(w http.ResponseWriter, r *http.Request) {
	handler.handleFields(w, r, "handler.profile.saveProgress", handler.service.SaveProgress)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	handler.handleFields(w, r, "handler.profile.completeOnboarding", handler.service.CompleteOnboarding)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	handler.handleFields(w, r, "handler.profile.update", handler.service.Update)
}

type goalOption struct {
	Value       targets.Goal `json:"value"`
	Description string       `json:"description"`
}

var goalDescriptions = map[targets.Goal]string{
	targets.GoalLoseFat:     "Reduce body fat, preserve muscle",
	targets.GoalBuildMuscle: "Gain lean mass, strength focus",
	targets.GoalBodyRecomp:  "Lose fat + gain muscle simultaneously",
	targets.GoalAthletic:    "Improve endurance, speed, stamina",
	targets.GoalBulk:        "Significant mass gain",
	targets.GoalLeanToned:   "Slim down with muscle definition",
	targets.GoalMaintain:    "Sustain current physique",
}

func (handler *Handler) HandleGoals(w http.ResponseWriter, _ *http.Request) {
	options := make([]goalOption, 0, len(targets.Goals))
	for _, g := range targets.Goals {
		options = append(options, goalOption{Value: g, Description: goalDescriptions[g]})
	}
	pkg.WriteJSON(w, options, http.StatusOK)
}
