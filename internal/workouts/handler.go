package workouts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/wellness/internal/auth"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Library(ctx context.Context, muscleGroup, nameQuery string) ([]Exercise, error)
	Today(ctx context.Context, userID string) (*Today, error)
	Start(ctx context.Context, userID string) (*Log, error)
	Finish(ctx context.Context, userID string, logID int) (*Log, error)
	History(ctx context.Context, userID string) (*History, error)
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	workoutsRouter := mainRouter.PathPrefix("/workouts").Subrouter()
	workoutsRouter.HandleFunc("/exercises", handler.HandleLibrary).Methods("GET", "OPTIONS").Name("exercise-library")
	workoutsRouter.HandleFunc("/today", handler.HandleToday).Methods("GET", "OPTIONS").Name("today-workout")
	workoutsRouter.HandleFunc("/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	workoutsRouter.HandleFunc("/logs/{id}/finish", handler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-workout")
	workoutsRouter.HandleFunc("/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("workout-history")
}

func writeServiceError(w http.ResponseWriter, userID string, err error) {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		pkg.WriteJSONError(w, "error, profile not found", http.StatusNotFound)
	case errors.Is(err, ErrWorkoutNotFound):
		pkg.WriteJSONError(w, "error, no workout planned for today", http.StatusNotFound)
	case errors.Is(err, ErrWorkoutLogNotFound):
		pkg.WriteJSONError(w, "error, workout log not found", http.StatusNotFound)
	case errors.Is(err, ErrRestDay):
		pkg.WriteJSONError(w, "error, today is a rest day", http.StatusConflict)
	case errors.Is(err, ErrLogNotStarted):
		pkg.WriteJSONError(w, "error, workout already finished", http.StatusConflict)
	default:
		log.Errorf("workouts [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "error, internal server error", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleLibrary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.library")
	defer span.End()

	exercises, err := handler.service.Library(ctx, r.URL.Query().Get("muscle"), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, "", err)
		return
	}
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	today, err := handler.service.Today(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, today, http.StatusOK)
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	workoutLog, err := handler.service.Start(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, workoutLog, http.StatusCreated)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.finish")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	logID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || logID <= 0 {
		pkg.WriteJSONError(w, "error, invalid log id", http.StatusBadRequest)
		return
	}

	workoutLog, err := handler.service.Finish(ctx, userID, logID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, workoutLog, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	history, err := handler.service.History(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, history, http.StatusOK)
}
