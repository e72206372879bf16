package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/wellness/internal/auth"
	"github.com/2beens/wellness/internal/nutrition/mealscan"
	"github.com/2beens/wellness/internal/photostore"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionService interface {
	SearchFoods(ctx context.Context, query string) ([]Food, error)
	LogFood(ctx context.Context, userID string, req LogFoodRequest) (*FoodLog, error)
	DeleteFoodLog(ctx context.Context, userID string, id int) error
	DaySummary(ctx context.Context, userID, date string) (*DaySummary, error)
	WaterGlasses(ctx context.Context, userID string) (int, error)
	AddWater(ctx context.Context, userID string, delta int) (int, error)
	Analyze(ctx context.Context, image []byte, mimeType string) (*mealscan.Result, error)
	LogAnalyzed(ctx context.Context, userID string, req LogAnalyzedRequest) (*MealPhotoLog, error)
}

type Handler struct {
	service nutritionService
}

func NewHandler(service nutritionService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the nutrition endpoints. Photo analysis goes through analyzeLimit.
func (handler *Handler) SetupRoutes(mainRouter *mux.Router, analyzeLimit mux.MiddlewareFunc) {
	nutritionRouter := mainRouter.PathPrefix("/nutrition").Subrouter()
	nutritionRouter.HandleFunc("/foods", handler.HandleSearchFoods).Methods("GET", "OPTIONS").Name("search-foods")
	nutritionRouter.HandleFunc("/logs", handler.HandleLogFood).Methods("POST", "OPTIONS").Name("log-food")
	nutritionRouter.HandleFunc("/logs/{id}", handler.HandleDeleteFoodLog).Methods("DELETE", "OPTIONS").Name("delete-food-log")
	nutritionRouter.HandleFunc("/summary", handler.HandleDaySummary).Methods("GET", "OPTIONS").Name("day-summary")
	nutritionRouter.HandleFunc("/water", handler.HandleGetWater).Methods("GET", "OPTIONS").Name("get-water")
	nutritionRouter.HandleFunc("/water", handler.HandleAddWater).Methods("POST", "OPTIONS").Name("add-water")

	var analyze http.Handler = http.HandlerFunc(handler.HandleAnalyze)
	if analyzeLimit != nil {
		analyze = analyzeLimit(analyze)
	}
	nutritionRouter.Handle("/analyze", analyze).Methods("POST", "OPTIONS").Name("analyze-meal")
	nutritionRouter.HandleFunc("/analyze/log", handler.HandleLogAnalyzed).Methods("POST", "OPTIONS").Name("log-analyzed-meal")
}

func writeServiceError(w http.ResponseWriter, userID string, err error) {
	switch {
	case errors.Is(err, ErrInvalidFoodLog), errors.Is(err, ErrNoItemsSelected), errors.Is(err, mealscan.ErrEmptyImage):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrFoodNotFound):
		pkg.WriteJSONError(w, "error, food not found", http.StatusNotFound)
	case errors.Is(err, ErrFoodLogNotFound):
		pkg.WriteJSONError(w, "error, food log not found", http.StatusNotFound)
	case errors.Is(err, profile.ErrProfileNotFound):
		pkg.WriteJSONError(w, "error, profile not found", http.StatusNotFound)
	default:
		log.Errorf("nutrition [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "error, internal server error", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleSearchFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.searchFoods")
	defer span.End()

	foods, err := handler.service.SearchFoods(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, "", err)
		return
	}
	pkg.WriteJSON(w, foods, http.StatusOK)
}

func (handler *Handler) HandleLogFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logFood")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req LogFoodRequest
	if err := pkg.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	foodLog, err := handler.service.LogFood(ctx, userID, req)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, foodLog, http.StatusCreated)
}

func (handler *Handler) HandleDeleteFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deleteFoodLog")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "error, invalid log id", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteFoodLog(ctx, userID, id); err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, map[string]bool{"deleted": true}, http.StatusOK)
}

func (handler *Handler) HandleDaySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.daySummary")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	summary, err := handler.service.DaySummary(ctx, userID, r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, summary, http.StatusOK)
}

type waterResponse struct {
	Glasses int `json:"glasses"`
}

func (handler *Handler) HandleGetWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.getWater")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	glasses, err := handler.service.WaterGlasses(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, waterResponse{Glasses: glasses}, http.StatusOK)
}

func (handler *Handler) HandleAddWater(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addWater")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := pkg.DecodeJSON(r, &req); err != nil || req.Delta == 0 {
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	glasses, err := handler.service.AddWater(ctx, userID, req.Delta)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, waterResponse{Glasses: glasses}, http.StatusOK)
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.analyze")
	defer span.End()

	image, mimeType, err := pkg.ReadFormFile(r, "image", photostore.MaxPhotoBytes)
	if err != nil {
		log.Tracef("analyze meal, bad request: %s", err)
		pkg.WriteJSONError(w, "No image provided", http.StatusBadRequest)
		return
	}

	result, err := handler.service.Analyze(ctx, image, mimeType)
	if err != nil {
		log.Errorf("analyze meal: %s", err)
		pkg.WriteJSONError(w, "Failed to analyze image", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, result, http.StatusOK)
}

// HandleLogAnalyzed expects the photo in "image", the detected items as a JSON array in "items",
// and optionally the chosen item indexes as a JSON array in "selected" and the meal in "mealType".
func (handler *Handler) HandleLogAnalyzed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logAnalyzed")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	image, _, err := pkg.ReadFormFile(r, "image", photostore.MaxPhotoBytes)
	if err != nil {
		pkg.WriteJSONError(w, "No image provided", http.StatusBadRequest)
		return
	}

	req := LogAnalyzedRequest{
		Image:    image,
		MealType: MealType(r.FormValue("mealType")),
	}
	if err := json.Unmarshal([]byte(r.FormValue("items")), &req.Items); err != nil {
		pkg.WriteJSONError(w, "error, invalid detected items", http.StatusBadRequest)
		return
	}
	if selected := r.FormValue("selected"); selected != "" {
		if err := json.Unmarshal([]byte(selected), &req.Selected); err != nil {
			pkg.WriteJSONError(w, "error, invalid selected items", http.StatusBadRequest)
			return
		}
		if req.Selected == nil {
			req.Selected = []int{}
		}
	}

	photoLog, err := handler.service.LogAnalyzed(ctx, userID, req)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, photoLog, http.StatusCreated)
}
