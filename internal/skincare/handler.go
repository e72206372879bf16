package skincare

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=skincare_test

type skincareService interface {
	Routine(ctx context.Context, userID, requestedType string) (*Routine, error)
	ToggleStep(ctx context.Context, userID, requestedType, step string) (*SkinLog, error)
	Products(ctx context.Context, userID string) ([]Product, error)
	AddProduct(ctx context.Context, userID string, req NewProduct) (*Product, error)
	ToggleProductStatus(ctx context.Context, userID string, id int) (*Product, error)
	SetProductStatus(ctx context.Context, userID string, id int, status ProductStatus) error
}

type Handler struct {
	service skincareService
}

func NewHandler(service skincareService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	skincareRouter := mainRouter.PathPrefix("/skincare").Subrouter()
	skincareRouter.HandleFunc("/routine", handler.HandleRoutine).Methods("GET", "OPTIONS").Name("skin-routine")
	skincareRouter.HandleFunc("/routine/steps", handler.HandleToggleStep).Methods("POST", "OPTIONS").Name("toggle-skin-step")
	skincareRouter.HandleFunc("/products", handler.HandleListProducts).Methods("GET", "OPTIONS").Name("list-skin-products")
	skincareRouter.HandleFunc("/products", handler.HandleAddProduct).Methods("POST", "OPTIONS").Name("add-skin-product")
	skincareRouter.HandleFunc("/products/{id}/toggle", handler.HandleToggleProduct).Methods("POST", "OPTIONS").Name("toggle-skin-product")
	skincareRouter.HandleFunc("/products/{id}/status", handler.HandleSetProductStatus).Methods("PUT", "OPTIONS").Name("set-skin-product-status")
}

func writeServiceError(w http.ResponseWriter, userID string, err error) {
	switch {
	case errors.Is(err, ErrInvalidProduct), errors.Is(err, ErrUnknownStep), errors.Is(err, ErrInvalidRoutineType):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrProductNotFound):
		pkg.WriteJSONError(w, "error, product not found", http.StatusNotFound)
	case errors.Is(err, profile.ErrProfileNotFound):
		pkg.WriteJSONError(w, "error, profile not found", http.StatusNotFound)
	default:
		log.Errorf("skincare [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "error, internal server error", http.StatusInternalServerError)
	}
}

func productID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil && id > 0
}

func (handler *Handler) HandleRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skincare.routine")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	routine, err := handler.service.Routine(ctx, userID, r.URL.Query().Get("time"))
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleToggleStep(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skincare.toggleStep")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		RoutineType string `json:"routineType"`
		Step        string `json:"step"`
	}
	if err := pkg.DecodeJSON(r, &req); err != nil || req.Step == "" {
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	skinLog, err := handler.service.ToggleStep(ctx, userID, req.RoutineType, req.Step)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, skinLog, http.StatusOK)
}

func (handler *Handler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skincare.listProducts")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	products, err := handler.service.Products(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, products, http.StatusOK)
}

func (handler *Handler) HandleAddProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skincare.addProduct")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req NewProduct
	if err := pkg.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	product, err := handler.service.AddProduct(ctx, userID, req)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, product, http.StatusCreated)
}

func (handler *Handler) HandleToggleProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skincare.toggleProduct")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}
	id, ok := productID(r)
	if !ok {
		pkg.WriteJSONError(w, "error, invalid product id", http.StatusBadRequest)
		return
	}

	product, err := handler.service.ToggleProductStatus(ctx, userID, id)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, product, http.StatusOK)
}

func (handler *Handler) HandleSetProductStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.skincare.setProductStatus")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}
	id, ok := productID(r)
	if !ok {
		pkg.WriteJSONError(w, "error, invalid product id", http.StatusBadRequest)
		return
	}

	var req struct {
		Status ProductStatus `json:"status"`
	}
	if err := pkg.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	if err := handler.service.SetProductStatus(ctx, userID, id, req.Status); err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, map[string]ProductStatus{"status": req.Status}, http.StatusOK)
}
