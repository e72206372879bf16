package progress

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/wellness/internal/auth"
	"github.com/2beens/wellness/internal/photostore"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	AddMeasurement(ctx context.Context, userID string, m Measurement) (*Measurement, error)
	Measurements(ctx context.Context, userID string) ([]Measurement, error)
	UploadPhoto(ctx context.Context, userID string, photoType PhotoType, image []byte) (*Photo, error)
	Photos(ctx context.Context, userID string) ([]PhotoGroup, error)
	PhotoImage(ctx context.Context, userID string, id int) ([]byte, error)
	Stats(ctx context.Context, userID string) (*Stats, error)
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	progressRouter := mainRouter.PathPrefix("/progress").Subrouter()
	progressRouter.HandleFunc("/measurements", handler.HandleListMeasurements).Methods("GET", "OPTIONS").Name("list-measurements")
	progressRouter.HandleFunc("/measurements", handler.HandleAddMeasurement).Methods("POST", "OPTIONS").Name("add-measurement")
	progressRouter.HandleFunc("/photos", handler.HandleListPhotos).Methods("GET", "OPTIONS").Name("list-progress-photos")
	progressRouter.HandleFunc("/photos", handler.HandleUploadPhoto).Methods("POST", "OPTIONS").Name("upload-progress-photo")
	progressRouter.HandleFunc("/photos/{id}/image", handler.HandlePhotoImage).Methods("GET", "OPTIONS").Name("progress-photo-image")
	progressRouter.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("progress-stats")
}

func writeServiceError(w http.ResponseWriter, userID string, err error) {
	switch {
	case errors.Is(err, ErrInvalidMeasurement), errors.Is(err, ErrInvalidPhotoType):
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPhotoNotFound):
		pkg.WriteJSONError(w, "error, photo not found", http.StatusNotFound)
	default:
		log.Errorf("progress [%s]: %s", userID, err)
		pkg.WriteJSONError(w, "error, internal server error", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleListMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.listMeasurements")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	measurements, err := handler.service.Measurements(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, measurements, http.StatusOK)
}

func (handler *Handler) HandleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.addMeasurement")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req Measurement
	if err := pkg.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	m, err := handler.service.AddMeasurement(ctx, userID, req)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, m, http.StatusCreated)
}

func (handler *Handler) HandleListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.listPhotos")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	groups, err := handler.service.Photos(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, groups, http.StatusOK)
}

// HandleUploadPhoto expects the image in the "photo" form file and the view in "photo_type".
func (handler *Handler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.uploadPhoto")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	image, _, err := pkg.ReadFormFile(r, "photo", photostore.MaxPhotoBytes)
	if err != nil {
		if errors.Is(err, pkg.ErrFormFileTooBig) {
			pkg.WriteJSONError(w, "error, photo too big", http.StatusRequestEntityTooLarge)
			return
		}
		pkg.WriteJSONError(w, "error, no photo provided", http.StatusBadRequest)
		return
	}

	photo, err := handler.service.UploadPhoto(ctx, userID, PhotoType(r.FormValue("photo_type")), image)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, photo, http.StatusCreated)
}

func (handler *Handler) HandlePhotoImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.photoImage")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "error, invalid photo id", http.StatusBadRequest)
		return
	}

	image, err := handler.service.PhotoImage(ctx, userID, id)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(image)))
	pkg.WriteResponseBytesOK(w, http.DetectContentType(image), image)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.stats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := handler.service.Stats(ctx, userID)
	if err != nil {
		writeServiceError(w, userID, err)
		return
	}
	pkg.WriteJSON(w, stats, http.StatusOK)
}
