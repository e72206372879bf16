package progress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/2beens/wellness/internal/photostore"
	"github.com/2beens/wellness/internal/telemetry/metrics"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress

type progressRepo interface {
	AddMeasurement(ctx context.Context, m *Measurement) error
	ListMeasurements(ctx context.Context, userID string) ([]Measurement, error)
	AddPhoto(ctx context.Context, p *Photo) error
	ListPhotos(ctx context.Context, userID string) ([]Photo, error)
	GetPhoto(ctx context.Context, userID string, id int) (*Photo, error)
}

type workoutStats interface {
	TotalCompleted(ctx context.Context, userID string) (int, error)
	Streak(ctx context.Context, userID string) (int, error)
}

type photoStore interface {
	Save(ctx context.Context, relPath string, photo io.Reader) (int64, error)
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)
	Delete(ctx context.Context, relPath string) error
}

type Service struct {
	repo           progressRepo
	workouts       workoutStats
	photos         photoStore
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	repo progressRepo,
	workouts workoutStats,
	photos photoStore,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	return &Service{
		repo:           repo,
		workouts:       workouts,
		photos:         photos,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// AddMeasurement stores a measurement dated today. At least one value is required.
func (s *Service) AddMeasurement(ctx context.Context, userID string, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progressService.addMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	hasValue := false
	for _, v := range m.values() {
		if v == nil {
			continue
		}
		if *v <= 0 {
			return nil, fmt.Errorf("%w: values must be positive", ErrInvalidMeasurement)
		}
		hasValue = true
	}
	if !hasValue {
		return nil, fmt.Errorf("%w: no values", ErrInvalidMeasurement)
	}

	m.ID = 0
	m.UserID = userID
	m.Date = pkg.Today(s.now(), s.loc)
	m.Notes = strings.TrimSpace(m.Notes)
	if err := s.repo.AddMeasurement(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Measurements(ctx context.Context, userID string) ([]Measurement, error) {
	measurements, err := s.repo.ListMeasurements(ctx, userID)
	if err != nil {
		return nil, err
	}
	if measurements == nil {
		measurements = []Measurement{}
	}
	return measurements, nil
}

// UploadPhoto stores the image under {userID}/{date}_{type}_{unixMillis}.jpg and records it.
func (s *Service) UploadPhoto(ctx context.Context, userID string, photoType PhotoType, image []byte) (_ *Photo, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progressService.uploadPhoto")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if photoType == "" {
		photoType = PhotoFront
	}
	if !photoType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhotoType, photoType)
	}
	span.SetAttributes(attribute.String("photo_type", string(photoType)))

	now := s.now()
	date := pkg.Today(now, s.loc)
	photoPath := fmt.Sprintf("%s/%s_%s_%d.jpg", userID, date, photoType, now.UnixMilli())
	if _, err := s.photos.Save(ctx, photoPath, bytes.NewReader(image)); err != nil {
		return nil, fmt.Errorf("save progress photo: %w", err)
	}

	p := &Photo{
		UserID:    userID,
		Date:      date,
		PhotoType: photoType,
		PhotoPath: photoPath,
		CreatedAt: now,
	}
	if err := s.repo.AddPhoto(ctx, p); err != nil {
		if delErr := s.photos.Delete(ctx, photoPath); delErr != nil {
			log.Errorf("remove progress photo %s after failed save: %s", photoPath, delErr)
		}
		return nil, err
	}

	s.metricsManager.CounterProgressPhotos.Inc()
	return p, nil
}

// Photos lists the user's photos newest first, grouped by date.
func (s *Service) Photos(ctx context.Context, userID string) ([]PhotoGroup, error) {
	photos, err := s.repo.ListPhotos(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupPhotos(photos), nil
}

// PhotoImage returns the stored bytes of one of the user's photos.
func (s *Service) PhotoImage(ctx context.Context, userID string, id int) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progressService.photoImage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.repo.GetPhoto(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	rc, err := s.photos.Open(ctx, p.PhotoPath)
	if err != nil {
		if errors.Is(err, photostore.ErrPhotoNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	defer rc.Close()

	image, err := io.ReadAll(io.LimitReader(rc, photostore.MaxPhotoBytes))
	if err != nil {
		return nil, fmt.Errorf("read progress photo: %w", err)
	}
	return image, nil
}

func (s *Service) Stats(ctx context.Context, userID string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progressService.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		total, streak int
		measurements  []Measurement
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.workouts.TotalCompleted(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		streak, err = s.workouts.Streak(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		measurements, err = s.repo.ListMeasurements(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := BuildStats(total, streak, measurements)
	return &stats, nil
}
