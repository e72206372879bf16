package skincare

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/wellness/internal/plans"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/telemetry/metrics"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=skincare

type skincareRepo interface {
	GetLog(ctx context.Context, userID, date string, routineType plans.RoutineType) (*SkinLog, error)
	UpsertLog(ctx context.Context, l *SkinLog) error
	ListProducts(ctx context.Context, userID string) ([]Product, error)
	GetProduct(ctx context.Context, userID string, id int) (*Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProductStatus(ctx context.Context, userID string, id int, status ProductStatus) error
}

type profileGetter interface {
	Get(ctx context.Context, userID string) (*profile.Profile, error)
}

type Service struct {
	repo           skincareRepo
	profiles       profileGetter
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	repo skincareRepo,
	profiles profileGetter,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// routineType resolves the requested routine. Empty means the one for the current hour.
func (s *Service) routineType(requested string) (plans.RoutineType, error) {
	switch plans.RoutineType(strings.ToLower(requested)) {
	case "":
		return plans.RoutineTypeFor(plans.IsMorning(s.now().In(s.loc).Hour())), nil
	case plans.RoutineAM:
		return plans.RoutineAM, nil
	case plans.RoutinePM:
		return plans.RoutinePM, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoutineType, requested)
}

func (s *Service) todayLog(ctx context.Context, userID string, routineType plans.RoutineType) (*SkinLog, error) {
	today := pkg.Today(s.now(), s.loc)
	l, err := s.repo.GetLog(ctx, userID, today, routineType)
	if errors.Is(err, ErrSkinLogNotFound) {
		return &SkinLog{
			UserID:         userID,
			Date:           today,
			RoutineType:    routineType,
			StepsCompleted: []string{},
		}, nil
	}
	return l, err
}

// Routine returns today's routine for the user's skin type, with the steps already done.
func (s *Service) Routine(ctx context.Context, userID, requestedType string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skincareService.routine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routineType, err := s.routineType(requestedType)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	skinType := p.SkinTypeOrNormal()
	span.SetAttributes(
		attribute.String("skin_type", string(skinType)),
		attribute.String("routine_type", string(routineType)),
	)

	l, err := s.todayLog(ctx, userID, routineType)
	if err != nil {
		return nil, err
	}

	return &Routine{
		SkinType:     skinType,
		RoutineType:  routineType,
		Steps:        plans.ResolveSkinSteps(skinType, routineType == plans.RoutineAM),
		Completed:    l.StepsCompleted,
		CompletedAll: l.CompletedAll,
	}, nil
}

// TodayLog returns the log of the routine matching the current hour.
func (s *Service) TodayLog(ctx context.Context, userID string) (*SkinLog, error) {
	routineType, err := s.routineType("")
	if err != nil {
		return nil, err
	}
	return s.todayLog(ctx, userID, routineType)
}

func (s *Service) ToggleStep(ctx context.Context, userID, requestedType, step string) (_ *SkinLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skincareService.toggleStep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routineType, err := s.routineType(requestedType)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	steps := plans.ResolveSkinSteps(p.SkinTypeOrNormal(), routineType == plans.RoutineAM)
	if !hasStep(steps, step) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}

	l, err := s.todayLog(ctx, userID, routineType)
	if err != nil {
		return nil, err
	}
	l.Toggle(step, steps, s.now())
	if err := s.repo.UpsertLog(ctx, l); err != nil {
		return nil, err
	}

	s.metricsManager.CounterSkinStepsToggled.Inc()
	if l.CompletedAll {
		log.Debugf("skincare [%s]: %s routine completed", userID, routineType)
	}
	return l, nil
}

func (s *Service) Products(ctx context.Context, userID string) ([]Product, error) {
	products, err := s.repo.ListProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

func (s *Service) AddProduct(ctx context.Context, userID string, req NewProduct) (_ *Product, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "skincareService.addProduct")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name required", ErrInvalidProduct)
	}
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if category == "" {
		category = defaultCategory
	}
	if !slices.Contains(Categories, category) {
		return nil, fmt.Errorf("%w: category %q", ErrInvalidProduct, req.Category)
	}

	p := &Product{
		UserID:   userID,
		Name:     name,
		Category: category,
		Status:   StatusActive,
		Notes:    strings.TrimSpace(req.Notes),
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ToggleProductStatus pauses an active product and resumes any other.
func (s *Service) ToggleProductStatus(ctx context.Context, userID string, id int) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	status := p.Status.Toggled()
	if err := s.repo.UpdateProductStatus(ctx, userID, id, status); err != nil {
		return nil, err
	}
	p.Status = status
	return p, nil
}

func (s *Service) SetProductStatus(ctx context.Context, userID string, id int, status ProductStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidProduct, status)
	}
	return s.repo.UpdateProductStatus(ctx, userID, id, status)
}
