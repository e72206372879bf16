package dashboard

import (
	"context"
	"time"

	"github.com/2beens/wellness/internal/plans"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/skincare"
	"github.com/2beens/wellness/internal/targets"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard

const dateFormat = "Monday, January 2, 2006"

type profileGetter interface {
	GetCompleted(ctx context.Context, userID string) (*profile.Profile, error)
}

type workoutsOverview interface {
	TodayLog(ctx context.Context, userID string) (*workouts.Log, error)
	Streak(ctx context.Context, userID string) (int, error)
	WeekCount(ctx context.Context, userID string) (int, error)
}

type skinOverview interface {
	TodayLog(ctx context.Context, userID string) (*skincare.SkinLog, error)
}

type nutritionOverview interface {
	ConsumedCalories(ctx context.Context, userID string) (int, error)
	WaterGlasses(ctx context.Context, userID string) (int, error)
}

type Overview struct {
	Greeting         string               `json:"greeting"`
	Date             string               `json:"date"`
	FocusMessage     string               `json:"focusMessage"`
	Goal             targets.Goal         `json:"goal"`
	DayTag           plans.DayTag         `json:"dayTag"`
	WorkoutLog       *workouts.Log        `json:"workoutLog"`
	SkinType         plans.SkinType       `json:"skinType"`
	SkinLog          *skincare.SkinLog    `json:"skinLog"`
	CaloriesConsumed int                  `json:"caloriesConsumed"`
	Targets          targets.DailyTargets `json:"targets"`
	Streak           int                  `json:"streak"`
	WeekWorkouts     int                  `json:"weekWorkouts"`
	WaterGlasses     int                  `json:"waterGlasses"`
}

type Service struct {
	profiles  profileGetter
	workouts  workoutsOverview
	skin      skinOverview
	nutrition nutritionOverview
	loc       *time.Location
	now       func() time.Time
}

func NewService(
	profiles profileGetter,
	workouts workoutsOverview,
	skin skinOverview,
	nutrition nutritionOverview,
	loc *time.Location,
) *Service {
	return &Service{
		profiles:  profiles,
		workouts:  workouts,
		skin:      skin,
		nutrition: nutrition,
		loc:       loc,
		now:       time.Now,
	}
}

// Overview collects everything shown on the user's home screen for today.
// It fails with profile.ErrOnboardingIncomplete until onboarding is done.
func (s *Service) Overview(ctx context.Context, userID string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboardService.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.profiles.GetCompleted(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	goal := p.GoalOrMaintain()
	overview := &Overview{
		Greeting:     plans.Greeting(now.Hour()),
		Date:         now.Format(dateFormat),
		FocusMessage: plans.FocusMessage(goal),
		Goal:         goal,
		DayTag:       plans.ResolveDayPlan(p.Level(), p.EquipmentOrNone(), now.Weekday()),
		SkinType:     p.SkinTypeOrNormal(),
		Targets:      p.Targets(),
	}
	span.SetAttributes(attribute.String("day_tag", string(overview.DayTag)))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.WorkoutLog, err = s.workouts.TodayLog(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		overview.Streak, err = s.workouts.Streak(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		overview.WeekWorkouts, err = s.workouts.WeekCount(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		overview.SkinLog, err = s.skin.TodayLog(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		overview.CaloriesConsumed, err = s.nutrition.ConsumedCalories(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		overview.WaterGlasses, err = s.nutrition.WaterGlasses(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}
