package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/wellness/internal/cache"
	"github.com/2beens/wellness/internal/plans"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/telemetry/metrics"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts

const (
	historyLimit     = 30
	libraryCacheTTL  = 10 * time.Minute
	beginningOfTime  = "1970-01-01"
	libraryCacheKeyF = "exercises::%s::%s"
)

type workoutsRepo interface {
	ListExercises(ctx context.Context, muscleGroup, nameQuery string) ([]Exercise, error)
	GetWorkout(ctx context.Context, dayTag plans.DayTag, difficulty plans.FitnessLevel) (*Workout, error)
	CreateLog(ctx context.Context, log *Log) (*Log, error)
	GetLog(ctx context.Context, userID string, id int) (*Log, error)
	LatestLogOn(ctx context.Context, userID, date string) (*Log, error)
	CompleteLog(ctx context.Context, userID string, id int, completedAt time.Time) error
	CompletedHistory(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
	CompletedDates(ctx context.Context, userID, since string) ([]string, error)
	CountCompleted(ctx context.Context, userID, since string) (int, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID string) (*profile.Profile, error)
}

type Service struct {
	repo           workoutsRepo
	profiles       profileGetter
	cache          cache.Cache
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	repo workoutsRepo,
	profiles profileGetter,
	libraryCache cache.Cache,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		cache:          libraryCache,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

// Library lists exercises, served from the local cache when possible.
func (s *Service) Library(ctx context.Context, muscleGroup, nameQuery string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.library")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	muscleGroup = strings.TrimSpace(muscleGroup)
	if muscleGroup == "" {
		muscleGroup = "all"
	}
	nameQuery = strings.ToLower(strings.TrimSpace(nameQuery))

	cacheKey := fmt.Sprintf(libraryCacheKeyF, muscleGroup, nameQuery)
	var exercises []Exercise
	if err := s.cache.GetJSON(cacheKey, &exercises); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return exercises, nil
	}

	exercises, err = s.repo.ListExercises(ctx, muscleGroup, nameQuery)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	if err := s.cache.SetJSON(cacheKey, exercises, libraryCacheTTL); err != nil {
		log.Errorf("cache exercises [%s]: %s", cacheKey, err)
	}
	return exercises, nil
}

func (s *Service) todayDate() string {
	return pkg.Today(s.now(), s.loc)
}

// DayTag resolves the plan of the user for the current weekday.
func (s *Service) DayTag(ctx context.Context, userID string) (plans.DayTag, *profile.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	weekday := s.now().In(s.loc).Weekday()
	return plans.ResolveDayPlan(p.Level(), p.EquipmentOrNone(), weekday), p, nil
}

func (s *Service) Today(ctx context.Context, userID string) (_ *Today, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.today")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dayTag, p, err := s.DayTag(ctx, userID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("day_tag", string(dayTag)))

	today := &Today{DayTag: dayTag}
	if dayTag == plans.DayRest {
		return today, nil
	}

	workout, err := s.repo.GetWorkout(ctx, dayTag, p.Level())
	if err != nil {
		return nil, err
	}
	today.Workout = workout

	todayLog, err := s.repo.LatestLogOn(ctx, userID, s.todayDate())
	if err != nil && !errors.Is(err, ErrWorkoutLogNotFound) {
		return nil, err
	}
	today.Log = todayLog

	return today, nil
}

// TodayLog returns the latest workout log of today, nil when there is none.
func (s *Service) TodayLog(ctx context.Context, userID string) (*Log, error) {
	l, err := s.repo.LatestLogOn(ctx, userID, s.todayDate())
	if errors.Is(err, ErrWorkoutLogNotFound) {
		return nil, nil
	}
	return l, err
}

func (s *Service) Start(ctx context.Context, userID string) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dayTag, p, err := s.DayTag(ctx, userID)
	if err != nil {
		return nil, err
	}
	if dayTag == plans.DayRest {
		return nil, ErrRestDay
	}

	workout, err := s.repo.GetWorkout(ctx, dayTag, p.Level())
	if err != nil {
		return nil, err
	}

	return s.repo.CreateLog(ctx, &Log{
		UserID:    userID,
		WorkoutID: workout.ID,
		Date:      s.todayDate(),
		Status:    StatusStarted,
		StartedAt: s.now(),
	})
}

func (s *Service) Finish(ctx context.Context, userID string, logID int) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", logID))

	workoutLog, err := s.repo.GetLog(ctx, userID, logID)
	if err != nil {
		return nil, err
	}
	if workoutLog.Status != StatusStarted {
		return nil, ErrLogNotStarted
	}

	completedAt := s.now()
	if err := s.repo.CompleteLog(ctx, userID, logID, completedAt); err != nil {
		return nil, err
	}
	s.metricsManager.CounterWorkoutsCompleted.Inc()

	workoutLog.Status = StatusCompleted
	workoutLog.CompletedAt = &completedAt
	return workoutLog, nil
}

func (s *Service) completedDates(ctx context.Context, userID string) ([]string, error) {
	since := pkg.DateOf(s.now(), s.loc).AddDate(0, 0, -maxStreakDays).Format(pkg.DateLayout)
	return s.repo.CompletedDates(ctx, userID, since)
}

func (s *Service) History(ctx context.Context, userID string) (_ *History, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutsService.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.repo.CompletedHistory(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}

	dates, err := s.completedDates(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &History{
		Logs:     entries,
		Streak:   Streak(dates, now, s.loc),
		Calendar: Calendar(dates, now, s.loc),
	}, nil
}

func (s *Service) Streak(ctx context.Context, userID string) (int, error) {
	dates, err := s.completedDates(ctx, userID)
	if err != nil {
		return 0, err
	}
	return Streak(dates, s.now(), s.loc), nil
}

func (s *Service) WeekCount(ctx context.Context, userID string) (int, error) {
	weekStart := pkg.StartOfWeek(s.now(), s.loc).Format(pkg.DateLayout)
	return s.repo.CountCompleted(ctx, userID, weekStart)
}

func (s *Service) TotalCompleted(ctx context.Context, userID string) (int, error) {
	return s.repo.CountCompleted(ctx, userID, beginningOfTime)
}
