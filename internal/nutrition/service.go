package nutrition

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/2beens/wellness/internal/cache"
	"github.com/2beens/wellness/internal/nutrition/mealscan"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/targets"
	"github.com/2beens/wellness/internal/telemetry/metrics"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition

const foodSearchCacheTTL = 5 * time.Minute

type nutritionRepo interface {
	SearchFoods(ctx context.Context, query string, limit int) ([]Food, error)
	GetFood(ctx context.Context, id int) (*Food, error)
	CreateFoodLog(ctx context.Context, l *FoodLog) (int, error)
	SaveAnalyzedMeal(ctx context.Context, photoLog *MealPhotoLog, logs []FoodLog) (int, error)
	DeleteFoodLog(ctx context.Context, userID string, id int) error
	DayLogs(ctx context.Context, userID, date string) ([]FoodLog, error)
	WaterGlasses(ctx context.Context, userID, date string) (int, error)
	AddWater(ctx context.Context, userID, date string, delta int) (int, error)
}

type profileGetter interface {
	Get(ctx context.Context, userID string) (*profile.Profile, error)
}

type photoSaver interface {
	Save(ctx context.Context, relPath string, photo io.Reader) (int64, error)
	Delete(ctx context.Context, relPath string) error
}

type Service struct {
	repo           nutritionRepo
	profiles       profileGetter
	analyzer       mealscan.Analyzer
	photos         photoSaver
	searchCache    cache.Cache
	metricsManager *metrics.Manager
	loc            *time.Location
	now            func() time.Time
}

func NewService(
	repo nutritionRepo,
	profiles profileGetter,
	analyzer mealscan.Analyzer,
	photos photoSaver,
	searchCache cache.Cache,
	metricsManager *metrics.Manager,
	loc *time.Location,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		analyzer:       analyzer,
		photos:         photos,
		searchCache:    searchCache,
		metricsManager: metricsManager,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *Service) todayDate() string {
	return pkg.Today(s.now(), s.loc)
}

// SearchFoods returns at most 10 catalog foods whose name contains the query.
// Queries of two characters or fewer return nothing.
func (s *Service) SearchFoods(ctx context.Context, query string) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionService.searchFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query = strings.ToLower(strings.TrimSpace(query))
	if len([]rune(query)) < minSearchQueryLength {
		return []Food{}, nil
	}

	cacheKey := "foods::" + query
	var foods []Food
	if err := s.searchCache.GetJSON(cacheKey, &foods); err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return foods, nil
	}

	foods, err = s.repo.SearchFoods(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []Food{}
	}
	if err := s.searchCache.SetJSON(cacheKey, foods, foodSearchCacheTTL); err != nil {
		log.Errorf("cache food search [%s]: %s", query, err)
	}
	return foods, nil
}

func validDate(date string) bool {
	_, err := time.Parse(pkg.DateLayout, date)
	return err == nil
}

func (s *Service) LogFood(ctx context.Context, userID string, req LogFoodRequest) (_ *FoodLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionService.logFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.MealType == "" {
		req.MealType = MealSnack
	}
	if !req.MealType.Valid() {
		return nil, fmt.Errorf("%w: meal type %q", ErrInvalidFoodLog, req.MealType)
	}
	if req.Date == "" {
		req.Date = s.todayDate()
	} else if !validDate(req.Date) {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidFoodLog, req.Date)
	}

	foodLog := &FoodLog{
		UserID:    userID,
		Date:      req.Date,
		MealType:  req.MealType,
		QuantityG: defaultQuantityG,
		CreatedAt: s.now(),
	}
	if req.QuantityG != nil {
		if *req.QuantityG <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidFoodLog)
		}
		foodLog.QuantityG = *req.QuantityG
	}

	source := "catalog"
	if req.FoodID != nil {
		food, err := s.repo.GetFood(ctx, *req.FoodID)
		if err != nil {
			return nil, err
		}
		foodLog.FoodID = &food.ID
		foodLog.Food = food
	} else {
		source = "manual"
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name or food id required", ErrInvalidFoodLog)
		}
		foodLog.CustomName = &name
		foodLog.CaloriesOverride = orZero(req.Calories)
		foodLog.ProteinOverride = orZero(req.ProteinG)
		foodLog.CarbsOverride = orZero(req.CarbsG)
		foodLog.FatOverride = orZero(req.FatG)
		if *foodLog.CaloriesOverride < 0 || *foodLog.ProteinOverride < 0 || *foodLog.CarbsOverride < 0 || *foodLog.FatOverride < 0 {
			return nil, fmt.Errorf("%w: negative nutrition values", ErrInvalidFoodLog)
		}
	}

	id, err := s.repo.CreateFoodLog(ctx, foodLog)
	if err != nil {
		return nil, err
	}
	foodLog.ID = id
	s.metricsManager.CounterFoodLogs.WithLabelValues(source).Inc()

	return foodLog, nil
}

func orZero(v *float64) *float64 {
	if v == nil {
		zero := 0.0
		return &zero
	}
	return v
}

func (s *Service) DeleteFoodLog(ctx context.Context, userID string, id int) error {
	return s.repo.DeleteFoodLog(ctx, userID, id)
}

// DaySummary builds the summary of the given date, today when empty.
func (s *Service) DaySummary(ctx context.Context, userID, date string) (_ *DaySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionService.daySummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date == "" {
		date = s.todayDate()
	} else if !validDate(date) {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidFoodLog, date)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.repo.DayLogs(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	glasses, err := s.repo.WaterGlasses(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	summary := BuildDaySummary(date, logs, p.Targets())
	summary.Water = glasses
	return &summary, nil
}

// ConsumedCalories sums today's logged calories.
func (s *Service) ConsumedCalories(ctx context.Context, userID string) (int, error) {
	logs, err := s.repo.DayLogs(ctx, userID, s.todayDate())
	if err != nil {
		return 0, err
	}
	return BuildDaySummary("", logs, targets.DailyTargets{}).Totals.Calories, nil
}

func (s *Service) WaterGlasses(ctx context.Context, userID string) (int, error) {
	return s.repo.WaterGlasses(ctx, userID, s.todayDate())
}

func (s *Service) AddWater(ctx context.Context, userID string, delta int) (int, error) {
	return s.repo.AddWater(ctx, userID, s.todayDate(), delta)
}

// Analyze runs the meal photo through the analyzer.
func (s *Service) Analyze(ctx context.Context, image []byte, mimeType string) (_ *mealscan.Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionService.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, image, mimeType)
	s.metricsManager.HistMealAnalysisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metricsManager.CounterMealAnalyses.WithLabelValues("error").Inc()
		return nil, err
	}

	s.metricsManager.CounterMealAnalyses.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.Int("items", len(result.Items)))
	return result, nil
}

type LogAnalyzedRequest struct {
	Image    []byte
	MealType MealType
	Items    []mealscan.DetectedItem
	// Selected holds indexes into Items. Nil selects every item.
	Selected []int
}

// LogAnalyzed stores the meal photo with everything that was detected on it,
// then one food log per selected item.
func (s *Service) LogAnalyzed(ctx context.Context, userID string, req LogAnalyzedRequest) (_ *MealPhotoLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionService.logAnalyzed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.MealType == "" {
		req.MealType = MealLunch
	}
	if !req.MealType.Valid() {
		return nil, fmt.Errorf("%w: meal type %q", ErrInvalidFoodLog, req.MealType)
	}
	if len(req.Image) == 0 {
		return nil, mealscan.ErrEmptyImage
	}

	selected := req.Selected
	if selected == nil {
		selected = make([]int, len(req.Items))
		for i := range req.Items {
			selected[i] = i
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoItemsSelected
	}

	now := s.now()
	date := pkg.Today(now, s.loc)
	foodLogs := make([]FoodLog, 0, len(selected))
	for _, idx := range selected {
		if idx < 0 || idx >= len(req.Items) {
			return nil, fmt.Errorf("%w: item index %d", ErrInvalidFoodLog, idx)
		}
		item := req.Items[idx]
		name, cal, prot, carbs, fat := item.Name, item.Calories, item.ProteinG, item.CarbsG, item.FatG
		quantity := float64(defaultQuantityG)
		if item.EstimatedGrams > 0 {
			quantity = item.EstimatedGrams
		}
		foodLogs = append(foodLogs, FoodLog{
			UserID:           userID,
			Date:             date,
			MealType:         req.MealType,
			QuantityG:        quantity,
			CustomName:       &name,
			CaloriesOverride: &cal,
			ProteinOverride:  &prot,
			CarbsOverride:    &carbs,
			FatOverride:      &fat,
			CreatedAt:        now,
		})
	}

	photoPath := fmt.Sprintf("meals/%s/%s_%s_%d.jpg", userID, date, req.MealType, now.UnixMilli())
	if _, err := s.photos.Save(ctx, photoPath, bytes.NewReader(req.Image)); err != nil {
		return nil, fmt.Errorf("save meal photo: %w", err)
	}

	photoLog := &MealPhotoLog{
		UserID:          userID,
		Date:            date,
		MealType:        req.MealType,
		PhotoPath:       photoPath,
		AIDetectedItems: req.Items,
		CreatedAt:       now,
	}
	photoLogID, err := s.repo.SaveAnalyzedMeal(ctx, photoLog, foodLogs)
	if err != nil {
		if delErr := s.photos.Delete(ctx, photoPath); delErr != nil {
			log.Errorf("remove meal photo %s after failed save: %s", photoPath, delErr)
		}
		return nil, err
	}
	photoLog.ID = photoLogID
	s.metricsManager.CounterFoodLogs.WithLabelValues("photo").Add(float64(len(foodLogs)))

	return photoLog, nil
}
