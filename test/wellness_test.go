//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/2beens/wellness/internal/catalog"
	"github.com/2beens/wellness/internal/dashboard"
	"github.com/2beens/wellness/internal/db"
	"github.com/2beens/wellness/internal/nutrition"
	"github.com/2beens/wellness/internal/nutrition/mealscan"
	"github.com/2beens/wellness/internal/plans"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/progress"
	"github.com/2beens/wellness/internal/skincare"
	"github.com/2beens/wellness/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var onboarding = map[string]any{
	"heightCm":     175.0,
	"weightKg":     80.0,
	"age":          30,
	"gender":       "male",
	"fitnessLevel": "advanced",
	"equipment":    "gym",
	"skinType":     "oily",
	"goal":         "lose_fat",
}

func (s *IntegrationTestSuite) onboardedClient(ctx context.Context) *apiClient {
	t := s.T()
	client, _ := signup(ctx, t)
	resp, err := client.sendJSON(ctx, http.MethodPost, "/profile/onboarding/complete", onboarding)
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, nil)
	return client
}

func (s *IntegrationTestSuite) TestOnboardingAndProfile() {
	t := s.T()
	ctx := context.Background()
	client, _ := signup(ctx, t)

	resp, err := client.get(ctx, "/dashboard")
	s.Require().NoError(err)
	expect(t, resp, http.StatusConflict, nil)

	resp, err = client.sendJSON(ctx, http.MethodPut, "/profile/onboarding", map[string]any{
		"fullName": gofakeit.Name(),
		"heightCm": 175.0,
	})
	s.Require().NoError(err)
	var p profile.Profile
	expect(t, resp, http.StatusOK, &p)
	assert.False(t, p.OnboardingComplete)
	assert.Nil(t, p.DailyCaloriesTarget)
	assert.Equal(t, 3, p.TimelineMonths)

	resp, err = client.sendJSON(ctx, http.MethodPost, "/profile/onboarding/complete", map[string]any{"goal": "bulk"})
	s.Require().NoError(err)
	expect(t, resp, http.StatusBadRequest, nil)

	resp, err = client.sendJSON(ctx, http.MethodPost, "/profile/onboarding/complete", onboarding)
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &p)
	require.True(t, p.OnboardingComplete)
	// bmr 1748.75, tdee 2711, lose_fat -500
	require.NotNil(t, p.DailyCaloriesTarget)
	assert.Equal(t, 2211, *p.DailyCaloriesTarget)
	assert.Equal(t, 160, *p.DailyProteinG)
	assert.Equal(t, 61, *p.DailyFatG)

	resp, err = client.sendJSON(ctx, http.MethodPatch, "/profile", map[string]any{"goal": "bulk"})
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &p)
	assert.Equal(t, 3211, *p.DailyCaloriesTarget)

	resp, err = client.sendJSON(ctx, http.MethodPatch, "/profile", map[string]any{"equipment": "spaceship"})
	s.Require().NoError(err)
	expect(t, resp, http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestWorkouts() {
	t := s.T()
	ctx := context.Background()
	client := s.onboardedClient(ctx)

	var exercises []workouts.Exercise
	resp, err := client.get(ctx, "/workouts/exercises?muscle=Legs&q=squat")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &exercises)
	require.NotEmpty(t, exercises)
	for _, e := range exercises {
		assert.Equal(t, "Legs", e.MuscleGroup)
		assert.Contains(t, e.Name, "Squat")
	}

	var today workouts.Today
	resp, err = client.get(ctx, "/workouts/today")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &today)
	expectedTag := plans.ResolveDayPlan(plans.LevelAdvanced, plans.EquipmentGym, time.Now().UTC().Weekday())
	require.Equal(t, expectedTag, today.DayTag)
	if today.DayTag == plans.DayRest {
		t.Log("rest day, skipping start/finish")
		return
	}
	require.NotNil(t, today.Workout)
	require.NotEmpty(t, today.Workout.Exercises)
	for i, we := range today.Workout.Exercises {
		assert.Equal(t, i, we.OrderIndex)
	}

	var started workouts.Log
	resp, err = client.do(ctx, http.MethodPost, "/workouts/start", nil, "")
	s.Require().NoError(err)
	expect(t, resp, http.StatusCreated, &started)
	assert.Equal(t, workouts.StatusStarted, started.Status)

	// another user cannot finish it
	other := s.onboardedClient(ctx)
	resp, err = other.do(ctx, http.MethodPost, fmt.Sprintf("/workouts/logs/%d/finish", started.ID), nil, "")
	s.Require().NoError(err)
	expect(t, resp, http.StatusNotFound, nil)

	var finished workouts.Log
	resp, err = client.do(ctx, http.MethodPost, fmt.Sprintf("/workouts/logs/%d/finish", started.ID), nil, "")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &finished)
	assert.Equal(t, workouts.StatusCompleted, finished.Status)
	assert.NotNil(t, finished.CompletedAt)

	var history workouts.History
	resp, err = client.get(ctx, "/workouts/history")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &history)
	require.Len(t, history.Logs, 1)
	assert.Equal(t, today.Workout.Name, history.Logs[0].WorkoutName)
	assert.Equal(t, 1, history.Streak)
	assert.Len(t, history.Calendar, 90)

	var overview dashboard.Overview
	resp, err = client.get(ctx, "/dashboard")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &overview)
	assert.Equal(t, 1, overview.Streak)
	assert.Equal(t, 1, overview.WeekWorkouts)
	require.NotNil(t, overview.WorkoutLog)
	assert.Equal(t, workouts.StatusCompleted, overview.WorkoutLog.Status)
}

func (s *IntegrationTestSuite) TestNutrition() {
	t := s.T()
	ctx := context.Background()
	client := s.onboardedClient(ctx)

	var foods []nutrition.Food
	resp, err := client.get(ctx, "/nutrition/foods?q=ri")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &foods)
	assert.Empty(t, foods)

	resp, err = client.get(ctx, "/nutrition/foods?q=rice")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &foods)
	require.Len(t, foods, 1)
	rice := foods[0]

	quantity := 200.0
	resp, err = client.sendJSON(ctx, http.MethodPost, "/nutrition/logs", map[string]any{
		"foodId":    rice.ID,
		"mealType":  "lunch",
		"quantityG": quantity,
	})
	s.Require().NoError(err)
	expect(t, resp, http.StatusCreated, nil)

	var manual nutrition.FoodLog
	resp, err = client.sendJSON(ctx, http.MethodPost, "/nutrition/logs", map[string]any{
		"name":     "Protein bar",
		"mealType": "snack",
		"calories": 240.0,
		"proteinG": 20.0,
	})
	s.Require().NoError(err)
	expect(t, resp, http.StatusCreated, &manual)

	var summary nutrition.DaySummary
	resp, err = client.get(ctx, "/nutrition/summary")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &summary)
	assert.Equal(t, 260+240, summary.Totals.Calories)
	assert.Len(t, summary.Meals[nutrition.MealLunch], 1)
	assert.Len(t, summary.Meals[nutrition.MealSnack], 1)
	assert.Equal(t, 2211-500, summary.Remaining)

	resp, err = client.do(ctx, http.MethodDelete, fmt.Sprintf("/nutrition/logs/%d", manual.ID), nil, "")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, nil)

	var water struct {
		Glasses int `json:"glasses"`
	}
	for _, delta := range []int{1, 1, 1, -1} {
		resp, err = client.sendJSON(ctx, http.MethodPost, "/nutrition/water", map[string]int{"delta": delta})
		s.Require().NoError(err)
		expect(t, resp, http.StatusOK, &water)
	}
	assert.Equal(t, 2, water.Glasses)
	resp, err = client.sendJSON(ctx, http.MethodPost, "/nutrition/water", map[string]int{"delta": -10})
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &water)
	assert.Equal(t, 0, water.Glasses)
}

func (s *IntegrationTestSuite) TestMealAnalysis() {
	t := s.T()
	ctx := context.Background()
	client := s.onboardedClient(ctx)

	image := bytes.Repeat([]byte{0xFF, 0xD8, 0xFF, 0xE0}, 64)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("image", "meal.jpg")
	s.Require().NoError(err)
	_, err = fw.Write(image)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	// no gemini key in the suite, so the development analyzer answers
	var analysis mealscan.Result
	resp, err := client.do(ctx, http.MethodPost, "/nutrition/analyze", body, mw.FormDataContentType())
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &analysis)
	require.Len(t, analysis.Items, 3)

	body.Reset()
	mw = multipart.NewWriter(body)
	fw, err = mw.CreateFormFile("image", "meal.jpg")
	s.Require().NoError(err)
	_, err = fw.Write(image)
	s.Require().NoError(err)
	items, err := json.Marshal(analysis.Items)
	s.Require().NoError(err)
	s.Require().NoError(mw.WriteField("items", string(items)))
	s.Require().NoError(mw.WriteField("selected", "[0,1]"))
	s.Require().NoError(mw.WriteField("mealType", "dinner"))
	s.Require().NoError(mw.Close())

	var photoLog nutrition.MealPhotoLog
	resp, err = client.do(ctx, http.MethodPost, "/nutrition/analyze/log", body, mw.FormDataContentType())
	s.Require().NoError(err)
	expect(t, resp, http.StatusCreated, &photoLog)
	assert.Equal(t, nutrition.MealDinner, photoLog.MealType)
	assert.Len(t, photoLog.AIDetectedItems, 3)

	var summary nutrition.DaySummary
	resp, err = client.get(ctx, "/nutrition/summary")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &summary)
	assert.Len(t, summary.Meals[nutrition.MealDinner], 2)
}

func (s *IntegrationTestSuite) TestSkincare() {
	t := s.T()
	ctx := context.Background()
	client := s.onboardedClient(ctx)

	var routine skincare.Routine
	resp, err := client.get(ctx, "/skincare/routine?time=am")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &routine)
	assert.Equal(t, plans.SkinType("oily"), routine.SkinType)
	require.Len(t, routine.Steps, 4)
	assert.Empty(t, routine.Completed)

	resp, err = client.sendJSON(ctx, http.MethodPost, "/skincare/routine/steps", map[string]string{
		"routineType": "am", "step": "Retinol",
	})
	s.Require().NoError(err)
	expect(t, resp, http.StatusBadRequest, nil)

	var skinLog skincare.SkinLog
	for _, step := range routine.Steps {
		resp, err = client.sendJSON(ctx, http.MethodPost, "/skincare/routine/steps", map[string]string{
			"routineType": "am", "step": step.Name,
		})
		s.Require().NoError(err)
		expect(t, resp, http.StatusOK, &skinLog)
	}
	assert.True(t, skinLog.CompletedAll)
	assert.NotNil(t, skinLog.CompletedAt)

	resp, err = client.sendJSON(ctx, http.MethodPost, "/skincare/routine/steps", map[string]string{
		"routineType": "am", "step": "SPF",
	})
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &skinLog)
	assert.False(t, skinLog.CompletedAll)
	assert.Nil(t, skinLog.CompletedAt)

	var product skincare.Product
	resp, err = client.sendJSON(ctx, http.MethodPost, "/skincare/products", map[string]string{
		"productName": "Gel cleanser",
	})
	s.Require().NoError(err)
	expect(t, resp, http.StatusCreated, &product)
	assert.Equal(t, "cleanser", product.Category)
	assert.Equal(t, skincare.StatusActive, product.Status)

	resp, err = client.do(ctx, http.MethodPost, fmt.Sprintf("/skincare/products/%d/toggle", product.ID), nil, "")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &product)
	assert.Equal(t, skincare.StatusPaused, product.Status)

	resp, err = client.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/skincare/products/%d/status", product.ID), map[string]string{
		"status": "finished",
	})
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &product)
	assert.Equal(t, skincare.StatusFinished, product.Status)

	var products []skincare.Product
	resp, err = client.get(ctx, "/skincare/products")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &products)
	require.Len(t, products, 1)
}

func (s *IntegrationTestSuite) TestProgress() {
	t := s.T()
	ctx := context.Background()
	client := s.onboardedClient(ctx)

	resp, err := client.sendJSON(ctx, http.MethodPost, "/progress/measurements", map[string]any{"notes": "nothing"})
	s.Require().NoError(err)
	expect(t, resp, http.StatusBadRequest, nil)

	for _, w := range []float64{80, 78.4} {
		resp, err = client.sendJSON(ctx, http.MethodPost, "/progress/measurements", map[string]any{
			"weightKg": w,
			"waistCm":  gofakeit.Float64Range(70, 90),
		})
		s.Require().NoError(err)
		expect(t, resp, http.StatusCreated, nil)
	}

	var stats progress.Stats
	resp, err = client.get(ctx, "/progress/stats")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &stats)
	assert.Equal(t, 80.0, stats.StartingWeight)
	assert.Equal(t, 78.4, stats.CurrentWeight)
	assert.Equal(t, -1.6, stats.WeightChange)

	image := []byte("\xFF\xD8\xFF\xE0progress-photo")
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("photo", "front.jpg")
	s.Require().NoError(err)
	_, err = fw.Write(image)
	s.Require().NoError(err)
	s.Require().NoError(mw.WriteField("photo_type", "side"))
	s.Require().NoError(mw.Close())

	var photo progress.Photo
	resp, err = client.do(ctx, http.MethodPost, "/progress/photos", body, mw.FormDataContentType())
	s.Require().NoError(err)
	expect(t, resp, http.StatusCreated, &photo)
	assert.Equal(t, progress.PhotoSide, photo.PhotoType)

	var groups []progress.PhotoGroup
	resp, err = client.get(ctx, "/progress/photos")
	s.Require().NoError(err)
	expect(t, resp, http.StatusOK, &groups)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Photos, 1)

	resp, err = client.get(ctx, fmt.Sprintf("/progress/photos/%d/image", photo.ID))
	s.Require().NoError(err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))

	other := s.onboardedClient(ctx)
	resp, err = other.get(ctx, fmt.Sprintf("/progress/photos/%d/image", photo.ID))
	s.Require().NoError(err)
	expect(t, resp, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestCatalogReseed() {
	t := s.T()
	ctx := context.Background()

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: s.pgPort,
		DBName: testDBName,
	})
	require.NoError(t, err)
	defer pool.Close()

	c, err := catalog.Default()
	require.NoError(t, err)

	var before int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT count(*) FROM workout_exercises`).Scan(&before))

	res, err := catalog.NewSeeder(pool).Seed(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, len(c.Workouts), res.Workouts)

	var after, exercises int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT count(*) FROM workout_exercises`).Scan(&after))
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT count(*) FROM exercises`).Scan(&exercises))
	assert.Equal(t, before, after)
	assert.Equal(t, len(c.Exercises), exercises)
}
