package services_test

import (
	"context"
	"testing"

	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
	"github.com/DanteArceneaux/wegovy/internal/services"
	"github.com/DanteArceneaux/wegovy/internal/testutil"
)

func newSummaryFixture(t *testing.T) (*services.SummaryService, *services.DayLogService, repository.ShotRepository, repository.WeightRepository) {
	t.Helper()
	db := testutil.NewTestDatabase(t)
	settingsRepo := repository.NewSettingsRepository(db)
	shotRepo := repository.NewShotRepository(db)
	weightRepo := repository.NewWeightRepository(db)
	logRepo := repository.NewDailyLogRepository(db)
	foodRepo := repository.NewFoodItemRepository(db)

	summary := services.NewSummaryService(settingsRepo, shotRepo, weightRepo, logRepo)
	dayLog := services.NewDayLogService(logRepo, foodRepo)
	return summary, dayLog, shotRepo, weightRepo
}

func TestSummaryService_FreshDate(t *testing.T) {
	summary, _, _, _ := newSummaryFixture(t)
	ctx := context.Background()

	result, err := summary.DaySummary(ctx, testutil.UserID, "2024-01-15")
	if err != nil {
		t.Fatalf("computing summary: %v", err)
	}
	if result.CycleDay != 0 {
		t.Errorf("expected cycle day 0 with no shots, got %d", result.CycleDay)
	}
	// No weight logged yet: falls back to the seeded start weight.
	if result.CurrentWeight != 240 {
		t.Errorf("expected start weight 240, got %v", result.CurrentWeight)
	}
	if result.TotalLost != "0.0" {
		t.Errorf("expected total lost 0.0, got %s", result.TotalLost)
	}
	// 240 lbs at the seeded 5'10".
	if result.BMI != "34.4" {
		t.Errorf("expected BMI 34.4, got %s", result.BMI)
	}
	if result.DateReadable != "Monday, January 15" {
		t.Errorf("unexpected readable date %q", result.DateReadable)
	}
}

func TestSummaryService_ReflectsLoggedData(t *testing.T) {
	summary, dayLog, shotRepo, weightRepo := newSummaryFixture(t)
	ctx := context.Background()

	if _, err := shotRepo.Create(ctx, testutil.UserID, models.Shot{
		Date: "2024-01-10", Time: "08:00", Dosage: models.Dosage05, Site: models.SiteLeftThigh,
	}); err != nil {
		t.Fatalf("creating shot: %v", err)
	}
	if _, err := weightRepo.Create(ctx, testutil.UserID, models.WeightEntry{Date: "2024-01-12", Weight: 231.5}); err != nil {
		t.Fatalf("creating weight entry: %v", err)
	}
	if _, err := dayLog.AddFood(ctx, testutil.UserID, "2024-01-15", "Tuna Wraps", 320, 35); err != nil {
		t.Fatalf("adding food: %v", err)
	}
	if _, err := dayLog.AdjustWater(ctx, testutil.UserID, "2024-01-15", 24); err != nil {
		t.Fatalf("adding water: %v", err)
	}

	result, err := summary.DaySummary(ctx, testutil.UserID, "2024-01-15")
	if err != nil {
		t.Fatalf("computing summary: %v", err)
	}
	if result.CycleDay != 5 {
		t.Errorf("expected cycle day 5, got %d", result.CycleDay)
	}
	if result.CurrentWeight != 231.5 {
		t.Errorf("expected current weight 231.5, got %v", result.CurrentWeight)
	}
	if result.TotalLost != "8.5" {
		t.Errorf("expected total lost 8.5, got %s", result.TotalLost)
	}
	if result.Log.Calories != 320 || result.Log.Water != 24 {
		t.Errorf("unexpected log in summary: %+v", result.Log)
	}
}

func TestSummaryService_WeightIsAsOfViewedDate(t *testing.T) {
	summary, _, _, weightRepo := newSummaryFixture(t)
	ctx := context.Background()

	if _, err := weightRepo.Create(ctx, testutil.UserID, models.WeightEntry{Date: "2024-01-12", Weight: 231.5}); err != nil {
		t.Fatalf("creating weight entry: %v", err)
	}

	// Browsing a date before the entry shows the weight known then.
	result, err := summary.DaySummary(ctx, testutil.UserID, "2024-01-10")
	if err != nil {
		t.Fatalf("computing summary: %v", err)
	}
	if result.CurrentWeight != 240 {
		t.Errorf("expected start weight as of Jan 10, got %v", result.CurrentWeight)
	}
}
