package services

import (
	"context"
	"fmt"

	"github.com/DanteArceneaux/wegovy/internal/dates"
	"github.com/DanteArceneaux/wegovy/internal/metrics"
	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
)

// SummaryService assembles the derived values the dashboard shows for a
// selected date: nutrition and hydration totals against goals, the
// injection cycle day, and weight progress.
type SummaryService struct {
	settingsRepo repository.SettingsRepository
	shotRepo     repository.ShotRepository
	weightRepo   repository.WeightRepository
	logRepo      repository.DailyLogRepository
}

func NewSummaryService(
	settingsRepo repository.SettingsRepository,
	shotRepo repository.ShotRepository,
	weightRepo repository.WeightRepository,
	logRepo repository.DailyLogRepository,
) *SummaryService {
	return &SummaryService{
		settingsRepo: settingsRepo,
		shotRepo:     shotRepo,
		weightRepo:   weightRepo,
		logRepo:      logRepo,
	}
}

type DaySummary struct {
	Date          string          `json:"date"`
	DateReadable  string          `json:"dateReadable"`
	Log           models.DailyLog `json:"log"`
	Settings      models.Settings `json:"settings"`
	CycleDay      int             `json:"cycleDay"`
	CycleLength   int             `json:"cycleLength"`
	CurrentWeight float64         `json:"currentWeight"`
	TotalLost     string          `json:"totalLost"`
	BMI           string          `json:"bmi"`
}

// DaySummary computes the display values for one date from entity
// snapshots. Current weight is "as of" the viewed date, so browsing to a
// past day shows the weight known then.
func (service *SummaryService) DaySummary(ctx context.Context, userID, date string) (DaySummary, error) {
	settings, err := service.settingsRepo.Get(ctx, userID)
	if err != nil {
		return DaySummary{}, fmt.Errorf("loading settings: %w", err)
	}
	shots, err := service.shotRepo.FindAll(ctx, userID)
	if err != nil {
		return DaySummary{}, fmt.Errorf("loading shots: %w", err)
	}
	weights, err := service.weightRepo.FindAll(ctx, userID)
	if err != nil {
		return DaySummary{}, fmt.Errorf("loading weight entries: %w", err)
	}
	log, err := service.logRepo.Find(ctx, userID, date)
	if err != nil {
		return DaySummary{}, fmt.Errorf("loading daily log: %w", err)
	}

	currentWeight := metrics.CurrentWeightAsOf(date, weights, settings.StartWeight)

	return DaySummary{
		Date:          date,
		DateReadable:  dates.FormatReadable(date),
		Log:           log,
		Settings:      settings,
		CycleDay:      metrics.CycleDayForDate(date, shots),
		CycleLength:   metrics.CycleLengthDays,
		CurrentWeight: currentWeight,
		TotalLost:     metrics.TotalLost(settings.StartWeight, currentWeight),
		BMI:           metrics.CalculateBMI(currentWeight, settings.HeightFt, settings.HeightIn),
	}, nil
}
