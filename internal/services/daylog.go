package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/DanteArceneaux/wegovy/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

// DayLogService owns every mutation of a date's DailyLog. Food creation and
// deletion carry the corresponding counter change in the same transaction,
// so the running totals track the live item set instead of drifting when a
// step fails partway.
type DayLogService struct {
	logRepo  repository.DailyLogRepository
	foodRepo repository.FoodItemRepository
}

func NewDayLogService(logRepo repository.DailyLogRepository, foodRepo repository.FoodItemRepository) *DayLogService {
	return &DayLogService{logRepo: logRepo, foodRepo: foodRepo}
}

// DaySnapshot pairs a date's aggregate log with the food items behind its
// nutrition counters.
type DaySnapshot struct {
	Log   models.DailyLog   `json:"log"`
	Items []models.FoodItem `json:"items"`
}

func (service *DayLogService) Snapshot(ctx context.Context, userID, date string) (DaySnapshot, error) {
	log, err := service.logRepo.Find(ctx, userID, date)
	if err != nil {
		return DaySnapshot{}, fmt.Errorf("loading daily log: %w", err)
	}
	items, err := service.foodRepo.FindByDate(ctx, userID, date)
	if err != nil {
		return DaySnapshot{}, fmt.Errorf("loading food items: %w", err)
	}
	if items == nil {
		items = []models.FoodItem{}
	}
	return DaySnapshot{Log: log, Items: items}, nil
}

// AddFood logs a food item against a date and bumps the date's calorie and
// protein totals by the item's amounts.
func (service *DayLogService) AddFood(ctx context.Context, userID, date, name string, calories, protein int) (models.FoodItem, error) {
	if name == "" || calories < 0 || protein < 0 {
		return models.FoodItem{}, ErrInvalidInput
	}
	item, err := service.foodRepo.CreateWithTotals(ctx, userID, models.FoodItem{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Date:     date,
	})
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("adding food: %w", err)
	}
	return item, nil
}

// DeleteFood removes a logged item and subtracts the amounts it contributed
// when created. Callers pass those amounts back in because the item row is
// gone by the time the counters move; totals clamp at zero.
func (service *DayLogService) DeleteFood(ctx context.Context, userID, date, itemID string, calories, protein int) error {
	if itemID == "" {
		return ErrInvalidInput
	}
	if err := service.foodRepo.DeleteWithTotals(ctx, userID, date, itemID, calories, protein); err != nil {
		return fmt.Errorf("deleting food: %w", err)
	}
	return nil
}

// AdjustWater shifts the date's water total by deltaOz (negative to remove),
// never below zero, and returns the updated log.
func (service *DayLogService) AdjustWater(ctx context.Context, userID, date string, deltaOz int) (models.DailyLog, error) {
	log, err := service.logRepo.AdjustWater(ctx, userID, date, deltaOz)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("adjusting water: %w", err)
	}
	return log, nil
}

func (service *DayLogService) SetSymptoms(ctx context.Context, userID, date string, symptoms map[string]int) error {
	for name, level := range symptoms {
		if level < models.SeverityNone || level > models.SeveritySevere {
			return fmt.Errorf("%w: symptom %s level %d out of range", ErrInvalidInput, name, level)
		}
	}
	if err := service.logRepo.SetSymptoms(ctx, userID, date, symptoms); err != nil {
		return fmt.Errorf("setting symptoms: %w", err)
	}
	return nil
}

func (service *DayLogService) SetNotes(ctx context.Context, userID, date, notes string) error {
	if err := service.logRepo.SetNotes(ctx, userID, date, notes); err != nil {
		return fmt.Errorf("setting notes: %w", err)
	}
	return nil
}
