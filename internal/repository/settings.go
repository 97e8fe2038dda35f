package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DanteArceneaux/wegovy/internal/models"
)

type SettingsRepository interface {
	Get(ctx context.Context, userID string) (models.Settings, error)
	Save(ctx context.Context, userID string, settings models.Settings) error
}

type SQLiteSettingsRepository struct {
	database *sql.DB
}

func NewSettingsRepository(database *sql.DB) *SQLiteSettingsRepository {
	return &SQLiteSettingsRepository{database: database}
}

// Get returns the user's profile settings, falling back to the defaults when
// no row exists yet. The singleton is only materialized on save.
func (repository *SQLiteSettingsRepository) Get(ctx context.Context, userID string) (models.Settings, error) {
	var settings models.Settings
	err := repository.database.QueryRowContext(ctx,
		`SELECT calorie_goal, protein_goal, water_goal, height_ft, height_in,
			start_weight, goal_weight, updated_at
		FROM settings WHERE user_id = ?`, userID,
	).Scan(
		&settings.CalorieGoal, &settings.ProteinGoal, &settings.WaterGoal,
		&settings.HeightFt, &settings.HeightIn,
		&settings.StartWeight, &settings.GoalWeight, &settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("getting settings: %w", err)
	}
	return settings, nil
}

// Save overwrites the whole settings document.
func (repository *SQLiteSettingsRepository) Save(ctx context.Context, userID string, settings models.Settings) error {
	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO settings (user_id, calorie_goal, protein_goal, water_goal,
			height_ft, height_in, start_weight, goal_weight, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			calorie_goal = excluded.calorie_goal,
			protein_goal = excluded.protein_goal,
			water_goal = excluded.water_goal,
			height_ft = excluded.height_ft,
			height_in = excluded.height_in,
			start_weight = excluded.start_weight,
			goal_weight = excluded.goal_weight,
			updated_at = excluded.updated_at`,
		userID, settings.CalorieGoal, settings.ProteinGoal, settings.WaterGoal,
		settings.HeightFt, settings.HeightIn, settings.StartWeight, settings.GoalWeight,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
