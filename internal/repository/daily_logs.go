package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DanteArceneaux/wegovy/internal/models"
)

type DailyLogRepository interface {
	Find(ctx context.Context, userID, date string) (models.DailyLog, error)
	AdjustWater(ctx context.Context, userID, date string, deltaOz int) (models.DailyLog, error)
	SetSymptoms(ctx context.Context, userID, date string, symptoms map[string]int) error
	SetNotes(ctx context.Context, userID, date, notes string) error
}

type SQLiteDailyLogRepository struct {
	database *sql.DB
}

func NewDailyLogRepository(database *sql.DB) *SQLiteDailyLogRepository {
	return &SQLiteDailyLogRepository{database: database}
}

// Find returns the log for a date, or an empty log when none has been
// written yet. Daily logs are created lazily on first mutation.
func (repository *SQLiteDailyLogRepository) Find(ctx context.Context, userID, date string) (models.DailyLog, error) {
	var log models.DailyLog
	var symptomsJSON string
	err := repository.database.QueryRowContext(ctx,
		`SELECT date, calories, protein, water, symptoms, notes
		FROM daily_logs WHERE user_id = ? AND date = ?`, userID, date,
	).Scan(&log.Date, &log.Calories, &log.Protein, &log.Water, &symptomsJSON, &log.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EmptyDailyLog(date), nil
	}
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("finding daily log: %w", err)
	}
	if err := json.Unmarshal([]byte(symptomsJSON), &log.Symptoms); err != nil {
		return models.DailyLog{}, fmt.Errorf("unmarshalling symptoms: %w", err)
	}
	if log.Symptoms == nil {
		log.Symptoms = map[string]int{}
	}
	return log, nil
}

// ensureRow materializes the lazily-created log row so that column-level
// updates have something to land on. Safe to call repeatedly.
func ensureRow(ctx context.Context, execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}, userID, date string) error {
	_, err := execer.ExecContext(ctx,
		`INSERT INTO daily_logs (user_id, date, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO NOTHING`,
		userID, date, time.Now(), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ensuring daily log row: %w", err)
	}
	return nil
}

// AdjustWater adds deltaOz to the stored water total, clamping at zero, and
// returns the updated log. Only the water column is touched; calories,
// protein, symptoms and notes are left as they are.
func (repository *SQLiteDailyLogRepository) AdjustWater(ctx context.Context, userID, date string, deltaOz int) (models.DailyLog, error) {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("beginning water adjustment: %w", err)
	}
	defer transaction.Rollback()

	if err := ensureRow(ctx, transaction, userID, date); err != nil {
		return models.DailyLog{}, err
	}

	if _, err := transaction.ExecContext(ctx,
		`UPDATE daily_logs SET water = MAX(0, water + ?), updated_at = ?
		WHERE user_id = ? AND date = ?`,
		deltaOz, time.Now(), userID, date,
	); err != nil {
		return models.DailyLog{}, fmt.Errorf("adjusting water: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return models.DailyLog{}, fmt.Errorf("committing water adjustment: %w", err)
	}

	return repository.Find(ctx, userID, date)
}

// SetSymptoms replaces the symptom map for a date without touching any
// sibling field.
func (repository *SQLiteDailyLogRepository) SetSymptoms(ctx context.Context, userID, date string, symptoms map[string]int) error {
	if symptoms == nil {
		symptoms = map[string]int{}
	}
	symptomsJSON, err := json.Marshal(symptoms)
	if err != nil {
		return fmt.Errorf("marshalling symptoms: %w", err)
	}

	if err := ensureRow(ctx, repository.database, userID, date); err != nil {
		return err
	}
	if _, err := repository.database.ExecContext(ctx,
		`UPDATE daily_logs SET symptoms = ?, updated_at = ? WHERE user_id = ? AND date = ?`,
		string(symptomsJSON), time.Now(), userID, date,
	); err != nil {
		return fmt.Errorf("setting symptoms: %w", err)
	}
	return nil
}

// SetNotes replaces the journal text for a date without touching any
// sibling field.
func (repository *SQLiteDailyLogRepository) SetNotes(ctx context.Context, userID, date, notes string) error {
	if err := ensureRow(ctx, repository.database, userID, date); err != nil {
		return err
	}
	if _, err := repository.database.ExecContext(ctx,
		`UPDATE daily_logs SET notes = ?, updated_at = ? WHERE user_id = ? AND date = ?`,
		notes, time.Now(), userID, date,
	); err != nil {
		return fmt.Errorf("setting notes: %w", err)
	}
	return nil
}
