package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/google/uuid"
)

type WeightRepository interface {
	FindAll(ctx context.Context, userID string) ([]models.WeightEntry, error)
	Create(ctx context.Context, userID string, entry models.WeightEntry) (models.WeightEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

type SQLiteWeightRepository struct {
	database *sql.DB
}

func NewWeightRepository(database *sql.DB) *SQLiteWeightRepository {
	return &SQLiteWeightRepository{database: database}
}

// FindAll returns weight entries in true chronological order: by calendar
// date first, then by when they were recorded. Entries logged out of order
// land where their date puts them, which is what trend computation needs.
func (repository *SQLiteWeightRepository) FindAll(ctx context.Context, userID string) ([]models.WeightEntry, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, date, weight, recorded_at
		FROM weight_entries WHERE user_id = ?
		ORDER BY date ASC, recorded_at ASC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding weight entries: %w", err)
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var entry models.WeightEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Weight, &entry.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning weight entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (repository *SQLiteWeightRepository) Create(ctx context.Context, userID string, entry models.WeightEntry) (models.WeightEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.RecordedAt = time.Now()

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO weight_entries (id, user_id, date, weight, recorded_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, userID, entry.Date, entry.Weight, entry.RecordedAt,
	)
	if err != nil {
		return models.WeightEntry{}, fmt.Errorf("creating weight entry: %w", err)
	}
	return entry, nil
}

func (repository *SQLiteWeightRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := repository.database.ExecContext(ctx,
		"DELETE FROM weight_entries WHERE user_id = ? AND id = ?", userID, id)
	if err != nil {
		return fmt.Errorf("deleting weight entry: %w", err)
	}
	return nil
}
