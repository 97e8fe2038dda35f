package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/google/uuid"
)

type ShotRepository interface {
	FindAll(ctx context.Context, userID string) ([]models.Shot, error)
	FindByID(ctx context.Context, userID, id string) (models.Shot, error)
	Create(ctx context.Context, userID string, shot models.Shot) (models.Shot, error)
	Update(ctx context.Context, userID string, shot models.Shot) error
	Delete(ctx context.Context, userID, id string) error
}

type SQLiteShotRepository struct {
	database *sql.DB
}

func NewShotRepository(database *sql.DB) *SQLiteShotRepository {
	return &SQLiteShotRepository{database: database}
}

// FindAll returns the user's shots newest first, ties on date broken by
// time of day.
func (repository *SQLiteShotRepository) FindAll(ctx context.Context, userID string) ([]models.Shot, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, date, time, dosage, site, notes, created_at, updated_at
		FROM shots WHERE user_id = ?
		ORDER BY date DESC, time DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding shots: %w", err)
	}
	defer rows.Close()

	var shots []models.Shot
	for rows.Next() {
		var shot models.Shot
		if err := rows.Scan(
			&shot.ID, &shot.Date, &shot.Time, &shot.Dosage, &shot.Site,
			&shot.Notes, &shot.CreatedAt, &shot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning shot: %w", err)
		}
		shots = append(shots, shot)
	}
	return shots, rows.Err()
}

func (repository *SQLiteShotRepository) FindByID(ctx context.Context, userID, id string) (models.Shot, error) {
	var shot models.Shot
	err := repository.database.QueryRowContext(ctx,
		`SELECT id, date, time, dosage, site, notes, created_at, updated_at
		FROM shots WHERE user_id = ? AND id = ?`, userID, id,
	).Scan(
		&shot.ID, &shot.Date, &shot.Time, &shot.Dosage, &shot.Site,
		&shot.Notes, &shot.CreatedAt, &shot.UpdatedAt,
	)
	if err != nil {
		return models.Shot{}, fmt.Errorf("finding shot by id: %w", err)
	}
	return shot, nil
}

func (repository *SQLiteShotRepository) Create(ctx context.Context, userID string, shot models.Shot) (models.Shot, error) {
	if shot.ID == "" {
		shot.ID = uuid.New().String()
	}
	now := time.Now()
	shot.CreatedAt = now
	shot.UpdatedAt = now

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO shots (id, user_id, date, time, dosage, site, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		shot.ID, userID, shot.Date, shot.Time, shot.Dosage, shot.Site,
		shot.Notes, shot.CreatedAt, shot.UpdatedAt,
	)
	if err != nil {
		return models.Shot{}, fmt.Errorf("creating shot: %w", err)
	}
	return shot, nil
}

// Update overwrites every user-editable field of an existing shot.
func (repository *SQLiteShotRepository) Update(ctx context.Context, userID string, shot models.Shot) error {
	shot.UpdatedAt = time.Now()

	result, err := repository.database.ExecContext(ctx,
		`UPDATE shots SET date = ?, time = ?, dosage = ?, site = ?, notes = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`,
		shot.Date, shot.Time, shot.Dosage, shot.Site, shot.Notes, shot.UpdatedAt,
		userID, shot.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating shot: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating shot: %w", sql.ErrNoRows)
	}
	return nil
}

func (repository *SQLiteShotRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := repository.database.ExecContext(ctx,
		"DELETE FROM shots WHERE user_id = ? AND id = ?", userID, id)
	if err != nil {
		return fmt.Errorf("deleting shot: %w", err)
	}
	return nil
}
