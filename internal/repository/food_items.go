package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DanteArceneaux/wegovy/internal/models"
	"github.com/google/uuid"
)

type FoodItemRepository interface {
	FindByDate(ctx context.Context, userID, date string) ([]models.FoodItem, error)
	CreateWithTotals(ctx context.Context, userID string, item models.FoodItem) (models.FoodItem, error)
	DeleteWithTotals(ctx context.Context, userID, date, id string, calories, protein int) error
}

type SQLiteFoodItemRepository struct {
	database *sql.DB
}

func NewFoodItemRepository(database *sql.DB) *SQLiteFoodItemRepository {
	return &SQLiteFoodItemRepository{database: database}
}

func (repository *SQLiteFoodItemRepository) FindByDate(ctx context.Context, userID, date string) ([]models.FoodItem, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, name, calories, protein, date, created_at
		FROM food_items WHERE user_id = ? AND date = ?
		ORDER BY created_at ASC`, userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("finding food items: %w", err)
	}
	defer rows.Close()

	var items []models.FoodItem
	for rows.Next() {
		var item models.FoodItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Calories, &item.Protein, &item.Date, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning food item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateWithTotals inserts the food item and increments the owning daily
// log's calorie and protein counters in a single transaction, so the
// counters never drift from the item set. Sibling log fields (water,
// symptoms, notes) are untouched.
func (repository *SQLiteFoodItemRepository) CreateWithTotals(ctx context.Context, userID string, item models.FoodItem) (models.FoodItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("beginning food creation: %w", err)
	}
	defer transaction.Rollback()

	if _, err := transaction.ExecContext(ctx,
		`INSERT INTO food_items (id, user_id, date, name, calories, protein, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, userID, item.Date, item.Name, item.Calories, item.Protein, item.CreatedAt,
	); err != nil {
		return models.FoodItem{}, fmt.Errorf("creating food item: %w", err)
	}

	if err := ensureRow(ctx, transaction, userID, item.Date); err != nil {
		return models.FoodItem{}, err
	}
	if _, err := transaction.ExecContext(ctx,
		`UPDATE daily_logs SET calories = calories + ?, protein = protein + ?, updated_at = ?
		WHERE user_id = ? AND date = ?`,
		item.Calories, item.Protein, time.Now(), userID, item.Date,
	); err != nil {
		return models.FoodItem{}, fmt.Errorf("incrementing daily totals: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return models.FoodItem{}, fmt.Errorf("committing food creation: %w", err)
	}
	return item, nil
}

// DeleteWithTotals removes the food item and decrements the daily log by the
// calorie and protein amounts captured when the item was created. The
// amounts come from the caller rather than a re-read because the row is
// going away in the same transaction; counters clamp at zero.
func (repository *SQLiteFoodItemRepository) DeleteWithTotals(ctx context.Context, userID, date, id string, calories, protein int) error {
	transaction, err := repository.database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning food deletion: %w", err)
	}
	defer transaction.Rollback()

	if _, err := transaction.ExecContext(ctx,
		"DELETE FROM food_items WHERE user_id = ? AND id = ?", userID, id,
	); err != nil {
		return fmt.Errorf("deleting food item: %w", err)
	}

	if err := ensureRow(ctx, transaction, userID, date); err != nil {
		return err
	}
	if _, err := transaction.ExecContext(ctx,
		`UPDATE daily_logs SET calories = MAX(0, calories - ?), protein = MAX(0, protein - ?), updated_at = ?
		WHERE user_id = ? AND date = ?`,
		calories, protein, time.Now(), userID, date,
	); err != nil {
		return fmt.Errorf("decrementing daily totals: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("committing food deletion: %w", err)
	}
	return nil
}
