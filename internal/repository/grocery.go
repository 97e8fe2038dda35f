package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DanteArceneaux/wegovy/internal/models"
)

type GroceryRepository interface {
	Get(ctx context.Context, userID string) (models.GroceryState, error)
	Toggle(ctx context.Context, userID, item string) (bool, error)
	Reset(ctx context.Context, userID string) error
}

type SQLiteGroceryRepository struct {
	database *sql.DB
}

func NewGroceryRepository(database *sql.DB) *SQLiteGroceryRepository {
	return &SQLiteGroceryRepository{database: database}
}

// Get returns the bought flags for every item that has ever been toggled.
// Items absent from the map are unbought.
func (repository *SQLiteGroceryRepository) Get(ctx context.Context, userID string) (models.GroceryState, error) {
	rows, err := repository.database.QueryContext(ctx,
		"SELECT item, bought FROM grocery_state WHERE user_id = ?", userID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting grocery state: %w", err)
	}
	defer rows.Close()

	state := models.GroceryState{}
	for rows.Next() {
		var item string
		var bought bool
		if err := rows.Scan(&item, &bought); err != nil {
			return nil, fmt.Errorf("scanning grocery item: %w", err)
		}
		state[item] = bought
	}
	return state, rows.Err()
}

// Toggle flips an item's bought flag and returns the new value. Never-seen
// items start unbought, so the first toggle marks them bought.
func (repository *SQLiteGroceryRepository) Toggle(ctx context.Context, userID, item string) (bool, error) {
	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO grocery_state (user_id, item, bought) VALUES (?, ?, 1)
		ON CONFLICT(user_id, item) DO UPDATE SET bought = NOT bought`,
		userID, item,
	)
	if err != nil {
		return false, fmt.Errorf("toggling grocery item: %w", err)
	}

	var bought bool
	err = repository.database.QueryRowContext(ctx,
		"SELECT bought FROM grocery_state WHERE user_id = ? AND item = ?", userID, item,
	).Scan(&bought)
	if err != nil {
		return false, fmt.Errorf("reading toggled grocery item: %w", err)
	}
	return bought, nil
}

// Reset clears the whole list back to unbought.
func (repository *SQLiteGroceryRepository) Reset(ctx context.Context, userID string) error {
	_, err := repository.database.ExecContext(ctx,
		"DELETE FROM grocery_state WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("resetting grocery list: %w", err)
	}
	return nil
}
