package db

import (
	"context"
	"database/sql"
	"fmt"

	"sicily/internal/model"
)

// Meal slots stored in restaurants.meal.
const (
	MealLunch  = "lunch"
	MealDinner = "dinner"
)

func insertRestaurant(ctx context.Context, tx *sql.Tx, day int, meal string, r model.Restaurant) error {
	query := `
		INSERT INTO restaurants (day, meal, name, cuisine, price_range, specialty, booking, accessibility)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query, day, meal, r.Name,
		nullIfEmpty(r.Cuisine), nullIfEmpty(r.PriceRange), nullIfEmpty(r.Specialty),
		nullIfEmpty(r.Booking), nullIfEmpty(r.Accessibility)); err != nil {
		return fmt.Errorf("failed to insert %s for day %d: %w", meal, day, err)
	}
	return nil
}

// RestaurantRow is a stored restaurant with its day and meal slot.
type RestaurantRow struct {
	Day  int
	Meal string
	model.Restaurant
}

// ListRestaurants returns stored restaurants ordered by day, optionally
// filtered to one meal slot ("" for all).
func ListRestaurants(ctx context.Context, db *sql.DB, meal string) ([]RestaurantRow, error) {
	query := `
		SELECT
			day,
			meal,
			name,
			COALESCE(cuisine, ''),
			COALESCE(price_range, ''),
			COALESCE(specialty, ''),
			COALESCE(booking, ''),
			COALESCE(accessibility, '')
		FROM restaurants
		WHERE (? = '' OR meal = ?)
		ORDER BY day, meal DESC
	`

	rows, err := db.QueryContext(ctx, query, meal, meal)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var results []RestaurantRow
	for rows.Next() {
		var r RestaurantRow
		if err := rows.Scan(&r.Day, &r.Meal, &r.Name, &r.Cuisine, &r.PriceRange, &r.Specialty, &r.Booking, &r.Accessibility); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant rows: %w", err)
	}

	return results, nil
}
