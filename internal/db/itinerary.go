package db

import (
	"context"
	"database/sql"
	"fmt"

	"sicily/internal/model"
)

// SaveTrip writes every day, accommodation and their children in a single
// transaction.
func SaveTrip(ctx context.Context, db *sql.DB, trip *model.Trip) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, d := range trip.Days {
		if err := insertDay(ctx, tx, d); err != nil {
			return err
		}
	}
	for _, acc := range trip.Accommodations {
		if err := insertAccommodation(ctx, tx, acc); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertDay(ctx context.Context, tx *sql.Tx, d model.DayPlan) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO days (day, title, theme) VALUES (?, ?, ?)`, d.Day, d.Title, d.Theme); err != nil {
		return fmt.Errorf("failed to insert day %d: %w", d.Day, err)
	}

	for i, a := range d.Activities {
		query := `
			INSERT INTO activities (day, position, time, title, description, duration, cost, accessibility, link)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, query, d.Day, i, a.Time, a.Title, a.Description,
			nullIfEmpty(a.Duration), nullIfEmpty(a.Cost), nullIfEmpty(a.Accessibility), nullIfEmpty(a.Link)); err != nil {
			return fmt.Errorf("failed to insert activity %q for day %d: %w", a.Title, d.Day, err)
		}
	}

	if d.Meals.Lunch != nil {
		if err := insertRestaurant(ctx, tx, d.Day, MealLunch, *d.Meals.Lunch); err != nil {
			return err
		}
	}
	if err := insertRestaurant(ctx, tx, d.Day, MealDinner, d.Meals.Dinner); err != nil {
		return err
	}

	for i, n := range d.Notes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO notes (day, position, body) VALUES (?, ?, ?)`, d.Day, i, n); err != nil {
			return fmt.Errorf("failed to insert note for day %d: %w", d.Day, err)
		}
	}
	return nil
}

func insertAccommodation(ctx context.Context, tx *sql.Tx, acc model.Accommodation) error {
	query := `
		INSERT INTO accommodations (name, type, price, booking, accessibility)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := tx.ExecContext(ctx, query, acc.Name,
		nullIfEmpty(acc.Type), nullIfEmpty(acc.Price), nullIfEmpty(acc.Booking), nullIfEmpty(acc.Accessibility))
	if err != nil {
		return fmt.Errorf("failed to insert accommodation %q: %w", acc.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get accommodation id: %w", err)
	}

	for _, f := range acc.Features {
		if _, err := tx.ExecContext(ctx, `INSERT INTO accommodation_features (accommodation_id, feature) VALUES (?, ?)`, id, f); err != nil {
			return fmt.Errorf("failed to insert feature for %q: %w", acc.Name, err)
		}
	}
	return nil
}

// nullIfEmpty stores blank optional text as NULL.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// DayRow is a day as stored in the days table, with child counts.
type DayRow struct {
	Day        int
	Title      string
	Theme      string
	Activities int
	Notes      int
}

// ListDays returns every stored day in day order.
func ListDays(ctx context.Context, db *sql.DB) ([]DayRow, error) {
	query := `
		SELECT
			d.day,
			d.title,
			d.theme,
			(SELECT COUNT(*) FROM activities a WHERE a.day = d.day),
			(SELECT COUNT(*) FROM notes n WHERE n.day = d.day)
		FROM days d
		ORDER BY d.day
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer rows.Close()

	var results []DayRow
	for rows.Next() {
		var r DayRow
		if err := rows.Scan(&r.Day, &r.Title, &r.Theme, &r.Activities, &r.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan day row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day rows: %w", err)
	}
	return results, nil
}
