package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"sicily/internal/trip"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := Open(context.Background(), filepath.Join(t.TempDir(), "trip.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSaveTrip_StoresDaysAndMeals(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	if err := SaveTrip(ctx, conn, trip.Sicily()); err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}

	days, err := ListDays(ctx, conn)
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[2].Day != 3 || days[2].Title != "Medieval Erice & Wine Tasting" {
		t.Fatalf("unexpected third day: %+v", days[2])
	}
	for _, d := range days {
		if d.Activities == 0 {
			t.Fatalf("day %d stored without activities", d.Day)
		}
	}

	lunches, err := ListRestaurants(ctx, conn, MealLunch)
	if err != nil {
		t.Fatalf("ListRestaurants(lunch): %v", err)
	}
	if len(lunches) != 6 {
		t.Fatalf("expected 6 lunches, got %d", len(lunches))
	}
	for _, l := range lunches {
		if l.Day == 7 {
			t.Fatalf("day 7 should have no lunch row")
		}
	}

	dinners, err := ListRestaurants(ctx, conn, MealDinner)
	if err != nil {
		t.Fatalf("ListRestaurants(dinner): %v", err)
	}
	if len(dinners) != 7 {
		t.Fatalf("expected 7 dinners, got %d", len(dinners))
	}
	if dinners[6].Name != "La Caravella" {
		t.Fatalf("day 7 dinner = %q", dinners[6].Name)
	}

	all, err := ListRestaurants(ctx, conn, "")
	if err != nil {
		t.Fatalf("ListRestaurants(all): %v", err)
	}
	if len(all) != 13 {
		t.Fatalf("expected 13 restaurant rows, got %d", len(all))
	}
	if all[0].Meal != MealLunch || all[1].Meal != MealDinner {
		t.Fatalf("lunch should sort before dinner within a day: %s, %s", all[0].Meal, all[1].Meal)
	}
}

func TestSaveTrip_StoresAccommodationFeatures(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	tr := trip.Sicily()

	if err := SaveTrip(ctx, conn, tr); err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}

	var accs, features int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM accommodations`).Scan(&accs); err != nil {
		t.Fatalf("count accommodations: %v", err)
	}
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM accommodation_features`).Scan(&features); err != nil {
		t.Fatalf("count features: %v", err)
	}

	wantFeatures := 0
	for _, a := range tr.Accommodations {
		wantFeatures += len(a.Features)
	}
	if accs != len(tr.Accommodations) || features != wantFeatures {
		t.Fatalf("got %d accommodations / %d features, want %d / %d", accs, features, len(tr.Accommodations), wantFeatures)
	}
}

func TestSaveTrip_DuplicateDayRollsBack(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	tr := trip.Sicily()
	tr.Days = append(tr.Days, tr.Days[0])

	if err := SaveTrip(ctx, conn, tr); err == nil {
		t.Fatalf("expected an error for a duplicate day")
	}

	days, err := ListDays(ctx, conn)
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("failed save should leave no rows, got %d", len(days))
	}
}
