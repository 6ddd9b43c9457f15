package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sicily/internal/db"
	"sicily/internal/trip"
)

func TestMarkdown_ContainsEveryDay(t *testing.T) {
	tr := trip.Sicily()
	md := Markdown(tr)

	for _, d := range tr.Days {
		if !strings.Contains(md, d.Title) {
			t.Fatalf("markdown missing day title %q", d.Title)
		}
	}
	for _, want := range []string{"# Sicily Holiday Planner", "## Accommodation Options", "## Transportation Guide", "## Budget Breakdown (2 People)", "## Essential Travel Tips", "[Compare Rental Cars](https://www.rentalcars.com)"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q", want)
		}
	}
}

func TestDayMarkdown(t *testing.T) {
	tr := trip.Sicily()

	day3, _ := tr.Day(3)
	md := DayMarkdown(day3)
	if !strings.HasPrefix(md, "# Day 3: Medieval Erice & Wine Tasting\n") {
		t.Fatalf("unexpected heading:\n%s", md)
	}
	if !strings.Contains(md, "**Dinner:** Peppe's Restaurant") {
		t.Fatalf("day 3 should list its dinner:\n%s", md)
	}

	day7, _ := tr.Day(7)
	md = DayMarkdown(day7)
	if strings.Contains(md, "**Lunch:**") {
		t.Fatalf("day 7 has no lunch:\n%s", md)
	}
	if !strings.Contains(md, "**Dinner:** La Caravella") {
		t.Fatalf("day 7 should list La Caravella:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	tr := trip.Sicily()
	out, err := HTML(tr)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	page := string(out)

	if !strings.Contains(page, "<title>"+PageTitle+"</title>") {
		t.Fatalf("missing page title")
	}
	for _, d := range tr.Days {
		want := strings.ReplaceAll(d.Title, "&", "&amp;")
		if !strings.Contains(page, want) {
			t.Fatalf("html missing day title %q", want)
		}
	}
	if !strings.Contains(page, "<table>") {
		t.Fatalf("budget table should render as a GFM table")
	}
}

func TestHTML_NilTrip(t *testing.T) {
	if _, err := HTML(nil); err == nil {
		t.Fatalf("expected an error for a nil trip")
	}
}

func TestSQLite_WritesFreshDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sicily.db")

	if err := os.WriteFile(path, []byte("not a database"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	// Exporting twice must not duplicate rows.
	for i := 0; i < 2; i++ {
		if err := SQLite(ctx, path, trip.Sicily()); err != nil {
			t.Fatalf("SQLite export %d: %v", i+1, err)
		}
	}

	conn, err := db.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer conn.Close()

	days, err := db.ListDays(ctx, conn)
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 day rows, got %d", len(days))
	}

	lunches, err := db.ListRestaurants(ctx, conn, db.MealLunch)
	if err != nil {
		t.Fatalf("ListRestaurants: %v", err)
	}
	if len(lunches) != 6 {
		t.Fatalf("expected 6 lunch rows, got %d", len(lunches))
	}
}
