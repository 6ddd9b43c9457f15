package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sicily/internal/db"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, k := range []string{"SICILY_DAY", "SICILY_INLINE", "SICILY_GLAMOUR_STYLE", "SICILY_DEBUG_LOG"} {
		t.Setenv(k, "")
	}
	cmd := NewRootCmd("test")
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestShow_PlainPrintsDayMarkdown(t *testing.T) {
	out, _, err := runCLI(t, "show", "--day", "3", "--plain")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(out, "# Day 3: Medieval Erice & Wine Tasting") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Peppe's Restaurant") {
		t.Fatalf("expected day 3 dinner in output")
	}
}

func TestShow_MissingDayPrintsNothing(t *testing.T) {
	for _, day := range []string{"0", "8", "-1"} {
		out, _, err := runCLI(t, "show", "--day", day, "--plain")
		if err != nil {
			t.Fatalf("show --day %s: %v", day, err)
		}
		if out != "" {
			t.Fatalf("show --day %s should print nothing, got %q", day, out)
		}
	}
}

func TestShow_RendersMarkdown(t *testing.T) {
	out, _, err := runCLI(t, "show", "--day", "7", "--width", "60")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "La Caravella") {
		t.Fatalf("expected day 7 dinner in rendered output:\n%s", out)
	}
}

func TestShow_NonTerminalIgnoresStyle(t *testing.T) {
	out, _, err := runCLI(t, "show", "--day", "1", "--width", "60", "--style", "no-such-style")
	// Writing to a buffer forces the notty style, so the configured one is unused.
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Osteria Lo Bianco") {
		t.Fatalf("expected day 1 dinner, got:\n%s", out)
	}
}

func TestShow_DayFromEnv(t *testing.T) {
	t.Setenv("SICILY_DAY", "5")
	cmd := NewRootCmd("test")
	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetArgs([]string{"show", "--plain"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(outBuf.String(), "# Day 5: San Vito Lo Capo & Salt Pans") {
		t.Fatalf("SICILY_DAY should select day 5, got:\n%s", outBuf.String())
	}
}

func TestDays_ListsEveryDay(t *testing.T) {
	out, _, err := runCLI(t, "days", "--day", "2")
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "* Day 2") {
		t.Fatalf("selected day should be marked, got %q", lines[1])
	}
	if !strings.Contains(lines[6], "Final Day & Departure") {
		t.Fatalf("unexpected last line %q", lines[6])
	}
}

func TestExport_Formats(t *testing.T) {
	dir := t.TempDir()

	mdPath := filepath.Join(dir, "trip.md")
	if _, _, err := runCLI(t, "export", "--format", "md", "--out", mdPath); err != nil {
		t.Fatalf("export md: %v", err)
	}
	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read md: %v", err)
	}
	if !strings.Contains(string(md), "Segesta & Wine Country") {
		t.Fatalf("markdown export missing day 6")
	}

	htmlPath := filepath.Join(dir, "trip.html")
	if _, _, err := runCLI(t, "export", "--format", "html", "--out", htmlPath); err != nil {
		t.Fatalf("export html: %v", err)
	}
	page, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	if !strings.Contains(string(page), "<title>Sicily Holiday Planner - Castellammare del Golfo</title>") {
		t.Fatalf("html export missing title")
	}

	dbPath := filepath.Join(dir, "trip.db")
	_, stderr, err := runCLI(t, "export", "--format", "sqlite", "--out", dbPath)
	if err != nil {
		t.Fatalf("export sqlite: %v", err)
	}
	if !strings.Contains(stderr, "7 days") {
		t.Fatalf("expected summary on stderr, got %q", stderr)
	}
	conn, err := db.Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer conn.Close()
	days, err := db.ListDays(context.Background(), conn)
	if err != nil {
		t.Fatalf("ListDays: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days in export, got %d", len(days))
	}
}

func TestExport_Errors(t *testing.T) {
	if _, _, err := runCLI(t, "export", "--format", "pdf", "--out", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, _, err := runCLI(t, "export", "--format", "md"); err == nil {
		t.Fatalf("expected error for missing --out")
	}
}
