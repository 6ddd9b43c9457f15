package cmd

import (
	"fmt"
	"io"
	"log"

	"sicily/internal/trip"
	"sicily/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func runTUI(app *App) error {
	t := trip.Sicily()
	if err := trip.Validate(t); err != nil {
		return fmt.Errorf("invalid itinerary: %w", err)
	}

	// The TUI owns the terminal, so log output goes to a file or nowhere.
	if app.DebugLog != "" {
		f, err := tea.LogToFile(app.DebugLog, "sicily")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("starting %s on day %d", app.Version, app.Day)

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !app.Inline {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(ui.New(t, ui.WithStartDay(app.Day)), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
