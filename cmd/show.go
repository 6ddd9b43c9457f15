package cmd

import (
	"fmt"
	"io"
	"os"

	"sicily/internal/export"
	"sicily/internal/trip"
	"sicily/internal/ui"
	"sicily/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultShowWidth = 80

func newShowCmd(app *App) *cobra.Command {
	var plain bool
	var width int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one day of the itinerary",
		Long:  "Print the day selected with --day. A day without a plan prints nothing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, ok := trip.Sicily().Day(app.Day)
			if !ok {
				return nil
			}
			md := export.DayMarkdown(day)

			out := cmd.OutOrStdout()
			if plain {
				_, err := io.WriteString(out, md)
				return err
			}

			style := app.Style
			if !isTerminal(out) {
				style = "notty"
			}
			if width <= 0 {
				width = terminalWidth(out)
			}
			rendered, err := ui.RenderMarkdown(md, style, width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw Markdown")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (default: terminal width)")
	return cmd
}

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the days of the itinerary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, d := range trip.Sicily().Days {
				marker := " "
				if d.Day == app.Day {
					marker = "*"
				}
				if _, err := fmt.Fprintf(out, "%s %-6s %-22s %s\n", marker, util.FormatDayLabel(d.Day), d.Theme, d.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultShowWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultShowWidth
	}
	return util.Clamp(width, 40, 120)
}
