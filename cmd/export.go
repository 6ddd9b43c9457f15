package cmd

import (
	"fmt"
	"os"
	"strings"

	"sicily/internal/export"
	"sicily/internal/trip"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole itinerary to a file",
		Example: strings.TrimSpace(`
  sicily export --format md --out sicily.md
  sicily export --format html --out sicily.html
  sicily export --format sqlite --out sicily.db
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(out) == "" {
				return fmt.Errorf("missing --out")
			}
			t := trip.Sicily()
			if err := trip.Validate(t); err != nil {
				return fmt.Errorf("invalid itinerary: %w", err)
			}

			switch strings.ToLower(strings.TrimSpace(format)) {
			case "md", "markdown":
				if err := os.WriteFile(out, []byte(export.Markdown(t)), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
			case "html":
				page, err := export.HTML(t)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, page, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
			case "sqlite", "db":
				if err := export.SQLite(cmd.Context(), out, t); err != nil {
					return fmt.Errorf("failed to export sqlite: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want md, html or sqlite)", format)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%s, %d days)\n", out, format, len(t.Days))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "md", "Output format (md|html|sqlite)")
	cmd.Flags().StringVar(&out, "out", "", "Output file path")
	return cmd
}
