package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// App holds CLI configuration shared by every command.
type App struct {
	Day      int
	Inline   bool
	Style    string
	DebugLog string
	Version  string
}

// NewRootCmd builds the sicily command tree. Running it without a
// subcommand starts the interactive planner.
func NewRootCmd(version string) *cobra.Command {
	// Load .env files first so env-based flag defaults see them.
	loadDotEnv(".env")
	loadDotEnv(".env.local")

	app := &App{Version: version}

	cmd := &cobra.Command{
		Use:           "sicily",
		Short:         "7 days in Castellammare del Golfo, in your terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Browse the itinerary
  sicily

  # Open straight on day 3
  sicily --day 3

  # Print one day as Markdown
  sicily show --day 5 --plain

  # Write the whole trip to a SQLite file
  sicily export --format sqlite --out sicily.db
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().IntVar(&app.Day, "day", envIntOr("SICILY_DAY", 1), "Day to select on start (1-7)")
	cmd.PersistentFlags().BoolVar(&app.Inline, "inline", envBoolOr("SICILY_INLINE", false), "Run inline instead of in the alternate screen")
	cmd.PersistentFlags().StringVar(&app.Style, "style", envOr("SICILY_GLAMOUR_STYLE", "dark"), "Markdown style for show (dark|light|dracula|tokyo-night|pink|ascii|notty)")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr("SICILY_DEBUG_LOG", ""), "Write a debug log to this file")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDaysCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envIntOr(k string, d int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: not a number\n", k, v)
		return d
	}
	return n
}

func envBoolOr(k string, d bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring %s=%q: not a boolean\n", k, v)
		return d
	}
	return b
}
