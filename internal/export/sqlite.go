package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sicily/internal/db"
	"sicily/internal/model"
)

// SQLite writes the trip into a fresh SQLite database at path, replacing any
// existing file.
func SQLite(ctx context.Context, path string, trip *model.Trip) error {
	if trip == nil {
		return fmt.Errorf("failed to export sqlite: no trip")
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove existing %s: %w", path, err)
	}

	conn, err := db.Open(ctx, path)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.SaveTrip(ctx, conn, trip); err != nil {
		return err
	}
	return conn.Close()
}
