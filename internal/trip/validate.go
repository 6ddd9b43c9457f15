package trip

import (
	"errors"
	"fmt"
	"strings"

	"sicily/internal/model"
)

// ErrNoTrip is returned when validating a nil trip.
var ErrNoTrip = errors.New("no trip")

// Validate checks the dataset invariants: day numbers are unique and
// contiguous starting at 1, and every day has a named dinner.
// All violations are reported together.
func Validate(t *model.Trip) error {
	if t == nil {
		return ErrNoTrip
	}
	if len(t.Days) == 0 {
		return errors.New("trip has no days")
	}

	var errs []error
	seen := make(map[int]bool, len(t.Days))
	for i, d := range t.Days {
		if seen[d.Day] {
			errs = append(errs, fmt.Errorf("day %d: duplicate day number", d.Day))
		}
		seen[d.Day] = true
		if d.Day != i+1 {
			errs = append(errs, fmt.Errorf("day %d: expected day number %d at position %d", d.Day, i+1, i))
		}
		if strings.TrimSpace(d.Meals.Dinner.Name) == "" {
			errs = append(errs, fmt.Errorf("day %d: missing dinner", d.Day))
		}
		if d.Meals.Lunch != nil && strings.TrimSpace(d.Meals.Lunch.Name) == "" {
			errs = append(errs, fmt.Errorf("day %d: lunch entry without a name", d.Day))
		}
	}
	return errors.Join(errs...)
}
