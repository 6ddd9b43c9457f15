package util

import (
	"fmt"
	"strings"
)

// FormatDayLabel formats a day number for tabs and headings ("Day 3").
func FormatDayLabel(day int) string {
	return fmt.Sprintf("Day %d", day)
}

// FormatPerPerson appends the "per person" suffix to a price range.
func FormatPerPerson(priceRange string) string {
	priceRange = strings.TrimSpace(priceRange)
	if priceRange == "" {
		return "—"
	}
	return priceRange + " per person"
}

// FormatPhone prefixes a booking contact with a phone marker, or returns "".
func FormatPhone(booking string) string {
	booking = strings.TrimSpace(booking)
	if booking == "" {
		return ""
	}
	return "☎ " + booking
}

// OrDash returns s, or "—" when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
