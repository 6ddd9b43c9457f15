package ui

import (
	"strings"

	"sicily/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func renderOverlayTitle(title string, width int) string {
	left := SectionStyle.Render(title)
	right := HelpDescStyle.Render("esc ×")
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func renderBullets(items []string, bullet string, width int) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, lipgloss.NewStyle().Foreground(ColorSea).Render(bullet)+" "+NormalTextStyle.Render(item))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func renderAccommodationPanel(options []model.Accommodation, width int, focusedURL string) string {
	inner := max(20, width-8)

	sections := []string{renderOverlayTitle("⌂ Accommodation Options", inner)}
	for _, acc := range options {
		head := DayTitleStyle.Render(acc.Name)
		price := CostStyle.Render(acc.Price)
		gap := max(1, inner-lipgloss.Width(head)-lipgloss.Width(price))

		lines := []string{
			head + strings.Repeat(" ", gap) + price,
			HelpDescStyle.Render(acc.Type),
		}
		if len(acc.Features) > 0 {
			lines = append(lines, renderBullets(acc.Features, "•", inner))
		}
		if acc.Accessibility != "" {
			lines = append(lines, renderAccessibility(acc.Accessibility, inner))
		}
		if acc.Booking != "" {
			lines = append(lines, renderLink("Book Now", acc.Booking, acc.Booking == focusedURL))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return OverlayStyle.Width(width - 2).Render(strings.Join(sections, "\n\n"))
}

func renderTransportPanel(tr model.Transportation, width int, focusedURL string) string {
	inner := max(20, width-8)

	airport := []string{
		DayTitleStyle.Render("From Palermo Airport"),
		LabelStyle.Render("Airport:") + " " + NormalTextStyle.Render(tr.Airport.From),
		LabelStyle.Render("Distance:") + " " + NormalTextStyle.Render(tr.Airport.Distance),
	}
	if len(tr.Airport.Options) > 0 {
		airport = append(airport, renderBullets(tr.Airport.Options, "•", inner))
	}

	rental := []string{
		DayTitleStyle.Render("Car Rental"),
		CostStyle.Render(tr.Rental.Cost),
	}
	if len(tr.Rental.Companies) > 0 {
		rental = append(rental, LabelStyle.Render("Recommended Companies:"), renderBullets(tr.Rental.Companies, "•", inner))
	}
	if len(tr.Rental.Notes) > 0 {
		rental = append(rental, LabelStyle.Render("Important Notes:"), renderBullets(tr.Rental.Notes, "ℹ", inner))
	}
	if tr.Rental.Booking != "" {
		rental = append(rental, renderLink("Compare Rental Cars", tr.Rental.Booking, tr.Rental.Booking == focusedURL))
	}

	sections := []string{
		renderOverlayTitle("🚗 Transportation Guide", inner),
		strings.Join(airport, "\n"),
		strings.Join(rental, "\n"),
	}
	return OverlayStyle.Width(width - 2).Render(strings.Join(sections, "\n\n"))
}
