package ui

import (
	"strings"

	"sicily/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// cardsSideBySide is the minimum width at which the quick-info cards share a row.
const cardsSideBySide = 90

func renderCards(trip *model.Trip, state model.ViewState, width int) string {
	accHint := "press a to explore options →"
	if state.ShowAccommodation {
		accHint = "press a to hide options"
	}
	trHint := "press t for details →"
	if state.ShowTransport {
		trHint = "press t to hide details"
	}

	type card struct {
		title, body, hint string
	}
	cards := []card{
		{"⌂ Accommodation", "Boutique hotels & sea view apartments", accHint},
		{"🚗 Transportation", "Rental car recommended from " + palermo(trip), trHint},
		{"€ Total Budget", trip.BudgetHeadline, "Accommodation, food, activities & car"},
	}

	if width < cardsSideBySide {
		var lines []string
		for _, c := range cards {
			lines = append(lines, LabelStyle.Render(c.title)+"  "+NormalTextStyle.Render(c.body)+"  "+HelpDescStyle.Render(c.hint))
		}
		return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(strings.Join(lines, "\n"))
	}

	cardWidth := (width - 4) / len(cards)
	var rendered []string
	for _, c := range cards {
		content := strings.Join([]string{
			LabelStyle.Render(c.title),
			NormalTextStyle.Render(c.body),
			HelpDescStyle.Render(c.hint),
		}, "\n")
		rendered = append(rendered, CardStyle.Width(cardWidth-2).Render(content))
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// palermo names the arrival airport's city for the transport card.
func palermo(trip *model.Trip) string {
	from := trip.Transportation.Airport.From
	if i := strings.Index(from, " "); i > 0 {
		return from[:i]
	}
	return from
}

func renderBudget(trip *model.Trip, width int) string {
	b := trip.Budget
	items := []struct {
		label, value string
	}{
		{"Accommodation", b.Accommodation},
		{"Car Rental", b.CarRental},
		{"Food & Dining", b.Food},
		{"Activities", b.Activities},
	}

	var lines []string
	for _, it := range items {
		lines = append(lines, HelpDescStyle.Render(it.label)+"\n"+DayTitleStyle.Render(it.value))
	}
	total := TotalStyle.Render(HelpDescStyle.Render("Total Estimate") + "\n" + CostStyle.Render(b.Total))

	inner := max(20, width-8)
	var grid string
	if width >= cardsSideBySide {
		cellWidth := (inner - lipgloss.Width(total)) / len(lines)
		var cells []string
		for _, l := range lines {
			cells = append(cells, lipgloss.NewStyle().Width(max(10, cellWidth)).Render(l))
		}
		cells = append(cells, total)
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	} else {
		grid = strings.Join(lines, "\n") + "\n" + total
	}

	content := strings.Join([]string{
		SectionStyle.Render("€ Budget Breakdown (2 People)"),
		grid,
		HelpDescStyle.Width(inner).Render(trip.Disclaimer),
	}, "\n\n")
	return PanelStyle.Width(width - 2).Render(content)
}

func renderTips(tips []model.TravelTip, width int) string {
	if len(tips) == 0 {
		return ""
	}
	inner := max(20, width-8)

	sections := []string{SectionStyle.Render("Essential Travel Tips")}
	for _, tip := range tips {
		sections = append(sections, LabelStyle.Render(tip.Title)+"\n"+NormalTextStyle.Width(inner).Render(tip.Body))
	}
	return PanelStyle.Width(width - 2).Render(strings.Join(sections, "\n\n"))
}
