package ui

import (
	"strings"

	"sicily/internal/model"
	"sicily/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// mealsSideBySide is the minimum width at which lunch and dinner share a row.
const mealsSideBySide = 80

func renderDayTabs(trip *model.Trip, selected, width int) string {
	tabWidth := 14
	if len(trip.Days) > 0 {
		tabWidth = util.Clamp((width-4)/len(trip.Days), 8, 22)
	}

	var tabs []string
	for _, d := range trip.Days {
		style := lipgloss.NewStyle().
			Width(tabWidth).
			Align(lipgloss.Center).
			Foreground(ColorMuted)
		if d.Day == selected {
			style = style.
				Foreground(ColorSand).
				Background(ColorBlue).
				Bold(true)
		}
		label := util.FormatDayLabel(d.Day) + "\n" + util.TruncateString(d.Theme, tabWidth-2)
		tabs = append(tabs, style.Render(label))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

// renderDayDetail renders one day: header, schedule, meals and notes.
func renderDayDetail(day model.DayPlan, width int, focusedURL string) string {
	inner := max(20, width-8)

	var sections []string
	sections = append(sections, DayTitleStyle.Render(day.Title)+"\n"+ThemeStyle.Render("⛰ "+day.Theme))

	sections = append(sections, SectionStyle.Render("◷ Daily Schedule"))
	for _, a := range day.Activities {
		sections = append(sections, renderActivity(a, inner, focusedURL))
	}

	sections = append(sections, SectionStyle.Render("🍴 Where to Eat"))
	sections = append(sections, renderMeals(day.Meals, inner))

	if len(day.Notes) > 0 {
		sections = append(sections, SectionStyle.Render("ℹ Important Notes"))
		var notes []string
		for _, n := range day.Notes {
			notes = append(notes, CostStyle.Render("•")+" "+NormalTextStyle.Render(n))
		}
		sections = append(sections, lipgloss.NewStyle().Width(inner).Render(strings.Join(notes, "\n")))
	}

	return PanelStyle.Width(width - 2).Render(strings.Join(sections, "\n\n"))
}

func renderActivity(a model.Activity, width int, focusedURL string) string {
	inner := max(10, width-2)

	left := TimeBadgeStyle.Render(a.Time) + " " + DayTitleStyle.Render(a.Title)
	right := CostStyle.Render(a.Cost)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	var top string
	if gap >= 2 {
		top = left + strings.Repeat(" ", gap) + right
	} else {
		top = left + "\n" + right
	}

	lines := []string{
		top,
		HelpDescStyle.Render(a.Duration),
		NormalTextStyle.Width(inner).Render(a.Description),
	}
	if a.Link != "" {
		lines = append(lines, renderLink("More Info / Book", a.Link, a.Link == focusedURL))
	}
	if a.Accessibility != "" {
		lines = append(lines, renderAccessibility(a.Accessibility, inner))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ColorGold).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}

func renderMeals(meals model.Meals, width int) string {
	if meals.Lunch == nil {
		return renderRestaurant("⌖ DINNER", meals.Dinner, DinnerPanelStyle, width)
	}

	if width >= mealsSideBySide {
		half := (width - 2) / 2
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderRestaurant("☀ LUNCH", *meals.Lunch, LunchPanelStyle, half),
			"  ",
			renderRestaurant("⌖ DINNER", meals.Dinner, DinnerPanelStyle, half),
		)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderRestaurant("☀ LUNCH", *meals.Lunch, LunchPanelStyle, width),
		renderRestaurant("⌖ DINNER", meals.Dinner, DinnerPanelStyle, width),
	)
}

func renderRestaurant(label string, r model.Restaurant, style lipgloss.Style, width int) string {
	inner := max(10, width-4)

	lines := []string{
		MealLabelStyle.Render(label),
		DayTitleStyle.Render(r.Name),
		HelpDescStyle.Render(util.OrDash(r.Cuisine)),
		CostStyle.Render(util.FormatPerPerson(r.PriceRange)),
		NormalTextStyle.Width(inner).Render(LabelStyle.Render("Specialty:") + " " + r.Specialty),
	}
	if phone := util.FormatPhone(r.Booking); phone != "" {
		lines = append(lines, HelpDescStyle.Render(phone))
	}
	if r.Accessibility != "" {
		lines = append(lines, renderAccessibility(r.Accessibility, inner))
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderAccessibility(note string, width int) string {
	return AccessStyle.Width(width).Render("♿ " + note)
}

func renderLink(label, url string, focused bool) string {
	if focused {
		return FocusedLinkStyle.Render("↗ "+label) + " " + HelpDescStyle.Render(url)
	}
	return LinkStyle.Render("↗ "+label) + " " + HelpDescStyle.Render(url)
}
