// Package export renders the itinerary as Markdown, HTML or a SQLite file.
package export

import (
	"fmt"
	"strings"

	"sicily/internal/model"
	"sicily/internal/util"
)

// Markdown renders the whole trip as a single Markdown document.
func Markdown(trip *model.Trip) string {
	if trip == nil {
		return ""
	}
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", trip.Name)
	fmt.Fprintf(&b, "**%s** · %s\n\n", trip.Destination, trip.Region)
	if trip.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", trip.Summary)
	}
	fmt.Fprintf(&b, "**Total budget:** %s\n\n", trip.BudgetHeadline)

	for _, d := range trip.Days {
		b.WriteString(dayMarkdown(d, "##"))
		b.WriteString("\n")
	}

	writeAccommodations(&b, trip.Accommodations)
	writeTransportation(&b, trip.Transportation)
	writeBudget(&b, trip)
	writeTips(&b, trip.Tips)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// DayMarkdown renders one day as a standalone Markdown document.
func DayMarkdown(day model.DayPlan) string {
	return strings.TrimRight(dayMarkdown(day, "#"), "\n") + "\n"
}

func dayMarkdown(d model.DayPlan, h string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s\n\n", h, util.FormatDayLabel(d.Day), d.Title)
	fmt.Fprintf(&b, "_%s_\n\n", d.Theme)

	fmt.Fprintf(&b, "%s# Daily Schedule\n\n", h)
	for _, a := range d.Activities {
		fmt.Fprintf(&b, "- **%s** %s (%s, %s)\n", a.Time, a.Title, a.Duration, a.Cost)
		fmt.Fprintf(&b, "  %s\n", a.Description)
		if a.Accessibility != "" {
			fmt.Fprintf(&b, "  Accessibility: %s\n", a.Accessibility)
		}
		if a.Link != "" {
			fmt.Fprintf(&b, "  [More Info / Book](%s)\n", a.Link)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s# Where to Eat\n\n", h)
	if d.HasLunch() {
		writeRestaurant(&b, "Lunch", *d.Meals.Lunch)
	}
	writeRestaurant(&b, "Dinner", d.Meals.Dinner)
	b.WriteString("\n")

	if len(d.Notes) > 0 {
		fmt.Fprintf(&b, "%s# Important Notes\n\n", h)
		for _, n := range d.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeRestaurant(b *strings.Builder, meal string, r model.Restaurant) {
	fmt.Fprintf(b, "- **%s:** %s (%s), %s\n", meal, r.Name, util.OrDash(r.Cuisine), util.FormatPerPerson(r.PriceRange))
	fmt.Fprintf(b, "  Specialty: %s\n", r.Specialty)
	if phone := util.FormatPhone(r.Booking); phone != "" {
		fmt.Fprintf(b, "  %s\n", phone)
	}
	if r.Accessibility != "" {
		fmt.Fprintf(b, "  Accessibility: %s\n", r.Accessibility)
	}
}

func writeAccommodations(b *strings.Builder, options []model.Accommodation) {
	if len(options) == 0 {
		return
	}
	b.WriteString("## Accommodation Options\n\n")
	for _, acc := range options {
		fmt.Fprintf(b, "### %s\n\n", acc.Name)
		fmt.Fprintf(b, "%s · **%s**\n\n", acc.Type, acc.Price)
		for _, f := range acc.Features {
			fmt.Fprintf(b, "- %s\n", f)
		}
		if len(acc.Features) > 0 {
			b.WriteString("\n")
		}
		if acc.Accessibility != "" {
			fmt.Fprintf(b, "Accessibility: %s\n\n", acc.Accessibility)
		}
		if acc.Booking != "" {
			fmt.Fprintf(b, "[Book Now](%s)\n\n", acc.Booking)
		}
	}
}

func writeTransportation(b *strings.Builder, tr model.Transportation) {
	b.WriteString("## Transportation Guide\n\n")
	b.WriteString("### From Palermo Airport\n\n")
	fmt.Fprintf(b, "- Airport: %s\n", tr.Airport.From)
	fmt.Fprintf(b, "- Distance: %s\n", tr.Airport.Distance)
	for _, o := range tr.Airport.Options {
		fmt.Fprintf(b, "- %s\n", o)
	}
	b.WriteString("\n### Car Rental\n\n")
	fmt.Fprintf(b, "**%s**\n\n", tr.Rental.Cost)
	if len(tr.Rental.Companies) > 0 {
		fmt.Fprintf(b, "Recommended companies: %s\n\n", strings.Join(tr.Rental.Companies, ", "))
	}
	for _, n := range tr.Rental.Notes {
		fmt.Fprintf(b, "- %s\n", n)
	}
	if len(tr.Rental.Notes) > 0 {
		b.WriteString("\n")
	}
	if tr.Rental.Booking != "" {
		fmt.Fprintf(b, "[Compare Rental Cars](%s)\n\n", tr.Rental.Booking)
	}
}

func writeBudget(b *strings.Builder, trip *model.Trip) {
	bd := trip.Budget
	b.WriteString("## Budget Breakdown (2 People)\n\n")
	b.WriteString("| Item | Estimate |\n|---|---|\n")
	fmt.Fprintf(b, "| Accommodation | %s |\n", bd.Accommodation)
	fmt.Fprintf(b, "| Car Rental | %s |\n", bd.CarRental)
	fmt.Fprintf(b, "| Food & Dining | %s |\n", bd.Food)
	fmt.Fprintf(b, "| Activities | %s |\n", bd.Activities)
	fmt.Fprintf(b, "| **Total Estimate** | **%s** |\n\n", bd.Total)
	if trip.Disclaimer != "" {
		// Leading "*" would start a list.
		fmt.Fprintf(b, "_%s_\n\n", strings.TrimSpace(strings.TrimPrefix(trip.Disclaimer, "*")))
	}
}

func writeTips(b *strings.Builder, tips []model.TravelTip) {
	if len(tips) == 0 {
		return
	}
	b.WriteString("## Essential Travel Tips\n\n")
	for _, tip := range tips {
		fmt.Fprintf(b, "- **%s:** %s\n", tip.Title, tip.Body)
	}
	b.WriteString("\n")
}
