package model

// Activity is a single scheduled event within a day.
type Activity struct {
	Time          string
	Title         string
	Description   string
	Duration      string
	Cost          string
	Accessibility string // optional
	Link          string // optional
}

// Restaurant is a dining recommendation tied to a meal slot.
type Restaurant struct {
	Name          string
	Cuisine       string
	PriceRange    string
	Specialty     string
	Booking       string // optional phone contact
	Accessibility string // optional
}

// Meals holds the restaurant picks for a day. Lunch is optional, dinner is not.
type Meals struct {
	Lunch  *Restaurant
	Dinner Restaurant
}

// DayPlan represents one day's worth of activities, meals and notes.
type DayPlan struct {
	Day        int
	Title      string
	Theme      string
	Activities []Activity
	Meals      Meals
	Notes      []string
}

// HasLunch reports whether a lunch recommendation exists for the day.
func (d DayPlan) HasLunch() bool {
	return d.Meals.Lunch != nil
}

// Accommodation represents a place to stay.
type Accommodation struct {
	Name          string
	Type          string
	Price         string
	Features      []string
	Booking       string
	Accessibility string
}

// CarRental describes the rental car recommendation.
type CarRental struct {
	Companies []string
	Cost      string
	Booking   string
	Notes     []string
}

// AirportTransfer describes getting from the airport to the destination.
type AirportTransfer struct {
	From     string
	Distance string
	Options  []string
}

// Transportation groups the rental and airport guidance.
type Transportation struct {
	Rental  CarRental
	Airport AirportTransfer
}

// Budget holds the estimated cost labels for the whole trip.
type Budget struct {
	Accommodation string
	CarRental     string
	Food          string
	Activities    string
	Total         string
}

// TravelTip is a short piece of general advice.
type TravelTip struct {
	Title string
	Body  string
}

// Link is an outbound URL shown somewhere in the itinerary.
type Link struct {
	Label string
	URL   string
}

// Trip is the complete, read-only itinerary.
type Trip struct {
	Name           string
	Destination    string
	Region         string
	Summary        string
	BudgetHeadline string
	Days           []DayPlan
	Accommodations []Accommodation
	Transportation Transportation
	Budget         Budget
	Tips           []TravelTip
	Disclaimer     string
}

// Day looks up the plan for day number n.
func (t *Trip) Day(n int) (DayPlan, bool) {
	if t == nil {
		return DayPlan{}, false
	}
	for _, d := range t.Days {
		if d.Day == n {
			return d, true
		}
	}
	return DayPlan{}, false
}

// DayNumbers returns the day numbers in display order.
func (t *Trip) DayNumbers() []int {
	if t == nil {
		return nil
	}
	nums := make([]int, 0, len(t.Days))
	for _, d := range t.Days {
		nums = append(nums, d.Day)
	}
	return nums
}

// DayLinks returns the activity links for one day, in schedule order.
func (d DayPlan) DayLinks() []Link {
	var links []Link
	for _, a := range d.Activities {
		if a.Link != "" {
			links = append(links, Link{Label: a.Title, URL: a.Link})
		}
	}
	return links
}

// AccommodationLinks returns the booking pages of every accommodation option.
func (t *Trip) AccommodationLinks() []Link {
	if t == nil {
		return nil
	}
	var links []Link
	for _, a := range t.Accommodations {
		if a.Booking != "" {
			links = append(links, Link{Label: "Book " + a.Name, URL: a.Booking})
		}
	}
	return links
}

// TransportLinks returns the rental comparison link, if any.
func (t *Trip) TransportLinks() []Link {
	if t == nil || t.Transportation.Rental.Booking == "" {
		return nil
	}
	return []Link{{Label: "Compare Rental Cars", URL: t.Transportation.Rental.Booking}}
}

// Links returns every outbound URL in the itinerary.
func (t *Trip) Links() []Link {
	if t == nil {
		return nil
	}
	var links []Link
	for _, d := range t.Days {
		links = append(links, d.DayLinks()...)
	}
	links = append(links, t.AccommodationLinks()...)
	links = append(links, t.TransportLinks()...)
	return links
}
