package model

import "testing"

func sampleTrip() *Trip {
	return &Trip{
		Days: []DayPlan{
			{Day: 1, Title: "One", Meals: Meals{Dinner: Restaurant{Name: "A"}}},
			{Day: 2, Title: "Two", Meals: Meals{Dinner: Restaurant{Name: "B"}}},
			{Day: 3, Title: "Three", Meals: Meals{Dinner: Restaurant{Name: "C"}}},
		},
	}
}

func TestNewViewState_Defaults(t *testing.T) {
	s := NewViewState()
	if s.SelectedDay != 1 {
		t.Fatalf("expected day 1 selected by default, got %d", s.SelectedDay)
	}
	if s.ShowAccommodation || s.ShowTransport {
		t.Fatalf("expected overlays hidden by default, got %+v", s)
	}
}

func TestCurrentDay_MatchesSelection(t *testing.T) {
	trip := sampleTrip()
	s := NewViewState()
	for _, n := range []int{1, 2, 3} {
		s.SelectDay(n)
		d, ok := s.CurrentDay(trip)
		if !ok {
			t.Fatalf("day %d: expected a plan", n)
		}
		if d.Day != n {
			t.Fatalf("day %d: got plan for day %d", n, d.Day)
		}
	}
}

func TestCurrentDay_MissingDayIsAbsent(t *testing.T) {
	trip := sampleTrip()
	s := NewViewState()
	for _, n := range []int{0, -1, 4, 99} {
		s.SelectDay(n)
		if s.SelectedDay != n {
			t.Fatalf("SelectDay(%d) should store the value as given, got %d", n, s.SelectedDay)
		}
		if _, ok := s.CurrentDay(trip); ok {
			t.Fatalf("day %d: expected no plan", n)
		}
	}
}

func TestToggleAccommodation_TwiceRestores(t *testing.T) {
	for _, start := range []bool{false, true} {
		s := ViewState{SelectedDay: 1, ShowAccommodation: start}
		s.ToggleAccommodation()
		if s.ShowAccommodation == start {
			t.Fatalf("expected first toggle to flip from %v", start)
		}
		s.ToggleAccommodation()
		if s.ShowAccommodation != start {
			t.Fatalf("expected double toggle to restore %v", start)
		}
	}
}

func TestOverlays_AreIndependent(t *testing.T) {
	s := NewViewState()
	s.ToggleAccommodation()
	s.ToggleTransport()
	if !s.ShowAccommodation || !s.ShowTransport {
		t.Fatalf("expected both overlays open, got %+v", s)
	}

	s.CloseTransport()
	if !s.ShowAccommodation {
		t.Fatalf("closing transport must not close accommodation")
	}
	if s.ShowTransport {
		t.Fatalf("expected transport closed")
	}

	s.ToggleTransport()
	s.ToggleAccommodation()
	if s.ShowAccommodation || !s.ShowTransport {
		t.Fatalf("toggling accommodation must not affect transport, got %+v", s)
	}
	if !s.AnyOverlay() {
		t.Fatalf("expected AnyOverlay with transport open")
	}
}

func TestNextPrevDay_StaysWithinPlans(t *testing.T) {
	trip := sampleTrip()
	s := NewViewState()

	s.PrevDay(trip)
	if s.SelectedDay != 1 {
		t.Fatalf("PrevDay on first day should stay, got %d", s.SelectedDay)
	}
	s.NextDay(trip)
	s.NextDay(trip)
	s.NextDay(trip)
	if s.SelectedDay != 3 {
		t.Fatalf("NextDay should stop on last day, got %d", s.SelectedDay)
	}
	s.PrevDay(trip)
	if s.SelectedDay != 2 {
		t.Fatalf("PrevDay from 3 should give 2, got %d", s.SelectedDay)
	}

	s.SelectDay(42)
	s.NextDay(trip)
	if s.SelectedDay != 1 {
		t.Fatalf("NextDay from a missing day should restart at 1, got %d", s.SelectedDay)
	}
}

func TestTripLinks(t *testing.T) {
	trip := &Trip{
		Days: []DayPlan{{Day: 1, Activities: []Activity{
			{Title: "No link"},
			{Title: "Linked", Link: "https://example.com/a"},
		}}},
		Accommodations: []Accommodation{{Name: "Villa", Booking: "https://example.com/v"}},
		Transportation: Transportation{Rental: CarRental{Booking: "https://example.com/r"}},
	}
	links := trip.Links()
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d: %+v", len(links), links)
	}
	if links[0].URL != "https://example.com/a" || links[1].Label != "Book Villa" || links[2].Label != "Compare Rental Cars" {
		t.Fatalf("unexpected links: %+v", links)
	}
}
