package model

// DefaultDay is the day selected when the app starts.
const DefaultDay = 1

// ViewState is the transient UI state. It is reset on every launch.
type ViewState struct {
	SelectedDay       int
	ShowAccommodation bool
	ShowTransport     bool
}

// NewViewState returns the initial view state.
func NewViewState() ViewState {
	return ViewState{SelectedDay: DefaultDay}
}

// SelectDay sets the selected day. The value is not validated; a day with no
// matching plan simply renders an empty detail section.
func (s *ViewState) SelectDay(n int) {
	s.SelectedDay = n
}

// ToggleAccommodation flips the accommodation overlay.
func (s *ViewState) ToggleAccommodation() {
	s.ShowAccommodation = !s.ShowAccommodation
}

// ToggleTransport flips the transport overlay.
func (s *ViewState) ToggleTransport() {
	s.ShowTransport = !s.ShowTransport
}

// CloseAccommodation hides the accommodation overlay.
func (s *ViewState) CloseAccommodation() {
	s.ShowAccommodation = false
}

// CloseTransport hides the transport overlay.
func (s *ViewState) CloseTransport() {
	s.ShowTransport = false
}

// AnyOverlay reports whether at least one overlay is open.
func (s ViewState) AnyOverlay() bool {
	return s.ShowAccommodation || s.ShowTransport
}

// CurrentDay returns the plan matching the selected day.
func (s ViewState) CurrentDay(t *Trip) (DayPlan, bool) {
	return t.Day(s.SelectedDay)
}

// NextDay selects the next existing day, staying on the last one.
func (s *ViewState) NextDay(t *Trip) {
	nums := t.DayNumbers()
	for i, n := range nums {
		if n == s.SelectedDay {
			if i+1 < len(nums) {
				s.SelectDay(nums[i+1])
			}
			return
		}
	}
	// Selection points at nothing; start over from the first day.
	if len(nums) > 0 {
		s.SelectDay(nums[0])
	}
}

// PrevDay selects the previous existing day, staying on the first one.
func (s *ViewState) PrevDay(t *Trip) {
	nums := t.DayNumbers()
	for i, n := range nums {
		if n == s.SelectedDay {
			if i > 0 {
				s.SelectDay(nums[i-1])
			}
			return
		}
	}
	if len(nums) > 0 {
		s.SelectDay(nums[0])
	}
}
