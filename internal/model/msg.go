package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// LinkOpenedMsg is sent when the system browser was asked to open a link.
type LinkOpenedMsg struct {
	Link Link
	Err  error
}

// Overlay identifies an informational panel drawn over the day view.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayAccommodation
	OverlayTransport
)

// String returns the overlay's display name.
func (o Overlay) String() string {
	switch o {
	case OverlayAccommodation:
		return "Accommodation"
	case OverlayTransport:
		return "Transportation"
	default:
		return ""
	}
}
