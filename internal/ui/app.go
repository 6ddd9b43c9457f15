package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"sicily/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the root Bubble Tea model.
type Model struct {
	trip   *model.Trip
	state  model.ViewState
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	body       viewport.Model
	linkCursor int // index into visibleLinks, -1 when no link is focused

	keys   KeyMap
	opener func(url string) error
}

// Option configures the root model.
type Option func(*Model)

// WithStartDay selects the given day on launch. The value is used as-is.
func WithStartDay(day int) Option {
	return func(m *Model) {
		m.state.SelectDay(day)
	}
}

// WithLinkOpener replaces the function used to open outbound links.
func WithLinkOpener(open func(url string) error) Option {
	return func(m *Model) {
		if open != nil {
			m.opener = open
		}
	}
}

// New creates a new root model over a read-only trip.
func New(trip *model.Trip, opts ...Option) Model {
	m := Model{
		trip:       trip,
		state:      model.NewViewState(),
		gState:     GStateIdle,
		body:       viewport.New(0, 0),
		linkCursor: -1,
		keys:       DefaultKeyMap(),
		opener:     OpenInBrowser,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current view state.
func (m Model) State() model.ViewState {
	return m.state
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd

	case model.LinkOpenedMsg:
		if msg.Err != nil {
			m.error = fmt.Sprintf("failed to open %s: %v", msg.Link.URL, msg.Err)
			m.info = ""
		} else {
			m.error = ""
			m.info = "Opened " + msg.Link.Label + " in your browser"
		}
		m.layout()
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.layout()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
			m.body.GotoTop()
			return m, nil
		}
		m.gState = GStateFirstG
		return m, nil
	}
	m.gState = GStateIdle

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Day):
		day, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		if _, ok := m.trip.Day(day); !ok {
			m.info = fmt.Sprintf("No plan for day %d", day)
			m.layout()
			return m, nil
		}
		m.selectDay(func() { m.state.SelectDay(day) })
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		m.selectDay(func() { m.state.PrevDay(m.trip) })
		return m, nil

	case key.Matches(msg, m.keys.NextDay):
		m.selectDay(func() { m.state.NextDay(m.trip) })
		return m, nil

	case key.Matches(msg, m.keys.Accommodation):
		m.state.ToggleAccommodation()
		log.Printf("accommodation panel visible=%v", m.state.ShowAccommodation)
		m.overlayChanged(m.state.ShowAccommodation)
		return m, nil

	case key.Matches(msg, m.keys.Transport):
		m.state.ToggleTransport()
		log.Printf("transport panel visible=%v", m.state.ShowTransport)
		m.overlayChanged(m.state.ShowTransport)
		return m, nil

	case key.Matches(msg, m.keys.Close):
		top := m.topOverlay()
		switch top {
		case model.OverlayTransport:
			m.state.CloseTransport()
		case model.OverlayAccommodation:
			m.state.CloseAccommodation()
		default:
			m.info = ""
			m.error = ""
			m.layout()
			return m, nil
		}
		log.Printf("closed %s panel", top)
		m.overlayChanged(false)
		return m, nil

	case key.Matches(msg, m.keys.NextLink):
		links := m.visibleLinks()
		if len(links) == 0 {
			m.linkCursor = -1
			m.info = "No links on screen"
		} else {
			m.linkCursor = (m.linkCursor + 1) % len(links)
			l := links[m.linkCursor]
			m.info = fmt.Sprintf("Link %d/%d: %s (enter to open)", m.linkCursor+1, len(links), l.Label)
		}
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.OpenLink):
		link, ok := m.focusedLink()
		if !ok {
			m.info = "Press o to pick a link first"
			m.layout()
			return m, nil
		}
		log.Printf("opening link %s", link.URL)
		return m, openLinkCmd(m.opener, link)

	case key.Matches(msg, m.keys.Down):
		m.body.LineDown(1)
	case key.Matches(msg, m.keys.Up):
		m.body.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.body.HalfViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.body.HalfViewUp()
	case key.Matches(msg, m.keys.Bottom):
		m.body.GotoBottom()
	}

	return m, nil
}

// selectDay applies a day change and resets per-day UI state.
func (m *Model) selectDay(apply func()) {
	before := m.state.SelectedDay
	apply()
	if m.state.SelectedDay == before {
		return
	}
	log.Printf("selected day %d", m.state.SelectedDay)
	m.linkCursor = -1
	m.info = ""
	m.layout()
	m.body.GotoTop()
}

func (m *Model) overlayChanged(opened bool) {
	m.linkCursor = -1
	m.info = ""
	m.layout()
	if opened {
		m.body.GotoTop()
	}
}

// topOverlay returns the overlay drawn last, which esc closes first.
func (m Model) topOverlay() model.Overlay {
	switch {
	case m.state.ShowTransport:
		return model.OverlayTransport
	case m.state.ShowAccommodation:
		return model.OverlayAccommodation
	default:
		return model.OverlayNone
	}
}

// visibleLinks lists outbound links in the order they appear on screen.
func (m Model) visibleLinks() []model.Link {
	var links []model.Link
	if m.state.ShowAccommodation {
		links = append(links, m.trip.AccommodationLinks()...)
	}
	if m.state.ShowTransport {
		links = append(links, m.trip.TransportLinks()...)
	}
	if day, ok := m.state.CurrentDay(m.trip); ok {
		links = append(links, day.DayLinks()...)
	}
	return links
}

func (m Model) focusedLink() (model.Link, bool) {
	links := m.visibleLinks()
	if m.linkCursor < 0 || m.linkCursor >= len(links) {
		return model.Link{}, false
	}
	return links[m.linkCursor], true
}

func (m Model) focusedURL() string {
	if l, ok := m.focusedLink(); ok {
		return l.URL
	}
	return ""
}

// layout sizes the body viewport to the space left by the fixed chrome and
// refreshes its content.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	chrome := lipgloss.Height(m.renderTop()) + lipgloss.Height(m.renderFooter())
	if banners := m.renderBanners(); banners != "" {
		chrome += lipgloss.Height(banners)
	}
	m.body.Width = m.width
	m.body.Height = max(1, m.height-chrome)
	m.body.SetContent(m.renderBody())
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.keys, m.width, m.height)
	}

	parts := []string{m.renderTop()}
	if banners := m.renderBanners(); banners != "" {
		parts = append(parts, banners)
	}
	parts = append(parts, m.body.View(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderTop() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderHeader(m.trip, m.state, m.width),
		renderCards(m.trip, m.state, m.width),
		renderDayTabs(m.trip, m.state.SelectedDay, m.width),
	)
}

func (m Model) renderFooter() string {
	return RenderHelp(m.keys, m.state, m.width)
}

func (m Model) renderBanners() string {
	var banners []string
	if m.error != "" {
		banners = append(banners, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		banners = append(banners, SuccessStyle.Width(m.width).Render(m.info))
	}
	return strings.Join(banners, "\n")
}

// renderBody renders everything below the day selector: open overlays, the
// selected day, the budget and the travel tips.
func (m Model) renderBody() string {
	focused := m.focusedURL()
	var sections []string
	if m.state.ShowAccommodation {
		sections = append(sections, renderAccommodationPanel(m.trip.Accommodations, m.width, focused))
	}
	if m.state.ShowTransport {
		sections = append(sections, renderTransportPanel(m.trip.Transportation, m.width, focused))
	}
	if day, ok := m.state.CurrentDay(m.trip); ok {
		sections = append(sections, renderDayDetail(day, m.width, focused))
	}
	sections = append(sections,
		renderBudget(m.trip, m.width),
		renderTips(m.trip.Tips, m.width),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(trip *model.Trip, state model.ViewState, width int) string {
	title := HeaderStyle.Render("≋ " + trip.Name + " ☀")
	separator := BreadcrumbStyle.Render(" › ")
	left := "  " + title + separator + BreadcrumbStyle.Render(trip.Destination+" · "+trip.Region)

	right := BreadcrumbStyle.Render(fmt.Sprintf("Day %d of %d", state.SelectedDay, len(trip.Days))) + "  "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func openLinkCmd(open func(string) error, link model.Link) tea.Cmd {
	return func() tea.Msg {
		return model.LinkOpenedMsg{Link: link, Err: open(link.URL)}
	}
}
