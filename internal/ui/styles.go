package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorBlue  = lipgloss.Color("#1E3A8A")
	ColorGold  = lipgloss.Color("#F59E0B")
	ColorSand  = lipgloss.Color("#FEF3C7")
	ColorSea   = lipgloss.Color("#06B6D4")
	ColorMuted = lipgloss.Color("#7E8C80")
	ColorText  = lipgloss.Color("#E5E7EB")
	ColorRed   = lipgloss.Color("#f38ba8")
	ColorGreen = lipgloss.Color("#a6e3a1")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorSea).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	DayTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSand).
			Bold(true)

	ThemeStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorSea).
			Bold(true)

	TimeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorSand).
			Background(ColorBlue).
			Bold(true).
			Padding(0, 1)

	CostStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	NormalTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorSea).
			Underline(true)

	FocusedLinkStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Background(ColorGold).
				Bold(true)

	AccessStyle = lipgloss.NewStyle().
			Foreground(ColorSand).
			Faint(true)

	MealLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorGold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	LunchPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorSea).
			Padding(0, 1)

	DinnerPanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorGold).
				Padding(0, 1)

	OverlayStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(ColorSea).
			Padding(1, 2)

	TotalStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorGold).
			Padding(0, 1)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
