package ui

import (
	"strings"

	"sicily/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(keys KeyMap, state model.ViewState, width int) string {
	items := []string{
		bindingHelp(keys.Day),
		bindingHelp(keys.PrevDay),
		bindingHelp(keys.NextDay),
		toggleHelp(keys.Accommodation, state.ShowAccommodation),
		toggleHelp(keys.Transport, state.ShowTransport),
	}
	if state.AnyOverlay() {
		items = append(items, helpKey("esc", "close panel"))
	}
	items = append(items,
		bindingHelp(keys.NextLink),
		bindingHelp(keys.Down),
		bindingHelp(keys.Help),
		bindingHelp(keys.Quit),
	)
	return renderHelpLine(items, width)
}

func bindingHelp(b key.Binding) string {
	h := b.Help()
	return helpKey(h.Key, h.Desc)
}

func toggleHelp(b key.Binding, open bool) string {
	h := b.Help()
	if open {
		return helpKey(h.Key, "hide "+h.Desc)
	}
	return helpKey(h.Key, h.Desc)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(keys KeyMap, width, height int) string {
	content := lipgloss.NewStyle().
		Width(max(10, width-4)).
		Height(max(1, height-6)).
		Padding(1, 2)

	sections := []string{
		titleSection("Days"),
		helpSection([]helpItem{
			{"1 - 7", "Jump to a day"},
			{keys.PrevDay.Help().Key, "Previous day"},
			{keys.NextDay.Help().Key, "Next day"},
		}),
		titleSection("Panels"),
		helpSection([]helpItem{
			{keys.Accommodation.Help().Key, "Show / hide accommodation options"},
			{keys.Transport.Help().Key, "Show / hide the transportation guide"},
			{keys.Close.Help().Key, "Close the topmost panel"},
		}),
		titleSection("Links"),
		helpSection([]helpItem{
			{keys.NextLink.Help().Key, "Focus the next booking or info link"},
			{keys.OpenLink.Help().Key, "Open the focused link in your browser"},
		}),
		titleSection("Scrolling"),
		helpSection([]helpItem{
			{"j / ↓", "Scroll down"},
			{"k / ↑", "Scroll up"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
		}),
		titleSection("General"),
		helpSection([]helpItem{
			{"?", "Toggle help"},
			{"q / ctrl+c", "Quit"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
