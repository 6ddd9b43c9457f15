package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// DefaultMarkdownStyle is the glamour style used when none is configured.
const DefaultMarkdownStyle = "dark"

var (
	mdRendererMu sync.Mutex
	// Keyed by style and wrap width. WithAutoStyle is avoided because its
	// terminal background query can block.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for the terminal with the named glamour style,
// wrapped at width.
func RenderMarkdown(md, style string, width int) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	if style == "" {
		style = DefaultMarkdownStyle
	}
	width = max(width, 20)

	r, err := markdownRenderer(style, width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func markdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	if r := mdRenderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer (style %q): %w", style, err)
	}
	mdRenderers[key] = r
	return r, nil
}
