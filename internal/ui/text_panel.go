package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paralela/internal/story"
)

// RenderTextPanel renders the revealed slice of the current page with its
// emphasis spans and, while the reveal is still running, a blinking cursor.
func RenderTextPanel(width int, spans []story.Span, revealing, cursorOn bool) string {
	innerW := width - 4
	if innerW < 8 {
		innerW = 8
	}

	var b strings.Builder
	for _, s := range spans {
		if s.Emphasized {
			b.WriteString(StyleEmphasis.Render(s.Text))
		} else {
			b.WriteString(StyleStoryText.Render(s.Text))
		}
	}
	if revealing && cursorOn {
		b.WriteString(StyleTypingCursor.Render("▌"))
	}

	body := lipgloss.NewStyle().Width(innerW).Render(b.String())
	return StylePanelBorder.Padding(0, 1).Render(body)
}
