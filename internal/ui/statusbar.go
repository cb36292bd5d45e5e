package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"paralela/internal/scene"
)

// RenderStatusBar renders the bottom status bar with reading progress and
// the data provenance tag.
func RenderStatusBar(width int, page, total int, progressView string, ctx scene.Context) string {
	source := StyleStatusLive.Render("[REAL]")
	if ctx.Simulated {
		source = StyleStatusSimulated.Render("[SIMULADO]")
	}

	info := fmt.Sprintf(" Página %d/%d  %s  %s·%s", page+1, total, ctx.CurrentTime, ctx.Location, ctx.CurrentWeather)

	content := source + StyleStatusBar.Render(info)
	right := progressView + " "

	gap := width - lipgloss.Width(content) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding + right)
}
