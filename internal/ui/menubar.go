package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"paralela/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, demoMode bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"←/→", " página"},
		{"C", "ámara"},
		{"F", "rontal"},
		{"O", "rientación"},
		{"R", "einiciar"},
		{"Q", " salir"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := ""
	if demoMode {
		mode = StyleStatusSimulated.Render("DEMO") + " "
	}

	left := StyleMenuKey.Render(title) + menu
	right := mode

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
