package ui

import "github.com/charmbracelet/lipgloss"

// Layout proportions. The camera takes the left half, text and info split
// the right column.
const (
	minLayoutWidth  = 40
	minLayoutHeight = 10
)

// ComposeLayout assembles the full screen: menu bar on top, camera panel
// beside the text/info column, status bar at the bottom.
func ComposeLayout(width, height int, menuBar, cameraPanel, textPanel, infoPanel, statusBar string) string {
	if width < minLayoutWidth || height < minLayoutHeight {
		return StyleHint.Render("terminal demasiado pequeña")
	}

	column := lipgloss.JoinVertical(lipgloss.Left, textPanel, infoPanel)
	middle := lipgloss.JoinHorizontal(lipgloss.Top, cameraPanel, column)

	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

// ComposeIntro centers the title screen.
func ComposeIntro(width, height int, title, subtitle, hint string) string {
	body := lipgloss.JoinVertical(lipgloss.Center, title, "", subtitle, "", "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// RenderPermissions centers the consent screen shown before the story.
func RenderPermissions(width, height int, cameraStatus, orientStatus string) string {
	title := StylePanelTitle.Render("La historia quiere verte")
	lines := lipgloss.JoinVertical(lipgloss.Left,
		StyleMenuKey.Render("[C]")+StyleMenuLabel.Render(" cámara       ")+StyleInfoValue.Render(cameraStatus),
		StyleMenuKey.Render("[O]")+StyleMenuLabel.Render(" orientación  ")+StyleInfoValue.Render(orientStatus),
	)
	hint := StyleHint.Render("todo es opcional, enter para continuar")
	body := lipgloss.JoinVertical(lipgloss.Center, title, "", lines, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// PanelSizes splits the available area between the camera and the right
// column, reserving one row each for the menu and status bars.
func PanelSizes(width, height int) (cameraW, cameraH, rightW int) {
	cameraW = width / 2
	rightW = width - cameraW
	cameraH = height - 2
	if cameraH < 4 {
		cameraH = 4
	}
	return cameraW, cameraH, rightW
}
