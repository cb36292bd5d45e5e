package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paralela/internal/location"
	"paralela/internal/scene"
)

// RenderInfoPanel renders the contextual sidebar: where the reader is, what
// the two worlds look like right now, and when. Simulated values carry a tag
// so the reader always knows which world is talking.
func RenderInfoPanel(width int, ctx scene.Context, phase location.Phase, errKind location.ErrorKind) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	var b strings.Builder
	b.WriteString(StylePanelTitle.Render("CONTEXTO"))
	b.WriteString("\n\n")

	if phase == location.RequestingReal {
		b.WriteString(StyleHint.Render("localizando..."))
		b.WriteString("\n\n")
	}

	row := func(label, value string) {
		b.WriteString(StyleInfoLabel.Render(label))
		b.WriteString(" ")
		b.WriteString(StyleInfoValue.Render(value))
		b.WriteString("\n")
	}

	loc := ctx.Location
	if ctx.Simulated {
		loc = fmt.Sprintf("%s %s", loc, StyleSimTag.Render("(simulado)"))
	}
	row("lugar:", loc)
	row("ciudad:", fmt.Sprintf("%s, %s", ctx.City, ctx.Country))
	b.WriteString("\n")
	row("clima aquí:", ctx.CurrentWeather)
	row("clima allá:", ctx.ParallelWeather)
	row("temperatura:", fmt.Sprintf("%d°C", ctx.Temperature))
	b.WriteString("\n")
	row("tu hora:", ctx.CurrentTime)
	row("su hora:", ctx.ParallelTime)
	row("después:", ctx.FutureTime)

	if errKind != location.ErrNone {
		b.WriteString("\n")
		b.WriteString(StyleErrorText.Render(locationErrText(errKind)))
		b.WriteString("\n")
	}

	body := lipgloss.NewStyle().Width(innerW).Render(b.String())
	return StylePanelBorder.Padding(0, 1).Render(body)
}

func locationErrText(kind location.ErrorKind) string {
	switch kind {
	case location.ErrPermissionDenied:
		return "permiso de ubicación denegado"
	case location.ErrTimeout:
		return "la ubicación no llegó a tiempo"
	case location.ErrUnsupported:
		return "ubicación no disponible"
	case location.ErrGeocodeFailed:
		return "no se pudo nombrar el lugar"
	default:
		return ""
	}
}
