package ui

import (
	"strings"

	"paralela/internal/device"
	"paralela/internal/tilt"
)

// Luminance ramp, darkest to brightest.
const luminanceRamp = " .:-=+*#%@"

// RenderCameraPanel renders the camera feed as ASCII luminance, shifted by
// the tilt descriptor for the parallax effect. Without an active frame it
// falls back to a static background with the error explanation, never an
// empty panel.
func RenderCameraPanel(width, height int, frame *device.Frame, desc tilt.Descriptor, errText string) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 4 {
		innerW = 4
	}
	if innerH < 2 {
		innerH = 2
	}

	var body string
	if frame != nil {
		body = renderFrame(innerW, innerH, frame, desc)
	} else {
		body = renderFallback(innerW, innerH, errText)
	}

	return StylePanelBorder.Width(innerW).Height(innerH).Render(body)
}

func renderFrame(w, h int, frame *device.Frame, desc tilt.Descriptor) string {
	shiftX, shiftY := 0, 0
	if desc.Enabled {
		shiftX, shiftY = desc.ShiftX, desc.ShiftY
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Sample the frame scaled to the panel, offset by the parallax shift.
			fx := x*frame.W/w + shiftX
			fy := y*frame.H/h + shiftY
			v := frame.At(fx, fy)
			idx := int(v * float64(len(luminanceRamp)-1))
			ch := string(luminanceRamp[idx])
			switch {
			case v > 0.72:
				b.WriteString(StyleCameraBright.Render(ch))
			case v > 0.4:
				b.WriteString(StyleCameraMid.Render(ch))
			default:
				b.WriteString(StyleCameraDim.Render(ch))
			}
		}
		if y < h-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderFallback(w, h int, errText string) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = StyleCameraDim.Render(strings.Repeat("·", w))
	}
	if errText != "" && h > 1 {
		msg := errText
		if len(msg) > w {
			msg = msg[:w]
		}
		lines[h/2] = StyleErrorText.Render(msg)
	}
	return strings.Join(lines, "\n")
}
