package ui

import "github.com/charmbracelet/lipgloss"

// Dimensional color palette
var (
	ColorBrightViolet = lipgloss.Color("#B388FF")
	ColorViolet       = lipgloss.Color("#7C4DFF")
	ColorDimViolet    = lipgloss.Color("#3F2B78")
	ColorCyan         = lipgloss.Color("#18FFFF")
	ColorDimCyan      = lipgloss.Color("#0E7E80")
	ColorText         = lipgloss.Color("#E6E0F8")
	ColorDimText      = lipgloss.Color("#6F6A85")
	ColorError        = lipgloss.Color("#FF5370")
	ColorWarning      = lipgloss.Color("#FFCB6B")
	ColorBarBg        = lipgloss.Color("#1A1033")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorBrightViolet).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorViolet)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorViolet).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleStatusSimulated = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimViolet)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBrightViolet).
			Bold(true).
			Padding(0, 1)

	StyleStoryText = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleEmphasis = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleTypingCursor = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Blink(true)

	StyleInfoLabel = lipgloss.NewStyle().
			Foreground(ColorDimCyan)

	StyleInfoValue = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleSimTag = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StyleErrorText = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleHint = lipgloss.NewStyle().
			Foreground(ColorDimText).
			Italic(true)

	StyleCameraBright = lipgloss.NewStyle().
				Foreground(ColorBrightViolet)

	StyleCameraMid = lipgloss.NewStyle().
			Foreground(ColorViolet)

	StyleCameraDim = lipgloss.NewStyle().
			Foreground(ColorDimViolet)
)
