package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// FormatCloseWithArrow formats a close with an arrow against the previous close.
func FormatCloseWithArrow(close, preClose float64) string {
	closeStr := fmt.Sprintf("%.3f", close)

	if preClose == 0 {
		return closeStr
	}

	if close > preClose {
		return closeStr + " ▲"
	} else if close < preClose {
		return closeStr + " ▼"
	}

	return closeStr
}

// FormatChangePercent renders the day's change relative to the previous close.
func FormatChangePercent(change, preClose float64) string {
	if preClose == 0 {
		return "-"
	}

	return fmt.Sprintf("%+.2f%%", change/preClose*100)
}
