package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/svgrn/pkg/svgrn"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// Symbols for visual feedback.
const (
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
	SymbolArrowRight = "->"
	SymbolBullet     = "•"
)

// ResultLine formats the outcome of one document.
func ResultLine(res svgrn.DocumentResult) string {
	switch res.Status {
	case svgrn.StatusWritten:
		return SuccessStyle.Render(fmt.Sprintf("%s File written to %s %s", SymbolCheck, SymbolArrowRight, res.OutputPath))
	case svgrn.StatusUnchanged:
		return MutedStyle.Render(fmt.Sprintf("%s Up to date %s %s", SymbolCheck, SymbolArrowRight, res.OutputPath))
	case svgrn.StatusConverted:
		return SuccessStyle.Render(fmt.Sprintf("%s Converted %s %s", SymbolCheck, res.Source.RelativePath, res.Component.Name))
	case svgrn.StatusSkipped:
		return WarningStyle.Render(fmt.Sprintf("%s Skipped %s", SymbolBullet, res.Source.RelativePath))
	default:
		return ErrorStyle.Render(fmt.Sprintf("%s %s: %v", SymbolCross, res.Source.RelativePath, res.Err))
	}
}

// Summary formats the totals of a batch.
func Summary(report *svgrn.BatchReport) string {
	line := fmt.Sprintf("%d written, %d unchanged", report.Count(svgrn.StatusWritten), report.Count(svgrn.StatusUnchanged))
	if n := report.Count(svgrn.StatusConverted); n > 0 {
		line += fmt.Sprintf(", %d converted", n)
	}
	if n := report.Count(svgrn.StatusSkipped); n > 0 {
		line += fmt.Sprintf(", %d skipped", n)
	}
	if n := report.Count(svgrn.StatusFailed); n > 0 {
		return ErrorStyle.Render(line + fmt.Sprintf(", %d failed", n))
	}
	return TitleStyle.Render(line)
}
