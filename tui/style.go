package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusRunning = styleStatusBar.
				Foreground(lipgloss.Color("34"))

	styleStatusOver = styleStatusBar.
			Foreground(lipgloss.Color("196"))

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238")).
			PaddingRight(1)

	stylePanelTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Underline(true)

	styleCharacter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	styleFrame = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleCurrentFrame = lipgloss.NewStyle().
				Foreground(lipgloss.Color("228")).
				Bold(true)

	styleOutput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleCommand = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleDialog = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))
)

// lineKind identifies the type of a log line for styling.
type lineKind int

const (
	kindOutput lineKind = iota
	kindSystem
	kindError
	kindTrace
	kindDialog
)

// classifyLine determines what kind of log line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace] sound"):
		return kindDialog
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && (strings.Contains(line, "failed") ||
		strings.HasPrefix(line, "[Unknown") ||
		strings.HasPrefix(line, "[Usage") ||
		strings.HasPrefix(line, "[Game over")):
		return kindError
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	default:
		return kindOutput
	}
}

func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindDialog:
		return styleDialog.Render(line)
	default:
		return styleOutput.Render(line)
	}
}
