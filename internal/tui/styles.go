package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/turbo/internal/ui/style"
)

const (
	unitListWidthRatio = 0.3
	logPaneBorderWidth = 4
)

type styles struct {
	running lipgloss.Style
	done    lipgloss.Style
	failed  lipgloss.Style
	list    lipgloss.Style
	logs    lipgloss.Style
	title   lipgloss.Style
}

func newStyles() styles {
	return styles{
		running: lipgloss.NewStyle().Foreground(style.Yellow),
		done:    lipgloss.NewStyle().Foreground(style.Green),
		failed:  lipgloss.NewStyle().Foreground(style.Red),
		list: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1),
		logs: lipgloss.NewStyle().PaddingLeft(1),
		title: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White),
	}
}
