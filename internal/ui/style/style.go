// Package style holds the colors and icons shared by log and plan output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	White  = lipgloss.Color("#FFFFFF")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Plan holds the styles used when rendering execution plans.
type Plan struct {
	Unit    lipgloss.Style
	Phase   lipgloss.Style
	Package lipgloss.Style
	Test    lipgloss.Style
}

// NewPlan creates the plan styles bound to r.
func NewPlan(r *lipgloss.Renderer) Plan {
	return Plan{
		Unit:    r.NewStyle().Bold(true).Foreground(Iris),
		Phase:   r.NewStyle().Foreground(Slate),
		Package: r.NewStyle().Foreground(Green),
		Test:    r.NewStyle().Foreground(Yellow),
	}
}
