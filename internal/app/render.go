package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/engine/planner"
	"go.trai.ch/turbo/internal/ui/output"
	"go.trai.ch/turbo/internal/ui/style"
)

// RenderPlans writes the plans of project to w, one block per unit in build order.
// Package tasks and test tasks are highlighted.
func RenderPlans(w io.Writer, project *domain.Project, plans planner.Plans, reorderer string) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	st := style.NewPlan(r)
	labels := project.Graph.Labels()

	var b strings.Builder
	b.WriteString(st.Phase.Render("reordering: "+reorderer) + "\n")

	for u := range project.Graph.Walk() {
		b.WriteString("\n" + st.Unit.Render(labels[u.ID()]) + "\n")

		plan, ok := plans[u.ID()]
		if !ok || len(plan.Tasks) == 0 {
			b.WriteString("  " + st.Phase.Render("nothing to do") + "\n")
			continue
		}

		width := 0
		for i := range plan.Tasks {
			width = max(width, len(plan.Tasks[i].PhaseName()))
		}
		for i := range plan.Tasks {
			t := &plan.Tasks[i]
			phase := t.PhaseName()
			name := t.ID.String()
			switch {
			case domain.IsPackagePhase(phase):
				name = st.Package.Render(name)
			case domain.IsTestPhase(phase, false):
				name = st.Test.Render(name)
			}
			pad := strings.Repeat(" ", width-len(phase))
			fmt.Fprintf(&b, "  %s%s %s %s\n", st.Phase.Render(phase), pad, style.Arrow, name)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
