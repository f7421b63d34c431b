package domain

// Project is a loaded build: the shared lifecycle, project-wide properties and the unit graph.
type Project struct {
	Root       string
	Lifecycle  *Lifecycle
	Properties map[string]string
	Graph      *Graph
}

// LifecycleOf returns the lifecycle governing the unit.
func (p *Project) LifecycleOf(u *Unit) *Lifecycle {
	if u.Lifecycle != nil {
		return u.Lifecycle
	}
	return p.Lifecycle
}

// SharesLifecycle reports whether every unit runs on the project lifecycle.
func (p *Project) SharesLifecycle() bool {
	for u := range p.Graph.Walk() {
		if u.Lifecycle != nil && !u.Lifecycle.Equal(p.Lifecycle) {
			return false
		}
	}
	return true
}
