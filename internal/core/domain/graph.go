// Package domain contains the core domain models of the build: units, plans and phases.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the dependency graph of build units.
type Graph struct {
	units          map[InternedString]*Unit
	dependents     map[InternedString][]InternedString
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		units:      make(map[InternedString]*Unit),
		dependents: make(map[InternedString][]InternedString),
	}
}

// AddUnit adds a unit to the graph.
// It returns an error if a unit with the same id already exists.
func (g *Graph) AddUnit(u *Unit) error {
	if u.Name == "" || strings.Contains(u.Name, ":") {
		return zerr.With(ErrInvalidUnitName, "unit_name", u.Name)
	}
	id := u.ID()
	if _, exists := g.units[id]; exists {
		return zerr.With(ErrUnitAlreadyExists, "unit", id.String())
	}
	g.units[id] = u
	return nil
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order and the reverse edges when successful.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.units))
	g.dependents = make(map[InternedString][]InternedString, len(g.units))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(id InternedString) error
	visit = func(id InternedString) error {
		visited[id] = 1
		path = append(path, id)

		for _, dep := range g.units[id].Upstream() {
			if _, exists := g.units[dep]; !exists {
				err := zerr.With(ErrMissingDependency, "dependency", dep.String())
				return zerr.With(err, "unit", id.String())
			}
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[id] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, id)
		return nil
	}

	for _, id := range g.sortedIDs() {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	for _, id := range g.executionOrder {
		for _, dep := range g.units[id].Upstream() {
			g.dependents[dep] = append(g.dependents[dep], id)
		}
	}

	return nil
}

func (g *Graph) sortedIDs() []InternedString {
	ids := make([]InternedString, 0, len(g.units))
	for id := range g.units {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	start := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-start+1)
	for _, node := range path[start:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}

// Walk returns an iterator that yields units in execution order, dependencies first.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[*Unit] {
	return func(yield func(*Unit) bool) {
		for _, id := range g.executionOrder {
			if !yield(g.units[id]) {
				return
			}
		}
	}
}

// GetUnit returns the unit registered under id.
func (g *Graph) GetUnit(id InternedString) (*Unit, bool) {
	u, ok := g.units[id]
	return u, ok
}

// Dependents returns the direct dependents of the unit, in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Dependents(id InternedString) []InternedString {
	return g.dependents[id]
}

// UnitCount returns the number of units in the graph.
func (g *Graph) UnitCount() int {
	return len(g.units)
}

// Labels returns a display label per unit: its bare name, or its full id when the bare
// name is shared by units of different groups.
func (g *Graph) Labels() map[InternedString]string {
	seen := make(map[string]int, len(g.units))
	for _, u := range g.units {
		seen[u.Name]++
	}
	labels := make(map[InternedString]string, len(g.units))
	for id, u := range g.units {
		if seen[u.Name] > 1 {
			labels[id] = id.String()
		} else {
			labels[id] = u.Name
		}
	}
	return labels
}
