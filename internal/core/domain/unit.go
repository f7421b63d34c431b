package domain

import "slices"

// Unit is one module of the build graph.
type Unit struct {
	Name  string
	Group string

	// Dependencies are the ids of the units whose artifact this unit consumes.
	Dependencies []InternedString
	// TestDependencies are the ids of units only needed to compile or run this unit's tests.
	TestDependencies []InternedString

	// Artifact is the path of the distributable output, relative to Dir.
	Artifact string
	// TestJar marks units that also publish their compiled tests.
	TestJar bool
	// Lifecycle overrides the project lifecycle for this unit when non-nil.
	Lifecycle *Lifecycle

	Dir        string
	Properties map[string]string
	Tasks      []Task
}

// ID returns the graph key of the unit, qualified by its group when it has one.
func (u *Unit) ID() InternedString {
	if u.Group == "" {
		return NewInternedString(u.Name)
	}
	return NewInternedString(u.Group + ":" + u.Name)
}

// Upstream returns every unit id this unit must wait for.
func (u *Unit) Upstream() []InternedString {
	res := make([]InternedString, 0, len(u.Dependencies)+len(u.TestDependencies))
	res = append(res, u.Dependencies...)
	for _, d := range u.TestDependencies {
		if !slices.Contains(res, d) {
			res = append(res, d)
		}
	}
	return res
}
