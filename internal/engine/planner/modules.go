package planner

import (
	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/zerr"
)

// TestModulePatterns match the names of units that only hold tests.
var TestModulePatterns = []string{
	"testing",
	"testing-*",
	"*-testing-*",
	"*-testing",
	"test-*",
	"*-test-*",
	"*-test",
	"*-tests",
}

// IsTestModule reports whether the unit name matches one of the test module patterns.
func IsTestModule(name string) bool {
	for _, pattern := range TestModulePatterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// ModuleSkip describes what SkipTestModules removed.
type ModuleSkip struct {
	Units []string
	Edges int
}

// SkipTestModules returns a validated copy of graph without its test modules and without any
// test dependency edge.
func SkipTestModules(graph *domain.Graph) (*domain.Graph, ModuleSkip, error) {
	var skip ModuleSkip
	removed := make(map[domain.InternedString]bool)
	for u := range graph.Walk() {
		if IsTestModule(u.Name) {
			removed[u.ID()] = true
			skip.Units = append(skip.Units, u.ID().String())
		}
	}

	res := domain.NewGraph()
	for u := range graph.Walk() {
		if removed[u.ID()] {
			continue
		}
		clone := *u
		clone.TestDependencies = nil
		skip.Edges += len(u.TestDependencies)
		for _, dep := range u.Dependencies {
			if removed[dep] {
				err := zerr.With(zerr.Wrap(domain.ErrMissingDependency, "unit depends on a skipped test module"), "dependency", dep.String())
				return nil, ModuleSkip{}, zerr.With(err, "unit", u.ID().String())
			}
		}
		if err := res.AddUnit(&clone); err != nil {
			return nil, ModuleSkip{}, err
		}
	}

	if err := res.Validate(); err != nil {
		return nil, ModuleSkip{}, err
	}
	return res, skip, nil
}
