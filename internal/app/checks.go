package app

import (
	"fmt"
	"slices"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckTestJars fails when a unit publishes a test jar. Without test compilation kept ahead of
// packaging, the test classes do not exist yet when the unit is packaged.
func CheckTestJars(project *domain.Project) error {
	for u := range project.Graph.Walk() {
		if !u.TestJar {
			continue
		}
		err := zerr.Wrap(domain.ErrTestJarIncompatible,
			"drop the test-jar packaging of the unit, or keep test compilation ahead of packaging with -DturboTestCompile=true")
		return zerr.With(err, "unit", u.ID().String())
	}
	return nil
}

// PackageWarning returns the warning printed when a package goal no longer runs the tests
// it would run with the original phase order, or "" when none applies.
func PackageWarning(goals []string, strict, skipTests, testSkip bool) string {
	if !slices.Contains(goals, domain.PhasePackage) {
		return ""
	}

	var skipped string
	switch {
	case testSkip:
		return ""
	case strict:
		if skipTests {
			return ""
		}
		skipped = "running"
	case skipTests:
		skipped = "compiling"
	default:
		skipped = "compiling and running"
	}

	msg := fmt.Sprintf("the package goal is reordered by the turbo builder: %s tests is not part of this build.", skipped)
	if !strict {
		msg += " To compile tests, run with -DturboTestCompile=true."
	}
	return msg + " To run tests, use the test, verify or install goal instead of package."
}
