package domain

// Property keys understood by the build.
const (
	// PropTurboTestCompile keeps test compilation in place and relocates only the test phase.
	PropTurboTestCompile = "turboTestCompile"
	// PropSkipTurboSignal disables early release for a unit.
	PropSkipTurboSignal = "skipTurboSignal"
	// PropTestModuleSkip removes test-only units and test dependency edges.
	PropTestModuleSkip = "testModuleSkip"
	// PropSkipTests skips test execution.
	PropSkipTests = "skipTests"
	// PropTestSkip skips test compilation and execution.
	PropTestSkip = "test.skip"
)

// IsTrue reports whether a looked-up property is set to "true".
func IsTrue(value string, found bool) bool {
	return found && value == "true"
}

// IsEmptyOrTrue reports whether a looked-up property is present and either empty or "true",
// so a bare "-Dkey" enables it.
func IsEmptyOrTrue(value string, found bool) bool {
	return found && (value == "" || value == "true")
}
