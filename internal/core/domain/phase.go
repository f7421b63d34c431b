package domain

import "strings"

// Phases of the default lifecycle.
const (
	PhaseValidate              = "validate"
	PhaseInitialize            = "initialize"
	PhaseGenerateSources       = "generate-sources"
	PhaseProcessSources        = "process-sources"
	PhaseGenerateResources     = "generate-resources"
	PhaseProcessResources      = "process-resources"
	PhaseCompile               = "compile"
	PhaseProcessClasses        = "process-classes"
	PhaseGenerateTestSources   = "generate-test-sources"
	PhaseProcessTestSources    = "process-test-sources"
	PhaseGenerateTestResources = "generate-test-resources"
	PhaseProcessTestResources  = "process-test-resources"
	PhaseTestCompile           = "test-compile"
	PhaseProcessTestClasses    = "process-test-classes"
	PhaseTest                  = "test"
	PhasePreparePackage        = "prepare-package"
	PhasePackage               = "package"
	PhasePreIntegrationTest    = "pre-integration-test"
	PhaseIntegrationTest       = "integration-test"
	PhasePostIntegrationTest   = "post-integration-test"
	PhaseVerify                = "verify"
	PhaseInstall               = "install"
	PhaseDeploy                = "deploy"
)

const testMarker = "test"

// IsPackagePhase reports whether the phase produces the unit's distributable artifact.
func IsPackagePhase(name string) bool {
	return name == PhasePreparePackage || name == PhasePackage
}

// IsTestPhase reports whether the phase belongs to the test group.
//
// In strict mode only the test execution phase qualifies. Otherwise every phase carrying the
// test marker as a token qualifies, which also covers the generated test-compile siblings and
// plugin goals such as "surefire:test".
func IsTestPhase(name string, strict bool) bool {
	if name == PhaseTest {
		return true
	}
	if strict {
		return false
	}
	return strings.Contains(name, ":"+testMarker) ||
		strings.Contains(name, "-"+testMarker+"-") ||
		strings.HasPrefix(name, testMarker+"-") ||
		strings.HasSuffix(name, "-"+testMarker)
}
