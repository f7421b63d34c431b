package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/turbo/internal/core/domain"
)

func TestIsPackagePhase(t *testing.T) {
	assert.True(t, domain.IsPackagePhase("package"))
	assert.True(t, domain.IsPackagePhase("prepare-package"))
	assert.False(t, domain.IsPackagePhase("packager"))
	assert.False(t, domain.IsPackagePhase("install"))
	assert.False(t, domain.IsPackagePhase(""))
}

func TestIsTestPhase(t *testing.T) {
	tests := []struct {
		phase     string
		nonStrict bool
		strict    bool
	}{
		{"test", true, true},
		{"test-compile", true, false},
		{"generate-test-sources", true, false},
		{"process-test-classes", true, false},
		{"integration-test", true, false},
		{"pre-integration-test", true, false},
		{"surefire:test", true, false},
		{"compile", false, false},
		{"package", false, false},
		{"contest", false, false},
		{"testing", false, false},
		{"attestation", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			assert.Equal(t, tt.nonStrict, domain.IsTestPhase(tt.phase, false), "non-strict")
			assert.Equal(t, tt.strict, domain.IsTestPhase(tt.phase, true), "strict")
		})
	}
}
