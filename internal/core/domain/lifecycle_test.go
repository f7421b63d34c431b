package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/core/domain"
)

func TestNewLifecycle_DuplicatePhase(t *testing.T) {
	_, err := domain.NewLifecycle([]string{"compile", "test", "compile"})
	require.ErrorContains(t, err, domain.ErrDuplicatePhase.Error())
}

func TestLifecycle_Prefix(t *testing.T) {
	lc := domain.DefaultLifecycle()

	phases, err := lc.Prefix([]string{"compile"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"validate", "initialize", "generate-sources", "process-sources",
		"generate-resources", "process-resources", "compile",
	}, phases)

	phases, err = lc.Prefix([]string{"install", "package"})
	require.NoError(t, err)
	assert.Equal(t, "install", phases[len(phases)-1])
	assert.Len(t, phases, 22)

	_, err = lc.Prefix([]string{"clean"})
	require.ErrorContains(t, err, domain.ErrUnknownGoal.Error())

	_, err = lc.Prefix(nil)
	require.ErrorIs(t, err, domain.ErrNoGoalsSpecified)
}

func TestLifecycle_Relocated(t *testing.T) {
	lc := domain.DefaultLifecycle()

	strict := lc.Relocated(true)
	pkg, _ := strict.Index("package")
	test, _ := strict.Index("test")
	testCompile, _ := strict.Index("test-compile")
	assert.Equal(t, test-1, pkg)
	assert.Less(t, testCompile, pkg)

	loose := lc.Relocated(false)
	pkg, _ = loose.Index("package")
	generateTests, _ := loose.Index("generate-test-sources")
	compile, _ := loose.Index("process-classes")
	assert.Equal(t, generateTests-1, pkg)
	assert.Equal(t, compile+2, pkg)

	// the source lifecycle is untouched
	pkg, _ = lc.Index("package")
	test, _ = lc.Index("test")
	assert.Greater(t, pkg, test)
	assert.False(t, lc.Equal(strict))
	assert.True(t, strict.Equal(strict.Relocated(true)))
}

func TestLifecycle_Relocated_PackageGoalSkipsTests(t *testing.T) {
	phases, err := domain.DefaultLifecycle().Relocated(true).Prefix([]string{"package"})
	require.NoError(t, err)
	assert.Contains(t, phases, "test-compile")
	assert.NotContains(t, phases, "test")
}

func TestProject_SharesLifecycle(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddUnit(&domain.Unit{Name: "a"}))
	require.NoError(t, g.AddUnit(&domain.Unit{Name: "b", Lifecycle: domain.DefaultLifecycle()}))
	require.NoError(t, g.Validate())

	p := &domain.Project{Lifecycle: domain.DefaultLifecycle(), Graph: g}
	assert.True(t, p.SharesLifecycle())

	custom, err := domain.NewLifecycle([]string{"compile", "test", "package"})
	require.NoError(t, err)
	u, _ := g.GetUnit(domain.NewInternedString("a"))
	u.Lifecycle = custom
	assert.False(t, p.SharesLifecycle())
	assert.Same(t, custom, p.LifecycleOf(u))
}
