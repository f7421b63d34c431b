// Package config provides the project file loader for turbo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the project file at path and returns the validated project.
// A directory path is resolved to the turbo.yaml file inside it.
func (l *Loader) Load(path string) (*domain.Project, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, FileName)
	}

	var file Turbofile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	lifecycle := domain.DefaultLifecycle()
	if len(file.Lifecycle) > 0 {
		lc, err := domain.NewLifecycle(file.Lifecycle)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid project lifecycle"), "path", path)
		}
		lifecycle = lc
	}

	project := &domain.Project{
		Root:       resolveRoot(path, file.Root),
		Lifecycle:  lifecycle,
		Properties: file.Properties,
		Graph:      domain.NewGraph(),
	}

	ids := unitIDs(file.Units)
	for i := range file.Units {
		u, err := l.buildUnit(project, &file.Units[i], ids)
		if err != nil {
			return nil, err
		}
		if err := project.Graph.AddUnit(u); err != nil {
			return nil, err
		}
	}

	if err := project.Graph.Validate(); err != nil {
		return nil, err
	}

	if len(file.Units) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s declares no units", path))
	}
	return project, nil
}

func (l *Loader) buildUnit(project *domain.Project, dto *UnitDTO, ids *unitRefs) (*domain.Unit, error) {
	u := &domain.Unit{
		Name:       dto.Name,
		Group:      dto.Group,
		Dir:        dto.Dir,
		Artifact:   dto.Artifact,
		TestJar:    dto.TestJar,
		Properties: dto.Properties,
	}
	id := u.ID().String()

	if len(dto.Lifecycle) > 0 {
		lc, err := domain.NewLifecycle(dto.Lifecycle)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid unit lifecycle"), "unit", id)
		}
		u.Lifecycle = lc
	}

	deps, err := resolveDependencies(dto.DependsOn, ids)
	if err != nil {
		return nil, zerr.With(err, "unit", id)
	}
	testDeps, err := resolveDependencies(dto.TestDependsOn, ids)
	if err != nil {
		return nil, zerr.With(err, "unit", id)
	}
	u.Dependencies = domain.NewInternedStrings(deps)
	u.TestDependencies = domain.NewInternedStrings(testDeps)

	lc := project.LifecycleOf(u)
	unitDir := filepath.Join(project.Root, dto.Dir)
	seen := make(map[string]bool, len(dto.Tasks))
	for _, t := range dto.Tasks {
		if !lc.Has(t.Phase) {
			err := zerr.With(zerr.Wrap(domain.ErrUnknownPhase, "task is bound to an unknown phase"), "phase", t.Phase)
			return nil, zerr.With(err, "unit", id)
		}
		taskID := t.ID
		if taskID == "" {
			taskID = t.Phase
		}
		if seen[taskID] {
			err := zerr.With(zerr.Wrap(domain.ErrDuplicateTask, "task "+taskID+" is declared twice"), "task", taskID)
			return nil, zerr.With(err, "unit", id)
		}
		seen[taskID] = true

		u.Tasks = append(u.Tasks, domain.Task{
			ID:          domain.NewInternedString(taskID),
			Phase:       domain.NewInternedString(t.Phase),
			Command:     t.Cmd,
			Environment: t.Environment,
			WorkingDir:  resolveTaskWorkingDir(unitDir, t.WorkingDir),
		})
	}
	return u, nil
}

// unitRefs resolves dependency references: a full unit id, or the bare name of a single
// grouped unit.
type unitRefs struct {
	ids    map[string]bool
	byName map[string][]string
}

func unitIDs(units []UnitDTO) *unitRefs {
	refs := &unitRefs{
		ids:    make(map[string]bool, len(units)),
		byName: make(map[string][]string, len(units)),
	}
	for _, dto := range units {
		u := domain.Unit{Name: dto.Name, Group: dto.Group}
		id := u.ID().String()
		refs.ids[id] = true
		refs.byName[dto.Name] = append(refs.byName[dto.Name], id)
	}
	return refs
}

func resolveDependencies(refs []string, units *unitRefs) ([]string, error) {
	res := make([]string, 0, len(refs))
	for _, ref := range refs {
		if units.ids[ref] {
			res = append(res, ref)
			continue
		}
		candidates := units.byName[ref]
		switch len(candidates) {
		case 0:
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingDependency, "unknown unit reference"), "dependency", ref)
		case 1:
			res = append(res, candidates[0])
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrAmbiguousReference, "qualify "+ref+" with its group"), "dependency", ref)
		}
	}
	return res, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

func resolveTaskWorkingDir(unitDir, configured string) domain.InternedString {
	if configured == "" {
		return domain.NewInternedString(unitDir)
	}
	if filepath.IsAbs(configured) {
		return domain.NewInternedString(filepath.Clean(configured))
	}
	return domain.NewInternedString(filepath.Join(unitDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
