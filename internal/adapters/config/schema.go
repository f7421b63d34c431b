package config

// FileName is the default name of the project file.
const FileName = "turbo.yaml"

// Turbofile represents the structure of the turbo.yaml project file.
type Turbofile struct {
	Version    string            `yaml:"version"`
	Root       string            `yaml:"root"`
	Lifecycle  []string          `yaml:"lifecycle"`
	Properties map[string]string `yaml:"properties"`
	Units      []UnitDTO         `yaml:"units"`
}

// UnitDTO represents a build unit in the project file.
type UnitDTO struct {
	Name          string            `yaml:"name"`
	Group         string            `yaml:"group"`
	Dir           string            `yaml:"dir"`
	DependsOn     []string          `yaml:"dependsOn"`
	TestDependsOn []string          `yaml:"testDependsOn"`
	Artifact      string            `yaml:"artifact"`
	TestJar       bool              `yaml:"testJar"`
	Lifecycle     []string          `yaml:"lifecycle"`
	Properties    map[string]string `yaml:"properties"`
	Tasks         []TaskDTO         `yaml:"tasks"`
}

// TaskDTO represents a task bound to a phase of its unit.
type TaskDTO struct {
	ID          string            `yaml:"id"`
	Phase       string            `yaml:"phase"`
	Cmd         []string          `yaml:"cmd"`
	Environment map[string]string `yaml:"environment"`
	WorkingDir  string            `yaml:"workingDir"`
}
