// Package properties resolves build properties from command-line overrides, the
// properties file and the project file.
package properties

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/turbo/internal/core/domain"
	"go.trai.ch/turbo/internal/core/ports"
	"go.trai.ch/zerr"
)

// FilePath is the location of the properties file, relative to the project root.
var FilePath = filepath.Join(".turbo", "turbo.env")

var _ ports.PropertySource = (*Source)(nil)

// Source looks a key up in the overrides, then the properties file, then the unit's own
// properties, then the project properties.
type Source struct {
	overrides map[string]string
	file      map[string]string
	project   map[string]string
}

// New creates a Source from already resolved layers. Any layer may be nil.
func New(overrides, file, project map[string]string) *Source {
	return &Source{
		overrides: overrides,
		file:      file,
		project:   project,
	}
}

// Load creates a Source for the project, reading the properties file under its root when
// present.
func Load(project *domain.Project, overrides map[string]string) (*Source, error) {
	path := filepath.Join(project.Root, FilePath)
	file, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPropertiesReadFailed.Error()), "path", path)
		}
		file = nil
	}
	return New(overrides, file, project.Properties), nil
}

// Lookup returns the value of key for the unit. A nil unit skips the unit layer.
func (s *Source) Lookup(unit *domain.Unit, key string) (string, bool) {
	if v, ok := s.overrides[key]; ok {
		return v, true
	}
	if v, ok := s.file[key]; ok {
		return v, true
	}
	if unit != nil {
		if v, ok := unit.Properties[key]; ok {
			return v, true
		}
	}
	v, ok := s.project[key]
	return v, ok
}

// ParseDefines parses "key=value" definitions. A bare "key" defines an empty value.
func ParseDefines(defines []string) (map[string]string, error) {
	res := make(map[string]string, len(defines))
	for _, def := range defines {
		key, value, _ := strings.Cut(def, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProperty, "property name is empty"), "define", def)
		}
		res[key] = value
	}
	return res, nil
}
