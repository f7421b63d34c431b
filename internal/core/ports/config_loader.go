package ports

import "go.trai.ch/turbo/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file at path and returns the validated project.
	Load(path string) (*domain.Project, error)
}
