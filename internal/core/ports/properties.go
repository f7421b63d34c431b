package ports

import "go.trai.ch/turbo/internal/core/domain"

// PropertySource resolves named build properties through a layered lookup.
//
//go:generate mockgen -source=properties.go -destination=mocks/mock_properties.go -package=mocks
type PropertySource interface {
	// Lookup returns the value of key for the unit. A nil unit resolves the build-wide value.
	Lookup(unit *domain.Unit, key string) (string, bool)
}
