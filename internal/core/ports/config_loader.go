package ports

import "go.trai.ch/texcache/internal/core/domain"

// ConfigLoader defines the interface for loading the configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path.
	//
	// When explicit is false a missing file is not an error and the defaults
	// are returned.
	Load(path string, explicit bool) (*domain.Config, error)
}
