// Package config provides the configuration loader for generate_text.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the configuration file at path and merges it over the defaults.
// A missing file is only an error when explicit is set.
func (l *Loader) Load(path string, explicit bool) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
			}
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		l.logger.Warn("config file " + path + " is empty, using defaults")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes a configuration document and applies it over the defaults.
func Parse(data []byte) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	apply(cfg, &file)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func apply(cfg *domain.Config, file *File) {
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}

	if file.Compiler != nil && file.Compiler.Command != nil {
		cfg.Toolchain.Compiler = file.Compiler.Command
	}

	if r := file.Rasterizer; r != nil {
		if r.Command != nil {
			cfg.Toolchain.Rasterizer = r.Command
		}
		if r.Density != nil {
			cfg.Toolchain.Density = *r.Density
		}
	}

	if d := file.Document; d != nil {
		if d.Class != "" {
			cfg.Document.Class = d.Class
		}
		if d.FontSize != nil {
			cfg.Document.FontSize = *d.FontSize
		}
		if d.Packages != nil {
			cfg.Document.Packages = d.Packages
		}
	}
}
