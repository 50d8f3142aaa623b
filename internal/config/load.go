package config

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/pagedit/internal/config/loader"
)

// Load reads the configuration file at path (TOML or YAML by extension)
// and applies PAGEDIT_* environment overrides on top of the defaults.
// An empty path or a missing file yields defaults plus environment.
func Load(path string) (*Config, error) {
	return LoadWithFS(loader.DefaultFS(), path)
}

// LoadWithFS is Load over a custom file system.
func LoadWithFS(fsys loader.FileSystem, path string) (*Config, error) {
	merged := make(map[string]any)

	if path != "" {
		l, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, err
		}
		fileMap, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, fileMap)
	}

	envMap, err := loader.NewEnvLoader(loader.EnvPrefix).Load()
	if err != nil {
		return nil, err
	}
	merged = loader.DeepMerge(merged, envMap)

	cfg := Default()
	if err := decode(merged, cfg); err != nil {
		source := path
		if source == "" {
			source = "<env>"
		}
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}

	cfg.Path = path
	if path != "" {
		cfg.resolvePaths(filepath.Dir(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays the merged map onto cfg. Keys absent from m keep their
// default values.
func decode(m map[string]any, cfg *Config) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}
