package statdb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-file form of Options. Zero values mean "use the
// default"; an empty modules list enables every known module.
//
//	db_path: /var/lib/statdb
//	mmap_size_mb: 256
//	numeric_ascending: false
//	modules:
//	  - visitors
//	  - requests
//	  - hosts
type Config struct {
	DBPath           string   `yaml:"db_path"`
	MmapSizeMB       int      `yaml:"mmap_size_mb"`
	NumericAscending bool     `yaml:"numeric_ascending"`
	Verbose          bool     `yaml:"verbose"`
	Modules          []string `yaml:"modules"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("statdb: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("statdb: parsing config %s: %w", path, err)
	}
	if _, err := cfg.modules(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg Config) modules() ([]Module, error) {
	if len(cfg.Modules) == 0 {
		return nil, nil
	}
	mods := make([]Module, 0, len(cfg.Modules))
	for _, name := range cfg.Modules {
		m, ok := ParseModule(name)
		if !ok {
			return nil, fmt.Errorf("statdb: unknown module %q in config", name)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// Options translates the config into the Options consumed by Open.
func (cfg Config) Options() (Options, error) {
	mods, err := cfg.modules()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Path:             cfg.DBPath,
		Modules:          mods,
		NumericAscending: cfg.NumericAscending,
		Verbose:          cfg.Verbose,
		MmapSize:         cfg.MmapSizeMB * 1024 * 1024,
	}, nil
}
