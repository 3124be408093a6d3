package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds gcpcost configuration loaded from .gcpcost.yaml.
type Config struct {
	GcloudBin         string   `yaml:"gcloud_bin"`
	ReportsDir        string   `yaml:"reports_dir"`
	Format            string   `yaml:"format"`
	Timeout           string   `yaml:"timeout"`
	LargeMachineTypes []string `yaml:"large_machine_types"`
}

// TimeoutDuration parses the timeout string as a duration.
func (c Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Load searches for .gcpcost.yaml or .gcpcost.yml in the given directory
// and returns the parsed config. Returns an empty Config if no file is found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".gcpcost.yaml"),
		filepath.Join(dir, ".gcpcost.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
