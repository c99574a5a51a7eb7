// Package config loads the export session configuration, which names
// the application identity and the projects taking part in the
// multi-APK export.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the session configuration file looked up in the
// working directory when no --config flag is given.
const DefaultFileName = "export.yaml"

// DefaultLogFileName is the build log written next to the session
// configuration unless overridden.
const DefaultLogFileName = "apkplan.log"

// Export describes one export session.
type Export struct {
	// Package is the application package shared by all projects.
	Package string `yaml:"package"`

	// VersionCode is the top-level version identifier. Bump it
	// manually whenever the multi-APK configuration changes.
	VersionCode int `yaml:"versionCode"`

	// Projects lists the project directories to export, relative to
	// the configuration file.
	Projects []string `yaml:"projects"`

	// Log optionally overrides the build log location.
	Log string `yaml:"log,omitempty"`
}

// Load reads and validates the session configuration at path.
func Load(path string) (Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Export
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Export{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Package == "" {
		return Export{}, fmt.Errorf("config %s: package is required", path)
	}
	if cfg.VersionCode < 1 {
		return Export{}, fmt.Errorf("config %s: versionCode must be a positive integer", path)
	}
	if len(cfg.Projects) == 0 {
		return Export{}, fmt.Errorf("config %s: at least one project is required", path)
	}

	return cfg, nil
}
