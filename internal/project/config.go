// Package project reads per-project build configuration and probes
// project directories for native-library folders.
package project

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConfigFileName is the per-project build configuration file, a
// key=value properties file at the project root.
const ConfigFileName = "build.properties"

// Property keys recognized in the config file.
const (
	keySplitABI      = "split.abi"
	keySplitDensity  = "split.density"
	keyLocaleFilters = "locale.filters"
)

// ErrMissingConfig indicates the project configuration file is absent.
var ErrMissingConfig = errors.New("project configuration missing")

// Config holds the multi-APK settings of one project.
type Config struct {
	// SplitByABI requests one variant per native-library ABI.
	SplitByABI bool

	// SplitByDensity requests density soft variants.
	SplitByDensity bool

	// LocaleFilters lists the locales to produce soft variants for,
	// sorted and deduplicated.
	LocaleFilters []string
}

// Load reads the project configuration from projectRoot.
// A missing file is reported as ErrMissingConfig.
func Load(projectRoot string) (Config, error) {
	path := filepath.Join(projectRoot, ConfigFileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return Config{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return Config{}, fmt.Errorf("%s:%d: expected key=value, got %q", path, lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case keySplitABI:
			cfg.SplitByABI = value == "true"
		case keySplitDensity:
			cfg.SplitByDensity = value == "true"
		case keyLocaleFilters:
			cfg.LocaleFilters = splitLocales(value)
		default:
			// Unknown keys are other build settings; not ours to police.
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return cfg, nil
}

// splitLocales parses a comma-separated locale list into a sorted,
// deduplicated slice. Empty input yields nil.
func splitLocales(value string) []string {
	seen := make(map[string]bool)
	var locales []string
	for _, l := range strings.Split(value, ",") {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}
