// Package engine provides the core business logic for apkplan
// operations.
//
// The engine package acts as the orchestration layer between CLI
// commands and the planner. It resolves project paths, drives manifest
// validation and variant expansion, and manages the read-then-write
// lifecycle of the build log. Planning is all-or-nothing: any failure
// surfaces as an error and no partial plan or log is produced.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"apkplan/internal/buildlog"
	"apkplan/internal/config"
	"apkplan/internal/manifest"
	"apkplan/internal/planner"
	"apkplan/internal/project"
)

// Engine orchestrates all apkplan operations.
// It is the main API surface called by the CLI.
type Engine struct{}

// New creates a new Engine.
func New() *Engine {
	return &Engine{}
}

// Plan computes the export plan, reconciles it against the previous
// build log when the target demands continuity, and writes the new
// log. Concurrent runs against the same log are not supported; the
// caller serializes them.
func (e *Engine) Plan(req *PlanRequest) (*PlanResult, error) {
	cfg, baseDir, err := loadConfig(req.ConfigPath)
	if err != nil {
		return nil, err
	}

	logPath := resolveLogPath(req.LogPath, cfg, baseDir)

	current, err := e.computePlan(cfg, baseDir, req.Target)
	if err != nil {
		return nil, err
	}

	result := &PlanResult{Plan: current, LogPath: logPath}

	if req.Target == TargetRelease {
		previous, found, err := readLog(logPath)
		if err != nil {
			return nil, err
		}
		if found {
			reconciled, err := planner.Reconcile(current.Variants, previous.Variants)
			if err != nil {
				return nil, err
			}
			result.Plan.Variants = reconciled
			result.Reconciled = true
		}
	}

	if !req.DryRun {
		if err := writeLog(logPath, result.Plan); err != nil {
			return nil, err
		}
		result.Written = true
	}

	return result, nil
}

// Check runs validation, expansion and ordering only. The build log is
// neither read nor written.
func (e *Engine) Check(req *CheckRequest) (*CheckResult, error) {
	cfg, baseDir, err := loadConfig(req.ConfigPath)
	if err != nil {
		return nil, err
	}

	plan, err := e.computePlan(cfg, baseDir, TargetRelease)
	if err != nil {
		return nil, err
	}
	return &CheckResult{Plan: plan}, nil
}

// ShowLog decodes an existing build log.
func (e *Engine) ShowLog(req *ShowLogRequest) (*ShowLogResult, error) {
	f, err := os.Open(req.LogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open build log %s: %w", req.LogPath, err)
	}
	defer f.Close()

	plan, err := buildlog.Read(f)
	if err != nil {
		return nil, err
	}
	return &ShowLogResult{Plan: plan}, nil
}

// computePlan validates every project, expands variants, and assigns
// build slots. Revisions are all zero; reconciliation fills them in.
func (e *Engine) computePlan(cfg config.Export, baseDir string, target Target) (planner.Plan, error) {
	validator := planner.NewValidator(cfg.Package)
	var variants []planner.Variant

	for _, rel := range cfg.Projects {
		root, manifestPath, err := resolveProject(baseDir, rel)
		if err != nil {
			return planner.Plan{}, err
		}

		descriptor, err := manifest.Parse(manifestPath)
		if err != nil {
			return planner.Plan{}, fmt.Errorf("%w: %v", ErrManifestParse, err)
		}

		if err := validator.Add(descriptor, manifestPath); err != nil {
			return planner.Plan{}, err
		}

		settings, err := projectSettings(root, target)
		if err != nil {
			return planner.Plan{}, err
		}

		variants = append(variants, planner.Expand(descriptor, rel, root, settings)...)
	}

	ordered, err := planner.Order(variants)
	if err != nil {
		return planner.Plan{}, err
	}

	return planner.Plan{
		Package:     cfg.Package,
		VersionCode: cfg.VersionCode,
		Variants:    ordered,
	}, nil
}

// projectSettings loads the per-project split configuration and probes
// for ABI folders. A clean export skips both: secondary axes are only
// expanded when the output will be published.
func projectSettings(root string, target Target) (planner.ProjectSettings, error) {
	if target == TargetClean {
		return planner.ProjectSettings{}, nil
	}

	cfg, err := project.Load(root)
	if err != nil {
		return planner.ProjectSettings{}, err
	}

	settings := planner.ProjectSettings{
		SplitByABI:     cfg.SplitByABI,
		SplitByDensity: cfg.SplitByDensity,
		LocaleFilters:  cfg.LocaleFilters,
	}
	if cfg.SplitByABI {
		abis, err := project.ListABIFolders(root)
		if err != nil {
			return planner.ProjectSettings{}, err
		}
		settings.ABIs = abis
	}
	return settings, nil
}

// resolveProject resolves a relative project path and checks it is a
// directory containing a manifest.
func resolveProject(baseDir, rel string) (root, manifestPath string, err error) {
	root = filepath.Clean(filepath.Join(baseDir, rel))

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", "", fmt.Errorf("%w: %s is not a valid directory", ErrInvalidProjectPath, root)
	}

	manifestPath = filepath.Join(root, manifest.FileName)
	info, err = os.Stat(manifestPath)
	if err != nil || info.IsDir() {
		return "", "", fmt.Errorf("%w: %s is not a valid project (%s not found)",
			ErrInvalidProjectPath, root, manifest.FileName)
	}

	return root, manifestPath, nil
}

func loadConfig(path string) (config.Export, string, error) {
	if path == "" {
		path = config.DefaultFileName
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Export{}, "", err
	}
	return cfg, filepath.Dir(path), nil
}

func resolveLogPath(override string, cfg config.Export, baseDir string) string {
	switch {
	case override != "":
		return override
	case cfg.Log != "":
		return filepath.Join(baseDir, cfg.Log)
	default:
		return filepath.Join(baseDir, config.DefaultLogFileName)
	}
}

// readLog reads the previous build log if one exists. A missing log is
// not an error: it simply means all revisions start at zero.
func readLog(path string) (planner.Plan, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return planner.Plan{}, false, nil
		}
		return planner.Plan{}, false, fmt.Errorf("failed to open build log %s: %w", path, err)
	}
	defer f.Close()

	plan, err := buildlog.Read(f)
	if err != nil {
		return planner.Plan{}, false, err
	}
	return plan, true, nil
}

// writeLog writes the build log atomically: to a temp file first, then
// renamed into place, so a failed export never truncates the previous
// log.
func writeLog(path string, plan planner.Plan) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".apkplan-*.log")
	if err != nil {
		return fmt.Errorf("failed to write build log %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := buildlog.Write(tmp, plan); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write build log %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write build log %s: %w", path, err)
	}
	return nil
}
