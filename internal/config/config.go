// internal/config/config.go
//
// This package resolves where the plugin lives and reads the optional
// per-project settings in .dream-team/config.yaml. Hooks run from the
// project root, so the working directory is the project.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectDirName is the per-project settings directory.
	ProjectDirName = ".dream-team"

	// PluginRootEnv is set by the host to the installed plugin directory.
	PluginRootEnv = "CLAUDE_PLUGIN_ROOT"
	// LogFileEnv enables the debug log at the given path.
	LogFileEnv = "DREAM_TEAM_LOG"
	// ProbeLogEnv overrides where the stop-hook probe records entries.
	ProbeLogEnv = "DREAM_TEAM_PROBE_LOG"

	// DefaultSpecsDirectory is scanned when no --directory is given.
	DefaultSpecsDirectory = "specs"
	// DefaultSpecsExtension is matched when no --extension is given.
	DefaultSpecsExtension = ".md"

	projectConfigFile = "config.yaml"
	probeLogName      = ".dream-team-stop-hook-test.log"
)

// SpecsConfig locates generated spec documents.
type SpecsConfig struct {
	Directory string `yaml:"directory"`
	Extension string `yaml:"extension"`
}

// LoggingConfig controls the optional debug log.
type LoggingConfig struct {
	File string `yaml:"file,omitempty"`
}

// ProjectConfig models .dream-team/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	Specs   SpecsConfig   `yaml:"specs"`
	Logging LoggingConfig `yaml:"logging"`
}

// Config holds the runtime configuration for one hook invocation.
type Config struct {
	// ProjectDir is the directory the host ran the hook from.
	ProjectDir string

	// PluginRoot is the installed plugin directory holding .claude-plugin/.
	PluginRoot string

	// ProjectSettingsDir is ProjectDir/.dream-team
	ProjectSettingsDir string

	Project ProjectConfig

	logFile  string
	probeLog string
}

// Load builds the configuration for projectDir. A missing config file is not
// an error; defaults apply.
func Load(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:         projectDir,
		PluginRoot:         ResolvePluginRoot(),
		ProjectSettingsDir: filepath.Join(projectDir, ProjectDirName),
		Project:            defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	cfg.logFile = cfg.Project.Logging.File
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadWorkingDir loads the configuration for the current working directory.
func LoadWorkingDir() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: working directory: %w", err)
	}
	return Load(cwd)
}

// ResolvePluginRoot returns CLAUDE_PLUGIN_ROOT when set. Otherwise hook
// binaries are assumed to sit one directory below the plugin root, and ".."
// is the last resort.
func ResolvePluginRoot() string {
	if root := strings.TrimSpace(os.Getenv(PluginRootEnv)); root != "" {
		return root
	}
	executable, err := os.Executable()
	if err != nil {
		return ".."
	}
	return filepath.Dir(filepath.Dir(executable))
}

// ManifestPath returns the plugin manifest location.
func (c *Config) ManifestPath() string {
	return ManifestPath(c.PluginRoot)
}

// ManifestPath returns the manifest location under root.
func ManifestPath(root string) string {
	return filepath.Join(root, ".claude-plugin", "plugin.json")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.ProjectSettingsDir, projectConfigFile)
}

// Specs returns the configured spec directory and extension.
func (c *Config) Specs() SpecsConfig {
	if c == nil {
		return DefaultSpecs()
	}
	return c.Project.Specs
}

// LogFile returns the debug log path, or "" when logging is disabled.
func (c *Config) LogFile() string {
	if c == nil {
		return ""
	}
	return c.logFile
}

// ProbeLogPath returns where the stop-hook probe appends entries.
func (c *Config) ProbeLogPath() string {
	if c != nil && c.probeLog != "" {
		return c.probeLog
	}
	return DefaultProbeLogPath()
}

// DefaultProbeLogPath places the probe log in the user's home directory.
func DefaultProbeLogPath() string {
	if path := strings.TrimSpace(os.Getenv(ProbeLogEnv)); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.TempDir()
	}
	return filepath.Join(home, probeLogName)
}

// DefaultSpecs returns the built-in spec location.
func DefaultSpecs() SpecsConfig {
	return SpecsConfig{Directory: DefaultSpecsDirectory, Extension: DefaultSpecsExtension}
}

// WithDefaults fills blank fields from DefaultSpecs.
func (s SpecsConfig) WithDefaults() SpecsConfig {
	s.Directory = strings.TrimSpace(s.Directory)
	s.Extension = strings.TrimSpace(s.Extension)
	if s.Directory == "" {
		s.Directory = DefaultSpecsDirectory
	}
	if s.Extension == "" {
		s.Extension = DefaultSpecsExtension
	}
	return s
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := strings.TrimSpace(os.Getenv(LogFileEnv)); path != "" {
		c.logFile = resolvePath(c.ProjectDir, path)
	}
	if path := strings.TrimSpace(os.Getenv(ProbeLogEnv)); path != "" {
		c.probeLog = path
	}
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version: 1,
		Specs:   DefaultSpecs(),
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Specs = pc.Specs.WithDefaults()
	pc.Logging.File = resolvePath(base, pc.Logging.File)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if strings.ContainsAny(pc.Specs.Extension, `/\`) {
		return fmt.Errorf("specs.extension must not contain a path separator")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
