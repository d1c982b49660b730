// Package config resolves the xrepo settings from defaults, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvDir overrides the managed directory.
	EnvDir = "XREPO_DIR"

	// EnvLogLevel overrides the log level.
	EnvLogLevel = "XREPO_LOG_LEVEL"

	defaultLogLevel = "info"
)

// Loader implements ports.SettingsLoader.
type Loader struct {
	configDir func() (string, error)
	homeDir   func() (string, error)
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a Loader reading from the user config directory and the process environment.
func NewLoader() *Loader {
	return &Loader{
		configDir: os.UserConfigDir,
		homeDir:   os.UserHomeDir,
		lookupEnv: os.LookupEnv,
	}
}

// NewLoaderWith creates a Loader rooted at configDir with a custom environment lookup.
func NewLoaderWith(configDir string, lookupEnv func(string) (string, bool)) *Loader {
	return &Loader{
		configDir: func() (string, error) { return configDir, nil },
		homeDir:   os.UserHomeDir,
		lookupEnv: lookupEnv,
	}
}

// Load resolves the settings. Later sources win: defaults, config file, environment, overrides.
// The resulting root has "~" expanded and is cleaned whichever source provided it.
func (l *Loader) Load(overrides domain.Settings) (domain.Settings, error) {
	settings := domain.Settings{LogLevel: defaultLogLevel}

	if base, err := l.configDir(); err == nil && base != "" {
		appDir := filepath.Join(base, domain.AppDirName)
		settings.Root = appDir

		fromFile, err := l.loadFile(filepath.Join(appDir, domain.SettingsFileName))
		if err != nil {
			return domain.Settings{}, err
		}
		settings = settings.Merge(fromFile)
	}

	settings = settings.Merge(l.fromEnv()).Merge(overrides)

	if settings.Root == "" {
		return domain.Settings{}, domain.ErrNoManagedDirectory
	}

	root, err := l.expandHome(settings.Root)
	if err != nil {
		return domain.Settings{}, err
	}
	settings.Root = filepath.Clean(root)

	return settings, nil
}

func (l *Loader) loadFile(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the user config dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "path", path)
	}

	root := file.Root
	if root != "" && !filepath.IsAbs(root) && !strings.HasPrefix(root, "~") {
		root = filepath.Join(filepath.Dir(path), root)
	}

	return domain.Settings{Root: root, LogLevel: file.LogLevel}, nil
}

func (l *Loader) fromEnv() domain.Settings {
	var s domain.Settings
	if v, ok := l.lookupEnv(EnvDir); ok {
		s.Root = strings.TrimSpace(v)
	}
	if v, ok := l.lookupEnv(EnvLogLevel); ok {
		s.LogLevel = strings.TrimSpace(v)
	}
	return s
}

func (l *Loader) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := l.homeDir()
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrNoManagedDirectory, err), "path", path)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
