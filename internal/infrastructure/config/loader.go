package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// EngineFile is the engine config file name.
const EngineFile = "engine.yaml"

// Loader loads YAML configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from, for messages.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadEngine loads engine.yaml over Defaults and validates the result.
// A missing file yields the defaults.
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(l.fsys, EngineFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", EngineFile, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", EngineFile, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EngineFile, err)
	}
	return &cfg, nil
}

// LoadGame decodes games/<name>.yaml into out. Fields absent from the file
// keep the values out already holds, so callers pass pre-filled defaults.
func (l *Loader) LoadGame(name string, out any) error {
	p := path.Join("games", name+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return fmt.Errorf("failed to read game config %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse game config %s: %w", name, err)
	}
	return nil
}

// HasGame reports whether games/<name>.yaml exists.
func (l *Loader) HasGame(name string) bool {
	_, err := fs.Stat(l.fsys, path.Join("games", name+".yaml"))
	return err == nil
}
