package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration files using the fs.FS interface
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

// LoadNavigation loads navigation.json
func (l *Loader) LoadNavigation() (*NavigationConfig, error) {
	data, err := fs.ReadFile(l.fsys, "navigation.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation.json: %w", err)
	}

	var cfg NavigationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse navigation.json: %w", err)
	}

	return &cfg, nil
}

// LoadLayout loads a screen layout YAML file
func (l *Loader) LoadLayout(name string) (*LayoutConfig, error) {
	path := "layouts/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}

	return ParseLayout(data)
}

// ParseLayout decodes layout YAML
func ParseLayout(data []byte) (*LayoutConfig, error) {
	var cfg LayoutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if len(cfg.Elements) == 0 {
		return nil, fmt.Errorf("layout %q has no elements", cfg.ID)
	}

	return &cfg, nil
}
