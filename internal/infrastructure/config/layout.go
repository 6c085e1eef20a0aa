package config

// LayoutConfig is the root config for layouts/<name>.yaml
type LayoutConfig struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"name"`
	InitialFocus string          `yaml:"initialFocus"`
	Panels       []PanelConfig   `yaml:"panels"`
	Elements     []ElementConfig `yaml:"elements"`
}

// PanelConfig describes a container frame. Elements in the same panel share a parent.
type PanelConfig struct {
	ID       string      `yaml:"id"`
	Parent   string      `yaml:"parent"`
	Position Vec2Config  `yaml:"position"`
	Rotation float64     `yaml:"rotation"` // degrees
	Scale    *Vec2Config `yaml:"scale"`
}

type Vec2Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type ElementConfig struct {
	ID               string           `yaml:"id"`
	Label            string           `yaml:"label"`
	Panel            string           `yaml:"panel"`
	Rect             RectConfig       `yaml:"rect"`
	Interactable     *bool            `yaml:"interactable"`
	Mode             string           `yaml:"mode"`
	AllowOtherParent bool             `yaml:"allowOtherParent"`
	AllowAsTarget    *bool            `yaml:"allowAsTarget"`
	Explicit         ExplicitConfig   `yaml:"explicit"`
	Overrides        *OverridesConfig `yaml:"overrides"`
}

// ExplicitConfig holds explicit target element IDs per direction
type ExplicitConfig struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type OverridesConfig struct {
	AddNewSelections   bool     `yaml:"addNewSelections"`
	UseAutomaticIfNull bool     `yaml:"useAutomaticIfNull"`
	Up                 []string `yaml:"up"`
	Down               []string `yaml:"down"`
	Left               []string `yaml:"left"`
	Right              []string `yaml:"right"`
}
