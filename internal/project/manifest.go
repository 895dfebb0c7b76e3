package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded callop.toml plus its location.
type Manifest struct {
	Path   string // absolute path to callop.toml
	Root   string // directory containing it
	Config Config
}

// Config mirrors the callop.toml layout.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Syntax      SyntaxConfig      `toml:"syntax"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// SyntaxConfig gates opt-in grammar extensions.
type SyntaxConfig struct {
	// BindThis enables receiver::name as sugar for fn.bind(receiver).
	// The base call operator needs no opt-in.
	BindThis bool `toml:"bind_this"`
}

type DiagnosticsConfig struct {
	// Max caps reported errors per run; 0 means the tool default.
	Max int `toml:"max"`
	// Color is "auto", "on", or "off". Empty means "auto".
	Color string `toml:"color"`
}

// Load parses the manifest at path. [package].name is required;
// everything else defaults to zero values.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(path, meta, cfg); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve path: %w", path, err)
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

// LoadBytes parses manifest content directly, for tests and tooling.
func LoadBytes(name string, content []byte) (*Manifest, error) {
	var cfg Config
	meta, err := toml.Decode(string(content), &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	if err := validate(name, meta, cfg); err != nil {
		return nil, err
	}
	return &Manifest{Path: name, Config: cfg}, nil
}

func validate(path string, meta toml.MetaData, cfg Config) error {
	if !meta.IsDefined("package") {
		return fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return fmt.Errorf("%s: missing [package].name", path)
	}
	switch cfg.Diagnostics.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("%s: [diagnostics].color must be auto, on, or off, got %q",
			path, cfg.Diagnostics.Color)
	}
	if cfg.Diagnostics.Max < 0 {
		return fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	return nil
}
