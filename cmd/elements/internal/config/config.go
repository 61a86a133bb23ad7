package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/elements/pkg/graphics"
)

// FileName is the optional project configuration file.
const FileName = "elements.yaml"

// Render defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultBackground is the color behind the rendered composition.
var DefaultBackground = graphics.RGB(0x2A, 0x2B, 0x2C)

// Config represents the optional elements.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Render RenderConfig `yaml:"render"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// RenderConfig controls `elements render`.
type RenderConfig struct {
	Width      int             `yaml:"width,omitempty"`
	Height     int             `yaml:"height,omitempty"`
	Scale      float64         `yaml:"scale,omitempty"`
	Theme      string          `yaml:"theme,omitempty"`
	Output     string          `yaml:"output,omitempty"`
	Background *graphics.Color `yaml:"background,omitempty"`
	// Fonts maps family names to TrueType or OpenType files.
	Fonts map[string]string `yaml:"fonts,omitempty"`
}

// Resolved contains resolved configuration values. Paths are absolute.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Width      int
	Height     int
	Scale      float64
	ThemePath  string
	Output     string
	Background graphics.Color
	Fonts      map[string]string
}

// LoadOptional reads elements.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads elements.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		Scale:      cfg.Render.Scale,
		Background: DefaultBackground,
		Fonts:      make(map[string]string, len(cfg.Render.Fonts)),
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Scale == 0 {
		r.Scale = 1
	}
	if cfg.Render.Background != nil {
		r.Background = *cfg.Render.Background
	}
	if theme := strings.TrimSpace(cfg.Render.Theme); theme != "" {
		r.ThemePath = r.path(theme)
	}
	output := strings.TrimSpace(cfg.Render.Output)
	if output == "" {
		output = appName + ".png"
	}
	r.Output = r.path(output)
	for family, file := range cfg.Render.Fonts {
		r.Fonts[family] = r.path(file)
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolved) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.Root, p)
}

func (r *Resolved) validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("render size must be positive (got %dx%d)", r.Width, r.Height)
	}
	if r.Scale < 0 {
		return fmt.Errorf("render.scale must be positive (got %v)", r.Scale)
	}
	if !strings.EqualFold(filepath.Ext(r.Output), ".png") {
		return fmt.Errorf("render.output must be a .png file (got %q)", r.Output)
	}
	return nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultAppName is the last module path element, without a major version
// suffix.
func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	prefix, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "elements"
	}
	return base
}
