package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a theme file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported theme file %q: want .yaml, .yml or .toml", path)
	}
}

// Load reads a theme file. Keys present in the file override Default;
// everything else keeps its default value.
func Load(path string) (*Theme, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	t, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return t, nil
}

// Decode parses theme data overlaid onto Default.
func Decode(data []byte, format Format) (*Theme, error) {
	t := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), t); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown theme format %d", format)
	}
	return t, nil
}

// Encode writes the theme in the given format.
func Encode(t *Theme, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(t)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(t); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown theme format %d", format)
	}
}
