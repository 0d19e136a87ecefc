package bindingdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/actionmap/components"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported binding file format")

// Format selects a codec
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

// FormatFromPath picks the codec from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// IsBindingFile reports whether path has an extension Load understands.
func IsBindingFile(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

func Decode(format Format, data []byte) (components.Bindings, error) {
	var f File
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return components.Bindings{}, ErrUnsupportedFormat
	}
	if err != nil {
		return components.Bindings{}, fmt.Errorf("decoding bindings: %w", err)
	}
	return f.Bindings()
}

func Encode(format Format, b components.Bindings) ([]byte, error) {
	f, err := FromBindings(b)
	if err != nil {
		return nil, fmt.Errorf("naming bindings: %w", err)
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatJSON:
		return json.MarshalIndent(f, "", "  ")
	case FormatTOML:
		return toml.Marshal(f)
	}
	return nil, ErrUnsupportedFormat
}

// Load reads a binding file, choosing the codec by extension.
func Load(path string) (components.Bindings, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return components.Bindings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return components.Bindings{}, fmt.Errorf("reading binding file: %w", err)
	}
	b, err := Decode(format, data)
	if err != nil {
		return components.Bindings{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Save writes b to path, choosing the codec by extension.
func Save(path string, b components.Bindings) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(format, b)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing binding file: %w", err)
	}
	return nil
}
