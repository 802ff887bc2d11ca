package authoring

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-webblock/pkg/model"
)

// Presets seed a new session with buttons and settings.
type Presets struct {
	Buttons      []model.ButtonDescriptor `json:"buttons" yaml:"buttons"`
	Width        string                   `json:"width" yaml:"width"`
	Height       string                   `json:"height" yaml:"height"`
	ButtonSize   model.ButtonSize         `json:"buttonSize" yaml:"buttonSize"`
	DefaultColor string                   `json:"defaultColor" yaml:"defaultColor"`
}

// LoadPresets reads a JSON or YAML presets file.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Presets{}, fmt.Errorf("authoring: read presets %s: %w", path, err)
	}
	return ParsePresets(data, path)
}

// ParsePresets decodes presets. Files ending in .json are strict JSON; any
// other source is tried as JSON first and then YAML.
func ParsePresets(data []byte, source string) (Presets, error) {
	var p Presets
	if len(strings.TrimSpace(string(data))) == 0 {
		return Presets{}, fmt.Errorf("authoring: presets %s are empty", source)
	}

	if err := json.Unmarshal(data, &p); err == nil {
		return p, nil
	} else if strings.EqualFold(filepath.Ext(source), ".json") {
		return Presets{}, fmt.Errorf("authoring: parse presets %s: %w", source, err)
	}

	p = Presets{}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Presets{}, fmt.Errorf("authoring: parse presets %s: invalid JSON or YAML", source)
	}
	return p, nil
}
