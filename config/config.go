// Package config loads annotation session settings from an optional YAML
// file, typically shipped next to the host application's other
// preferences. Missing files and missing keys fall back to engine
// defaults; out-of-range values are clamped rather than rejected.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/snapmark/annotate"
)

// Settings represents the optional annotate.yaml configuration.
type Settings struct {
	Interaction InteractionSettings `yaml:"interaction"`
	Style       StyleSettings       `yaml:"style"`
	History     HistorySettings     `yaml:"history"`
}

// InteractionSettings tunes hit-testing and gestures.
type InteractionSettings struct {
	// HandleRadius is the hit radius around resize handles, in pixels.
	HandleRadius int32 `yaml:"handle_radius,omitempty"`
	// DragThreshold is the click-versus-drag distance, in pixels.
	DragThreshold int32 `yaml:"drag_threshold,omitempty"`
}

// StyleSettings holds default element style.
type StyleSettings struct {
	// Color is a hex color string like "#e74c3c" or "e74c3c80".
	Color string `yaml:"color,omitempty"`
	// Thickness is the stroke width in pixels.
	Thickness float64 `yaml:"thickness,omitempty"`
	// FontName is the default text font family.
	FontName string `yaml:"font_name,omitempty"`
	// FontSize is the default text size in points.
	FontSize float64 `yaml:"font_size,omitempty"`
}

// HistorySettings tunes undo behavior.
type HistorySettings struct {
	// Limit bounds the number of undo snapshots kept.
	Limit int `yaml:"limit,omitempty"`
}

// LoadOptional reads the settings file at path if present. A missing file
// yields empty Settings (all defaults), not an error.
func LoadOptional(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML settings.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: failed to parse settings: %w", err)
	}
	return &s, nil
}

// Resolve converts the settings into an engine Config, applying engine
// defaults for every unset field. Font sizes outside the engine bounds
// are kept as-is here; the engine clamps them at the point of use.
func (s *Settings) Resolve() annotate.Config {
	opts := []annotate.Option{
		annotate.WithHandleRadius(s.Interaction.HandleRadius),
		annotate.WithHistoryLimit(s.History.Limit),
		annotate.WithThickness(s.Style.Thickness),
		annotate.WithFont(s.Style.FontName, s.Style.FontSize),
	}
	if s.Interaction.DragThreshold > 0 {
		opts = append(opts, annotate.WithDragThreshold(s.Interaction.DragThreshold))
	}
	if s.Style.Color != "" {
		opts = append(opts, annotate.WithColor(annotate.Hex(s.Style.Color)))
	}
	return annotate.NewConfig(opts...)
}
