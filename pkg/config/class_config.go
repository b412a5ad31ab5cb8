package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ClassConfig represents the selectable class roster loaded from YAML.
// It defines the structure of data/classes.yaml.
//
// Structure:
//
//	classes:
//	  - id: knight
//	    name: Knight
//	    description: ...
//	    strengths: Heavy armor, shield block
//	    weaknesses: Slow, no ranged attacks
//	    icon: IMAGE_CLASS_KNIGHT
//	    accent: "#C8A040"
type ClassConfig struct {
	Classes []ClassInfo `yaml:"classes"` // Roster in display order
}

// ClassInfo describes one selectable class. Instances are immutable after
// loading; the ID is the opaque identifier handed back on commit.
type ClassInfo struct {
	ID          string `yaml:"id"`          // Unique identifier (passed to the chosen callback)
	Name        string `yaml:"name"`        // Display name
	Description string `yaml:"description"` // Flavor/description text shown in the details panel
	Strengths   string `yaml:"strengths"`   // Free-text strengths summary
	Weaknesses  string `yaml:"weaknesses"`  // Free-text weaknesses summary
	Icon        string `yaml:"icon"`        // Resource ID of the class icon
	Accent      string `yaml:"accent"`      // Accent color as "#RRGGBB"
}

// LoadClassConfig parses and validates a class roster from YAML bytes.
//
// Validation rules:
//   - at least one class must be defined
//   - every class needs a non-empty id and name
//   - ids must be unique (a duplicate id would make commit routing ambiguous)
func LoadClassConfig(data []byte) (*ClassConfig, error) {
	var cfg ClassConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse class config: %w", err)
	}

	if len(cfg.Classes) == 0 {
		return nil, fmt.Errorf("class config defines no classes")
	}

	seen := make(map[string]bool, len(cfg.Classes))
	for i, c := range cfg.Classes {
		if c.ID == "" {
			return nil, fmt.Errorf("class #%d has an empty id", i)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("class %q has an empty name", c.ID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate class id %q", c.ID)
		}
		seen[c.ID] = true
	}

	return &cfg, nil
}

// ByID returns the class with the given id, or nil if it is not in the roster.
func (c *ClassConfig) ByID(id string) *ClassInfo {
	for i := range c.Classes {
		if c.Classes[i].ID == id {
			return &c.Classes[i]
		}
	}
	return nil
}

// AccentColor parses the class accent ("#RRGGBB") into a color.
// Malformed values fall back to white so a bad roster entry degrades
// visually instead of failing the whole screen.
func (c *ClassInfo) AccentColor() color.RGBA {
	s := strings.TrimPrefix(c.Accent, "#")
	if len(s) != 6 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
