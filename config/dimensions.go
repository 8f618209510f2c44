package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

//go:embed dimensions.yaml
var dimensionsYAML []byte

// DimensionsFile is the settings file name, embedded and on disk.
const DimensionsFile = "dimensions.yaml"

// GrappleMode selects the grapple behavior of a dimension.
type GrappleMode string

const (
	GrapplePull  GrappleMode = "pull"
	GrappleSwing GrappleMode = "swing"
)

// Toggle returns the other mode.
func (m GrappleMode) Toggle() GrappleMode {
	if m == GrappleSwing {
		return GrapplePull
	}
	return GrappleSwing
}

// Dimension is one parallel version of the level with its own physics.
type Dimension struct {
	Name         string      `yaml:"name"`
	Display      string      `yaml:"display"`
	BaseUnlocked bool        `yaml:"unlocked"`
	Background   HexColor    `yaml:"background"`
	Tint         HexColor    `yaml:"tint"`
	Gravity      float64     `yaml:"gravity"`
	PlayerSpeed  float64     `yaml:"player_speed"`
	PlayerJump   float64     `yaml:"player_jump"`
	EnemySpeed   float64     `yaml:"enemy_speed"`
	GrappleRange float64     `yaml:"grapple_range"`
	GrappleSpeed float64     `yaml:"grapple_speed"`
	GrappleMode  GrappleMode `yaml:"grapple_mode"`
}

// DimensionSet is the decoded settings file.
type DimensionSet struct {
	Dimensions []Dimension `yaml:"dimensions"`

	byName map[string]int
}

// ParseDimensions decodes and validates dimension settings.
func ParseDimensions(data []byte) (*DimensionSet, error) {
	var set DimensionSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unmarshal dimensions: %w", err)
	}
	if len(set.Dimensions) == 0 {
		return nil, fmt.Errorf("dimensions: none defined")
	}

	set.byName = make(map[string]int, len(set.Dimensions))
	for i, d := range set.Dimensions {
		if d.Name == "" {
			return nil, fmt.Errorf("dimensions: entry %d has no name", i)
		}
		if _, dup := set.byName[d.Name]; dup {
			return nil, fmt.Errorf("dimensions: duplicate name %q", d.Name)
		}
		switch d.GrappleMode {
		case GrapplePull, GrappleSwing:
		case "":
			set.Dimensions[i].GrappleMode = GrapplePull
		default:
			return nil, fmt.Errorf("dimensions: %s: unknown grapple mode %q", d.Name, d.GrappleMode)
		}
		if d.Display == "" {
			set.Dimensions[i].Display = d.Name
		}
		set.byName[d.Name] = i
	}
	return &set, nil
}

// Get looks up a dimension by name.
func (s *DimensionSet) Get(name string) (Dimension, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Dimension{}, false
	}
	return s.Dimensions[i], true
}

// Lookup is Get with a fallback to the first dimension.
func (s *DimensionSet) Lookup(name string) Dimension {
	if d, ok := s.Get(name); ok {
		return d
	}
	return s.Dimensions[0]
}

// Unlocked returns the base dimensions plus the first extra locked ones, in
// file order.
func (s *DimensionSet) Unlocked(extra int) []string {
	var out []string
	for _, d := range s.Dimensions {
		if d.BaseUnlocked {
			out = append(out, d.Name)
			continue
		}
		if extra > 0 {
			out = append(out, d.Name)
			extra--
		}
	}
	return out
}

// Extras is the number of dimensions that start locked.
func (s *DimensionSet) Extras() int {
	n := 0
	for _, d := range s.Dimensions {
		if !d.BaseUnlocked {
			n++
		}
	}
	return n
}

// Next returns the unlocked dimension after current, wrapping around. When
// current is not unlocked the first unlocked dimension is returned.
func Next(unlocked []string, current string) string {
	if len(unlocked) == 0 {
		return current
	}
	for i, name := range unlocked {
		if name == current {
			return unlocked[(i+1)%len(unlocked)]
		}
	}
	return unlocked[0]
}

var dimensions atomic.Pointer[DimensionSet]

// Dimensions returns the active dimension settings. They may be swapped at
// any time by a hot reload, so callers should not cache the result across
// frames.
func Dimensions() *DimensionSet {
	return dimensions.Load()
}

// SetDimensions replaces the active settings.
func SetDimensions(s *DimensionSet) {
	dimensions.Store(s)
}

// LoadDimensionsFile parses a settings file from disk and makes it active.
func LoadDimensionsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	set, err := ParseDimensions(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	SetDimensions(set)
	return nil
}

func init() {
	set, err := ParseDimensions(dimensionsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded %s: %v", DimensionsFile, err))
	}
	SetDimensions(set)
}

// HexColor decodes "#rrggbb" or "#rrggbbaa".
type HexColor struct {
	color.RGBA
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(value string) (color.RGBA, error) {
	s := strings.TrimPrefix(value, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color format: %s: %w", value, err)
		}
		rgba[i] = v
	}
	return color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
