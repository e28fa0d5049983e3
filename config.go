package relief

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the parameters of one relief shading call.
//
// Start from DefaultConfig and override fields; the zero Config is valid but
// produces a flat (strength 0) relief. Integer fields documented as "0 = auto"
// are derived from the image width at shading time.
type Config struct {
	// BevelPx is the width of the bevel in pixels. Values below 1 are
	// treated as 1.
	BevelPx int `yaml:"bevel_px"`

	// Strength scales the bevel slope.
	Strength float64 `yaml:"strength"`

	// Light is the direction towards the light. It is normalized before use;
	// a zero vector selects DefaultLight.
	Light Vec3 `yaml:"light"`

	// AO is the ambient-occlusion darkening in [0, 1].
	AO float64 `yaml:"ao"`

	// CylK is the curvature of the cylinder the decal wraps around,
	// as a fraction of the image width. Must be > 0.
	CylK float64 `yaml:"cyl_k"`

	// CylCX is the horizontal position of the cylinder axis, as a fraction
	// of the image width in [0, 1].
	CylCX float64 `yaml:"cyl_cx"`

	// BlurPx is the Gaussian sigma applied to the mask before shading.
	// 0 = auto: max(1, width/400).
	BlurPx int `yaml:"blur_px"`

	// DepthPx is the offset of the edge highlight and shadow.
	// 0 = auto: max(8, width/160).
	DepthPx int `yaml:"depth_px"`

	// RingPx is the width of the outer ring the edge overlay is drawn from.
	// 0 = auto: the edge depth.
	RingPx int `yaml:"ring_px"`
}

// DefaultLight is the default light direction: from the upper left, slightly
// in front of the surface.
var DefaultLight = Vec3{X: -0.9, Y: -0.55, Z: 0.35}

// Default configuration values.
const (
	DefaultBevelPx  = 16
	DefaultStrength = 1.3
	DefaultAO       = 0.18
	DefaultCylK     = 0.38
	DefaultCylCX    = 0.50
)

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		BevelPx:  DefaultBevelPx,
		Strength: DefaultStrength,
		Light:    DefaultLight,
		AO:       DefaultAO,
		CylK:     DefaultCylK,
		CylCX:    DefaultCylCX,
	}
}

// adjustment records a configuration value that normalize replaced.
type adjustment struct {
	field    string
	from, to any
}

// normalize validates c and clamps recoverable values. Non-finite values
// cannot be recovered and yield ErrInvalidConfig. The returned light is a
// unit vector.
func (c Config) normalize() (Config, []adjustment, error) {
	switch {
	case !isFinite(c.Strength):
		return c, nil, invalidConfig("strength", c.Strength)
	case !c.Light.IsFinite():
		return c, nil, invalidConfig("light", c.Light)
	case !isFinite(c.AO):
		return c, nil, invalidConfig("ao", c.AO)
	case !isFinite(c.CylK):
		return c, nil, invalidConfig("cyl_k", c.CylK)
	case !isFinite(c.CylCX):
		return c, nil, invalidConfig("cyl_cx", c.CylCX)
	}

	var adj []adjustment
	set := func(field string, from, to any) {
		adj = append(adj, adjustment{field: field, from: from, to: to})
	}

	if c.BevelPx < 1 {
		set("bevel_px", c.BevelPx, 1)
		c.BevelPx = 1
	}
	if c.Light.Length() == 0 {
		set("light", c.Light, DefaultLight)
		c.Light = DefaultLight
	}
	c.Light = c.Light.NormalizeOr(DefaultLight.NormalizeOr(Up))

	if clamped := clamp01(c.AO); clamped != c.AO {
		set("ao", c.AO, clamped)
		c.AO = clamped
	}
	if c.CylK <= 0 {
		set("cyl_k", c.CylK, DefaultCylK)
		c.CylK = DefaultCylK
	}
	if clamped := clamp01(c.CylCX); clamped != c.CylCX {
		set("cyl_cx", c.CylCX, clamped)
		c.CylCX = clamped
	}
	for _, f := range []struct {
		name string
		v    *int
	}{{"blur_px", &c.BlurPx}, {"depth_px", &c.DepthPx}, {"ring_px", &c.RingPx}} {
		if *f.v < 0 {
			set(f.name, *f.v, 0)
			*f.v = 0
		}
	}
	return c, adj, nil
}

// blurSigma returns the mask blur for an image of the given width.
func (c Config) blurSigma(width int) int {
	if c.BlurPx > 0 {
		return c.BlurPx
	}
	return max(1, width/400)
}

// edgeDepth returns the edge overlay offset for an image of the given width.
func (c Config) edgeDepth(width int) int {
	if c.DepthPx > 0 {
		return c.DepthPx
	}
	return max(8, width/160)
}

// ringWidth returns the outer ring width for the given edge depth.
func (c Config) ringWidth(depth int) int {
	if c.RingPx > 0 {
		return c.RingPx
	}
	return depth
}

// ParseConfig decodes a YAML configuration. Keys that are absent keep their
// DefaultConfig value; unknown keys are an error.
//
//	bevel_px: 24
//	strength: 1.1
//	light: [-0.9, -0.55, 0.35]
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("relief: parse config: %w", err)
	}
	if _, _, err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("relief: read config: %w", err)
	}
	return ParseConfig(data)
}

// MarshalConfig encodes cfg as YAML, the inverse of ParseConfig.
func MarshalConfig(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("relief: marshal config: %w", err)
	}
	return data, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
