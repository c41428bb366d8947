// Package config loads turntable render settings from a JSON file and
// reconciles them with command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds the scene and output settings of a turntable render.
type Config struct {
	// Scene
	Mesh      string  `json:"mesh"`
	Texture   string  `json:"texture"`
	Distance  float32 `json:"distance"`
	Elevation float32 `json:"elevation"`

	// Output
	OutputDir   string `json:"output_dir"`
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Frames      int    `json:"frames"`
	Workers     int    `json:"workers"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mesh      string
	Texture   string
	OutputDir string
	Size      int
	Frames    int
	Workers   int
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values; Resolve fills those in afterwards.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies flag overrides, then fills remaining zero fields with
// defaults. Distance 0 survives as "frame the mesh automatically".
func (c *Config) Resolve(flags Flags) {
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 60
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Elevation == 0 {
		c.Elevation = 20
	}
}
