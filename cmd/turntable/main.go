package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/internal/config"
	"github.com/ryanw/toru/internal/turntable"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
	"github.com/ryanw/toru/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	meshFile := flag.String("mesh", "", "Wavefront OBJ file to render (default: built-in cube)")
	texFile := flag.String("texture", "", "PNG, JPEG or TGA texture (default: solid color)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Frames in one revolution (default: 60)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mesh:      *meshFile,
		Texture:   *texFile,
		OutputDir: *outputDir,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
	})

	// Build the scene
	var m mesh.Mesh = mesh.NewCube(1)
	meshName := "cube"
	if cfg.Mesh != "" {
		loaded, err := mesh.LoadOBJ(cfg.Mesh)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
			os.Exit(1)
		}
		m = loaded
		meshName = cfg.Mesh
	}

	mat := material.FromColor(colors.White)
	if cfg.Texture != "" {
		tex, err := texture.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		mat = material.FromTexture(tex)
	}

	distance := cfg.Distance
	fit := ""
	if distance <= 0 {
		distance = turntable.FitDistance(m.Bounds())
		fit = " (auto)"
	}

	// Print summary
	fmt.Println("Turntable renderer → WebP")
	fmt.Printf("Mesh: %s, distance: %.2f%s\n", meshName, distance, fit)
	fmt.Printf("Frames: %d @ %dpx, Workers: %d\n", cfg.Frames, cfg.Size, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := turntable.Run(turntable.Config{
		Mesh:        m,
		Material:    mat,
		OutputDir:   cfg.OutputDir,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
		Distance:    distance,
		Elevation:   mathutil.Deg2Rad(cfg.Elevation),
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := turntable.WriteManifest(manifestPath, cfg.Size, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

type Result = turntable.Result
