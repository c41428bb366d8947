// Package turntable renders a mesh from evenly spaced orbit angles
// and encodes each frame as a WebP file, using a worker pool so frames
// render in parallel.
package turntable

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/ryanw/toru/camera"
	"github.com/ryanw/toru/canvas"
	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
	"github.com/ryanw/toru/postprocess"
)

// Config holds the shared resources for a turntable run.
type Config struct {
	Mesh        mesh.Mesh
	Material    material.Material[colors.Color]
	OutputDir   string
	Size        int
	Supersample int
	Frames      int
	Workers     int
	Distance    float32 // orbit radius; <= 0 picks one that fits the mesh
	Elevation   float32 // camera latitude above the equator, radians
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool.
func Run(cfg Config) []Result {
	if cfg.Distance <= 0 {
		cfg.Distance = FitDistance(cfg.Mesh.Bounds())
	}

	total := cfg.Frames
	results := make([]Result, total)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Error: err.Error()}
		}
		return results
	}

	var rendered atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := rendered.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				rendered.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, frame int) Result {
	side := cfg.Size * cfg.Supersample

	cam := camera.NewOrbit(cfg.Mesh.Bounds().Center(), cfg.Distance)
	cam.Resize(side, side)
	cam.Rotate(2*math.Pi*float32(frame)/float32(cfg.Frames), -cfg.Elevation)

	cv := canvas.New(side, side, func(ctx *canvas.DrawContext[colors.Color], dt float32) {
		canvas.DrawMesh(ctx, cfg.Mesh, cam, cfg.Material)
	})
	cv.Tick()

	img := canvas.Image(cv)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", frame))
	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Path: outPath, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame, Path: outPath, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, Path: outPath, Success: true}
}

// FitDistance returns an orbit distance at which the default 45 degree
// lens sees the whole bounding box, with a little margin.
func FitDistance(bounds mathutil.Box3) float32 {
	if bounds.IsEmpty() {
		return 1
	}
	radius := bounds.Size().Len() / 2
	if radius == 0 {
		return 1
	}
	return 2.7 * radius
}
