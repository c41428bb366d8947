package mesh

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/mathutil"
)

const (
	terrainFrequency   = 0.04
	terrainOctaves     = 4
	terrainPersistence = 0.5
	terrainAmplitude   = 8.0
)

// Terrain is a heightmap grid built from fractal OpenSimplex noise,
// centered at the origin, with elevation-banded vertex colors.
type Terrain struct {
	triangleList
}

func NewTerrain(width, depth int, seed int64) *Terrain {
	noise := opensimplex.NewNormalized(seed)
	bands := colors.NewGradient(
		colors.RGB(38, 70, 125),   // water
		colors.RGB(194, 178, 128), // sand
		colors.RGB(82, 143, 62),   // grass
		colors.RGB(128, 128, 128), // rock
		colors.White,              // snow
	)

	heightAt := func(x, z int) float32 {
		var h, amp float64 = 0, 1
		freq := terrainFrequency
		for o := 0; o < terrainOctaves; o++ {
			h += noise.Eval2(float64(x)*freq, float64(z)*freq) * amp
			amp *= terrainPersistence
			freq *= 2
		}
		// octave sum is in [0, 1/(1-p)); renormalize to [0, 1]
		h /= 1 / (1 - terrainPersistence)
		return float32(h) * terrainAmplitude
	}

	heights := make([]float32, (width+1)*(depth+1))
	for z := 0; z <= depth; z++ {
		for x := 0; x <= width; x++ {
			heights[z*(width+1)+x] = heightAt(x, z)
		}
	}

	ox := float32(width) / 2
	oz := float32(depth) / 2
	at := func(x, z int) mathutil.Vec3 {
		return mathutil.Vec3{float32(x) - ox, heights[z*(width+1)+x], float32(z) - oz}
	}

	tris := make([]Triangle, 0, width*depth*2)
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			bl := at(x, z+1)
			br := at(x+1, z+1)
			tr := at(x+1, z)
			tl := at(x, z)

			color := func(a, b, c mathutil.Vec3) colors.Color {
				avg := (a[1] + b[1] + c[1]) / 3
				return bands.At(avg / terrainAmplitude)
			}

			tris = append(tris,
				Triangle{
					Points: [3]mathutil.Vec3{bl, br, tr},
					UVs:    [3]mathutil.Vec2{{0, 1}, {1, 1}, {1, 0}},
					Color:  color(bl, br, tr),
				},
				Triangle{
					Points: [3]mathutil.Vec3{bl, tr, tl},
					UVs:    [3]mathutil.Vec2{{0, 1}, {1, 0}, {0, 0}},
					Color:  color(bl, tr, tl),
				},
			)
		}
	}

	return &Terrain{newTriangleList(tris)}
}
