// Orbit opens a window on a mesh. Drag with the left mouse button to
// swing the camera around it, scroll to zoom.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ryanw/toru/camera"
	"github.com/ryanw/toru/canvas"
	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
	"github.com/ryanw/toru/texture"
)

type game struct {
	cv     *canvas.Canvas[colors.Color]
	cam    *camera.Orbit
	frame  *ebiten.Image
	width  int
	height int

	dragging     bool
	lastX, lastY int
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.cam.Rotate(-float32(x-g.lastX)*0.01, -float32(y-g.lastY)*0.01)
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(-float32(wy) * 0.5)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.cv.Tick()
	// Scene pixels are opaque or fully transparent, so the straight
	// alpha bytes are valid premultiplied values as-is.
	g.frame.WritePixels(canvas.Image(g.cv).Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	width := flag.Int("width", 640, "Render width in pixels")
	height := flag.Int("height", 480, "Render height in pixels")
	meshFile := flag.String("mesh", "", "Wavefront OBJ file to view (default: built-in terrain)")
	texFile := flag.String("texture", "", "PNG, JPEG or TGA texture (default: vertex colors)")
	seed := flag.Int64("seed", 1, "Terrain noise seed")

	flag.Parse()

	if *width < 1 || *height < 1 {
		fmt.Fprintln(os.Stderr, "Error: width and height must be positive")
		os.Exit(1)
	}

	var m mesh.Mesh = mesh.NewTerrain(50, 50, *seed)
	if *meshFile != "" {
		loaded, err := mesh.LoadOBJ(*meshFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
			os.Exit(1)
		}
		m = loaded
	}

	mat := material.FromColor(colors.White)
	if *texFile != "" {
		tex, err := texture.Load(*texFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		mat = material.FromTexture(tex)
	}

	bounds := m.Bounds()
	cam := camera.NewOrbit(bounds.Center(), bounds.Size().Len())
	cam.Rotate(0, -mathutil.Deg2Rad(30))
	cam.Resize(*width, *height)

	g := &game{
		cam:    cam,
		frame:  ebiten.NewImage(*width, *height),
		width:  *width,
		height: *height,
	}
	g.cv = canvas.New(*width, *height, func(ctx *canvas.DrawContext[colors.Color], dt float32) {
		canvas.DrawMesh(ctx, m, cam, mat)
	})

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Toru Orbit")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
