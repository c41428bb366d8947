// Spin renders a rotating cube to the terminal, one background colored
// cell per pixel. Ctrl-C restores the shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ryanw/toru/camera"
	"github.com/ryanw/toru/canvas"
	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/material"
	"github.com/ryanw/toru/mathutil"
	"github.com/ryanw/toru/mesh"
	"github.com/ryanw/toru/shader"
	"github.com/ryanw/toru/term"
	"github.com/ryanw/toru/texture"
)

func main() {
	width := flag.Int("width", 80, "Canvas width in terminal cells")
	height := flag.Int("height", 40, "Canvas height in terminal cells")
	fps := flag.Int("fps", 30, "Frames per second")
	texFile := flag.String("texture", "", "PNG, JPEG or TGA texture for the cube")
	wireframe := flag.Bool("wireframe", false, "Draw cube edges instead of faces")

	flag.Parse()

	if *width < 1 || *height < 1 {
		fmt.Fprintln(os.Stderr, "Error: width and height must be positive")
		os.Exit(1)
	}
	if *fps < 1 {
		*fps = 1
	}

	mat := material.FromColor(colors.RGB(90, 170, 255))
	if *texFile != "" {
		tex, err := texture.Load(*texFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		mat = material.FromTexture(tex)
	}

	cube := mesh.NewCube(1)
	edges := cubeEdges(1)

	cam := camera.NewOrbit(mathutil.Vec3{}, 3)
	cam.SetPixelRatio(2) // terminal cells are about twice as tall as wide
	cam.Resize(*width, *height)

	var angle float32
	cv := canvas.New(*width, *height, func(ctx *canvas.DrawContext[colors.Color], dt float32) {
		angle += dt
		spin := mathutil.Mat4Mul(
			mathutil.Mat4RotationY(angle),
			mathutil.Mat4RotationX(angle*0.7),
		)
		ctx.WithTransform(spin, func() {
			if *wireframe {
				drawEdges(ctx, cam, edges)
			} else {
				canvas.DrawMesh(ctx, cube, cam, mat)
			}
		})
	})

	screen := term.NewScreen(term.Stdout())
	screen.Enter()
	defer screen.Leave()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			return
		case <-ticker.C:
			cv.Tick()
			screen.Present(cv)
		}
	}
}

// drawEdges renders the cube outline through the same flat program the
// mesh path uses; the edge vertices tint themselves green.
func drawEdges(ctx *canvas.DrawContext[colors.Color], cam camera.Camera, edges []mesh.Vertex) {
	prog := shader.NewProgram[mesh.Vertex, shader.FlatVaryings, colors.Color](
		&shader.FlatVertexShader{Model: ctx.Transform(), View: cam.View(), Projection: cam.Projection()},
		&shader.FlatFragmentShader{},
	)
	canvas.DrawLines(ctx, prog, edges)
}

// cubeEdges lists the 12 cube edges as line vertex pairs. Normals point
// out through each corner so edge brightness follows the light.
func cubeEdges(size float32) []mesh.Vertex {
	h := size / 2
	corners := [8]mathutil.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	pairs := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	verts := make([]mesh.Vertex, 0, len(pairs)*2)
	for _, pair := range pairs {
		for _, c := range pair {
			verts = append(verts, mesh.Vertex{
				Position: corners[c],
				Normal:   corners[c].Normalize(),
				Color:    colors.Green,
			})
		}
	}
	return verts
}
