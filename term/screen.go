// Package term presents canvas frames in a terminal, one background
// colored cell per pixel.
package term

import (
	"image/color"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/ryanw/toru/canvas"
	"github.com/ryanw/toru/colors"
)

// Screen drives a terminal through termenv. Enter switches to the
// alternate screen; callers should defer Leave so the shell comes back
// intact.
type Screen struct {
	out *termenv.Output
}

// NewScreen wraps an output. Use Stdout for the real terminal.
func NewScreen(out *termenv.Output) *Screen {
	return &Screen{out: out}
}

// Stdout is the standard terminal output with its detected color
// profile.
func Stdout() *termenv.Output {
	return termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.ColorProfile()))
}

func (s *Screen) Enter() {
	s.out.AltScreen()
	s.out.HideCursor()
	s.out.ClearScreen()
}

func (s *Screen) Leave() {
	s.out.ExitAltScreen()
	s.out.ShowCursor()
}

// Present paints the canvas row by row. Pixels composite over black
// first, terminals having no alpha.
func (s *Screen) Present(cv *canvas.Canvas[colors.Color]) {
	var row strings.Builder
	width := cv.Width()
	cv.EachPixel(func(x, y int, p colors.Color) {
		row.WriteString(s.out.String(" ").Background(s.cellColor(p)).String())
		if x == width-1 {
			s.out.MoveCursor(y+1, 1)
			_, _ = s.out.WriteString(row.String())
			row.Reset()
		}
	})
}

func (s *Screen) cellColor(p colors.Color) termenv.Color {
	flat := p.Blend(colors.Black)
	if s.out.Profile == termenv.ANSI256 {
		return termenv.ANSI256Color(int(flat.ANSI256()))
	}
	return s.out.Profile.FromColor(color.NRGBA{R: flat.R, G: flat.G, B: flat.B, A: 255})
}
