package colors

// Color is an 8-bit straight-alpha RGBA pixel. The zero value is fully
// transparent black.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Cyan        = Color{0, 255, 255, 255}
	Magenta     = Color{255, 0, 255, 255}
)

func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Blend composites c over bg with the standard "over" operator on
// straight alpha.
func (c Color) Blend(bg Color) Color {
	fa := float32(c.A) / 255
	ba := float32(bg.A) / 255
	a := (1-fa)*ba + fa
	if a <= 0 {
		return Color{}
	}
	blend := func(f, b uint8) uint8 {
		fc := float32(f) / 255
		bc := float32(b) / 255
		return clamp255(((1-fa)*ba*bc + fa*fc) / a * 255)
	}
	return Color{
		R: blend(c.R, bg.R),
		G: blend(c.G, bg.G),
		B: blend(c.B, bg.B),
		A: clamp255(a * 255),
	}
}

func (c Color) Lerp(other Color, t float32) Color {
	lerp := func(a, b uint8) uint8 {
		return clamp255(float32(a) + (float32(b)-float32(a))*t)
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// Scale multiplies the color channels by brightness, leaving alpha
// unchanged.
func (c Color) Scale(brightness float32) Color {
	return Color{
		R: clamp255(float32(c.R) * brightness),
		G: clamp255(float32(c.G) * brightness),
		B: clamp255(float32(c.B) * brightness),
		A: c.A,
	}
}

// ANSI256 maps the color onto the 6×6×6 cube of the 256-color terminal
// palette.
func (c Color) ANSI256() uint8 {
	r := uint16(c.R) / 51
	g := uint16(c.G) / 51
	b := uint16(c.B) / 51
	return uint8(16 + 36*r + 6*g + b)
}
