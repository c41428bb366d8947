// Package colors provides the pixel types and blending capability used
// by the rendering pipeline. The pipeline itself is generic: any value
// type satisfying Blendable can be a pixel.
package colors

// Blendable is the capability a pixel type needs for compositing and
// shading: alpha compositing over a background, linear interpolation,
// and brightness scaling. The zero value of P is the default
// (fully transparent) pixel.
type Blendable[P any] interface {
	// Blend composites the receiver over bg.
	Blend(bg P) P
	// Lerp interpolates componentwise from the receiver toward other.
	Lerp(other P, t float32) P
	// Scale multiplies brightness, leaving transparency alone.
	Scale(brightness float32) P
}
