// Package material describes what covers a surface: a flat color or a
// texture.
package material

import (
	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/texture"
)

// Material is a tagged choice between a flat color and a texture.
// The zero value is the transparent flat color.
type Material[P colors.Blendable[P]] struct {
	color P
	tex   *texture.Texture[P]
}

func FromColor[P colors.Blendable[P]](c P) Material[P] {
	return Material[P]{color: c}
}

func FromTexture[P colors.Blendable[P]](t *texture.Texture[P]) Material[P] {
	return Material[P]{tex: t}
}

// Sample returns the surface pixel at normalized UV. Flat-color
// materials ignore the coordinates.
func (m Material[P]) Sample(u, v float32) P {
	if m.tex != nil {
		return m.tex.Sample(u, v)
	}
	return m.color
}

// Textured reports whether the material samples a texture.
func (m Material[P]) Textured() bool {
	return m.tex != nil
}
