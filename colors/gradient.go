package colors

// Gradient interpolates between an ordered list of pixel stops.
type Gradient[P Blendable[P]] struct {
	stops []P
}

func NewGradient[P Blendable[P]](stops ...P) Gradient[P] {
	return Gradient[P]{stops: stops}
}

// At samples the gradient at t in [0,1]; t is clamped.
func (g Gradient[P]) At(t float32) P {
	var zero P
	n := len(g.stops)
	if n == 0 {
		return zero
	}
	if n == 1 || t <= 0 {
		return g.stops[0]
	}
	if t >= 1 {
		return g.stops[n-1]
	}
	pos := t * float32(n-1)
	i := int(pos)
	if i >= n-1 {
		i = n - 2
	}
	return g.stops[i].Lerp(g.stops[i+1], pos-float32(i))
}
