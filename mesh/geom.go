package mesh

import (
	"github.com/ryanw/toru/colors"
	"github.com/ryanw/toru/mathutil"
)

// Triangle is one mesh-space triangle. Front faces wind
// counter-clockwise viewed from outside. Color zero defers to the
// material; a set normal overrides the face normal.
type Triangle struct {
	Points [3]mathutil.Vec3
	UVs    [3]mathutil.Vec2
	Color  colors.Color
	normal mathutil.Vec3
	hasN   bool
}

// Normal returns the explicit normal when one was supplied, otherwise
// the face normal implied by the winding.
func (t Triangle) Normal() mathutil.Vec3 {
	if t.hasN {
		return t.normal
	}
	return t.Points[1].Sub(t.Points[0]).Cross(t.Points[2].Sub(t.Points[0])).Normalize()
}

// WithNormal returns a copy carrying an explicit normal.
func (t Triangle) WithNormal(n mathutil.Vec3) Triangle {
	t.normal = n
	t.hasN = true
	return t
}

// Vertices expands the triangle for the shader pipeline.
func (t Triangle) Vertices() [3]Vertex {
	n := t.Normal()
	var out [3]Vertex
	for i := 0; i < 3; i++ {
		out[i] = Vertex{
			Position: t.Points[i],
			Normal:   n,
			UV:       t.UVs[i],
			Color:    t.Color,
		}
	}
	return out
}

// ClipToPlane cuts the triangle against a plane, keeping the part on
// the normal side. Yields zero, one (all inside or corner triangle) or
// two triangles (quad split). UVs interpolate along the cut edges.
func (t Triangle) ClipToPlane(p mathutil.Plane) []Triangle {
	var d [3]float32
	inside := 0
	for i, pt := range t.Points {
		d[i] = p.DistanceToPoint(pt)
		if d[i] >= 0 {
			inside++
		}
	}

	switch inside {
	case 3:
		return []Triangle{t}
	case 0:
		return nil
	}

	// rotate so points[0] is the lone vertex on its side
	order := [3]int{0, 1, 2}
	if inside == 1 {
		for d[order[0]] < 0 {
			order = [3]int{order[1], order[2], order[0]}
		}
	} else {
		for d[order[0]] >= 0 {
			order = [3]int{order[1], order[2], order[0]}
		}
	}
	a, b, c := order[0], order[1], order[2]

	cut := func(i, j int) (mathutil.Vec3, mathutil.Vec2) {
		tt := d[i] / (d[i] - d[j])
		return t.Points[i].Lerp(t.Points[j], tt), t.UVs[i].Lerp(t.UVs[j], tt)
	}

	abP, abUV := cut(a, b)
	acP, acUV := cut(a, c)

	if inside == 1 {
		out := t
		out.Points = [3]mathutil.Vec3{t.Points[a], abP, acP}
		out.UVs = [3]mathutil.Vec2{t.UVs[a], abUV, acUV}
		return []Triangle{out}
	}

	// points[a] is outside: the kept quad is b, c, ac, ab
	t1 := t
	t1.Points = [3]mathutil.Vec3{t.Points[b], t.Points[c], acP}
	t1.UVs = [3]mathutil.Vec2{t.UVs[b], t.UVs[c], acUV}
	t2 := t
	t2.Points = [3]mathutil.Vec3{t.Points[b], acP, abP}
	t2.UVs = [3]mathutil.Vec2{t.UVs[b], acUV, abUV}
	return []Triangle{t1, t2}
}

// Line is a mesh-space segment.
type Line struct {
	Start mathutil.Vec3
	End   mathutil.Vec3
}

// IntersectPlane returns the point where the segment crosses the
// plane, or ok=false when the segment lies on one side or is parallel.
func (l Line) IntersectPlane(p mathutil.Plane) (mathutil.Vec3, bool) {
	d0 := p.DistanceToPoint(l.Start)
	d1 := p.DistanceToPoint(l.End)
	den := d0 - d1
	if den < 1e-8 && den > -1e-8 {
		return mathutil.Vec3{}, false
	}
	t := d0 / den
	if t < 0 || t > 1 {
		return mathutil.Vec3{}, false
	}
	return l.Start.Lerp(l.End, t), true
}
