package raster

import "github.com/ryanw/toru/shader"

// Clipping runs in homogeneous clip space, before the perspective
// divide: a vertex is inside the frustum slab of an axis when
// −w ≤ component ≤ w. Vertices behind the eye have w < 0 and fail
// both x half-spaces, so clipping also removes them exactly at the
// frustum boundary.

// clipRing cuts a convex polygon ring against one half-space
// (component·sign ≤ w), appending survivors and boundary crossings to
// out. New vertices come from Lerp at the crossing parameter.
func clipRing[F shader.Varyings[F]](in []F, axis int, sign float32, out []F) []F {
	out = out[:0]
	n := len(in)
	for i := 0; i < n; i++ {
		prev := in[(i+n-1)%n]
		cur := in[i]
		pp := prev.Position()
		cp := cur.Position()
		dPrev := pp[3] - sign*pp[axis]
		dCur := cp[3] - sign*cp[axis]

		if (dPrev >= 0) != (dCur >= 0) {
			out = append(out, prev.Lerp(cur, dPrev/(dPrev-dCur)))
		}
		if dCur >= 0 {
			out = append(out, cur)
		}
	}
	return out
}

func insideXY[F shader.Varyings[F]](f F) bool {
	p := f.Position()
	w := p[3]
	return p[0] >= -w && p[0] <= w && p[1] >= -w && p[1] <= w
}

func clipTriangleAxes[F shader.Varyings[F]](tri [3]F, axes int) [][3]F {
	ring := make([]F, 3, 8)
	copy(ring, tri[:])
	scratch := make([]F, 0, 8)

	for axis := 0; axis < axes; axis++ {
		for _, sign := range [2]float32{1, -1} {
			scratch = clipRing(ring, axis, sign, scratch)
			ring, scratch = scratch, ring
			if len(ring) < 3 {
				return nil
			}
		}
	}

	out := make([][3]F, 0, len(ring)-2)
	for i := 1; i+1 < len(ring); i++ {
		out = append(out, [3]F{ring[0], ring[i], ring[i+1]})
	}
	return out
}

// ClipTriangle clips one clip-space triangle against the x and y
// frustum half-spaces and fans the surviving polygon into triangles
// from its first vertex. Triangles fully inside pass through
// untouched; fully outside ones yield nothing.
func ClipTriangle[F shader.Varyings[F]](tri [3]F) [][3]F {
	if insideXY(tri[0]) && insideXY(tri[1]) && insideXY(tri[2]) {
		return [][3]F{tri}
	}
	return clipTriangleAxes(tri, 2)
}

// ClipTriangleZ clips against z as well, for callers that want
// near/far clipping in clip space.
func ClipTriangleZ[F shader.Varyings[F]](tri [3]F) [][3]F {
	return clipTriangleAxes(tri, 3)
}

// ClipLine clips a clip-space segment against the x and y frustum
// half-spaces. ok is false when the segment lies fully outside.
func ClipLine[F shader.Varyings[F]](a, b F) (F, F, bool) {
	for axis := 0; axis < 2; axis++ {
		for _, sign := range [2]float32{1, -1} {
			pa := a.Position()
			pb := b.Position()
			da := pa[3] - sign*pa[axis]
			db := pb[3] - sign*pb[axis]
			aIn := da >= 0
			bIn := db >= 0

			switch {
			case aIn && bIn:
			case !aIn && !bIn:
				return a, b, false
			case aIn:
				b = a.Lerp(b, da/(da-db))
			default:
				a = a.Lerp(b, da/(da-db))
			}
		}
	}
	return a, b, true
}
