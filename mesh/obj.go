package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ryanw/toru/mathutil"
)

// Static is a mesh loaded from a Wavefront OBJ file.
type Static struct {
	triangleList
}

// LoadOBJ reads the v/vt/vn/f subset of a Wavefront OBJ file.
// Polygonal faces are fan-triangulated; file winding is kept.
func LoadOBJ(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open obj: %w", err)
	}
	defer f.Close()
	m, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", path, err)
	}
	return m, nil
}

func ReadOBJ(r io.Reader) (*Static, error) {
	var (
		positions []mathutil.Vec3
		uvs       []mathutil.Vec2
		normals   []mathutil.Vec3
		tris      []Triangle
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj line %d: texcoord needs 2 values", lineNo)
			}
			u, err1 := parseFloat(fields[1])
			v, err2 := parseFloat(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("obj line %d: bad texcoord", lineNo)
			}
			// obj uv origin is bottom-left
			uvs = append(uvs, mathutil.Vec2{u, 1 - v})
		case "vn":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, v)
		case "f":
			refs := fields[1:]
			if len(refs) < 3 {
				return nil, fmt.Errorf("obj line %d: face needs 3 vertices", lineNo)
			}
			parsed := make([]objRef, len(refs))
			for i, ref := range refs {
				pr, err := parseRef(ref, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				parsed[i] = pr
			}
			for i := 1; i+1 < len(parsed); i++ {
				tris = append(tris, buildTriangle(
					[3]objRef{parsed[0], parsed[i], parsed[i+1]},
					positions, uvs, normals))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj read: %w", err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("obj: no faces")
	}
	return &Static{newTriangleList(tris)}, nil
}

// objRef is a face vertex reference, resolved to 0-based indices;
// -1 marks an absent component.
type objRef struct {
	p, t, n int
}

func parseRef(s string, np, nt, nn int) (objRef, error) {
	parts := strings.Split(s, "/")
	ref := objRef{p: -1, t: -1, n: -1}

	resolve := func(raw string, count int) (int, error) {
		i, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("bad index %q", raw)
		}
		if i < 0 {
			i = count + i
		} else {
			i--
		}
		if i < 0 || i >= count {
			return 0, fmt.Errorf("index %q out of range", raw)
		}
		return i, nil
	}

	var err error
	if ref.p, err = resolve(parts[0], np); err != nil {
		return ref, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if ref.t, err = resolve(parts[1], nt); err != nil {
			return ref, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if ref.n, err = resolve(parts[2], nn); err != nil {
			return ref, err
		}
	}
	return ref, nil
}

func buildTriangle(refs [3]objRef, positions []mathutil.Vec3, uvs []mathutil.Vec2, normals []mathutil.Vec3) Triangle {
	var t Triangle
	n := mathutil.Vec3{}
	hasN := true
	for i, r := range refs {
		t.Points[i] = positions[r.p]
		if r.t >= 0 {
			t.UVs[i] = uvs[r.t]
		}
		if r.n >= 0 {
			n = n.Add(normals[r.n])
		} else {
			hasN = false
		}
	}
	if hasN {
		return t.WithNormal(n.Normalize())
	}
	return t
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func parseFloats3(fields []string) (mathutil.Vec3, error) {
	var v mathutil.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("need 3 values")
	}
	for i := 0; i < 3; i++ {
		f, err := parseFloat(fields[i])
		if err != nil {
			return v, fmt.Errorf("bad value %q", fields[i])
		}
		v[i] = f
	}
	return v, nil
}
