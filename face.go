package viewcube

import (
	"github.com/seqsense/pcgol/mat"
)

const (
	faceSize      = 1.0
	faceThickness = 0.1
)

// PickableFace is one of the six gizmo faces: a thin axis-aligned box on
// the surface of the unit cube, tagged with the command it triggers.
// Faces are built once at setup and never mutated.
type PickableFace struct {
	Command ViewCommand
	Center  mat.Vec3
	Half    mat.Vec3
	Color   [3]float32
}

// CubeFaces builds the six faces of the view cube around the origin.
// Colors follow the axis convention: ±X red, ±Y green, ±Z blue, the
// negative side darker.
func CubeFaces() []PickableFace {
	const (
		o = faceSize / 2
		h = faceSize / 2
		t = faceThickness / 2
	)
	return []PickableFace{
		{ViewFront, mat.NewVec3(0, 0, o), mat.NewVec3(h, h, t), [3]float32{0.30, 0.45, 0.85}},
		{ViewBack, mat.NewVec3(0, 0, -o), mat.NewVec3(h, h, t), [3]float32{0.20, 0.30, 0.60}},
		{ViewRight, mat.NewVec3(o, 0, 0), mat.NewVec3(t, h, h), [3]float32{0.85, 0.35, 0.30}},
		{ViewLeft, mat.NewVec3(-o, 0, 0), mat.NewVec3(t, h, h), [3]float32{0.60, 0.25, 0.20}},
		{ViewTop, mat.NewVec3(0, o, 0), mat.NewVec3(h, t, h), [3]float32{0.35, 0.75, 0.35}},
		{ViewBottom, mat.NewVec3(0, -o, 0), mat.NewVec3(h, t, h), [3]float32{0.25, 0.55, 0.25}},
	}
}

func (f *PickableFace) bounds() (mat.Vec3, mat.Vec3) {
	return f.Center.Sub(f.Half), f.Center.Add(f.Half)
}

// corners returns the four outer corners of the face quad, counter
// clockwise. The normal axis is the one with the small half extent.
func (f *PickableFace) corners() [4]mat.Vec3 {
	n := 0
	for i := 1; i < 3; i++ {
		if f.Half[i] < f.Half[n] {
			n = i
		}
	}
	a, b := (n+1)%3, (n+2)%3
	var va, vb mat.Vec3
	va[a] = f.Half[a]
	vb[b] = f.Half[b]
	return [4]mat.Vec3{
		f.Center.Sub(va).Sub(vb),
		f.Center.Add(va).Sub(vb),
		f.Center.Add(va).Add(vb),
		f.Center.Sub(va).Add(vb),
	}
}

// faceVertexData flattens the faces into interleaved position+color
// vertex arrays: triangles for the fills and line segments for the
// edges. The hovered face is brightened.
func faceVertexData(faces []PickableFace, hover ViewCommand, hoverOK bool) (tris, lines []float32) {
	put := func(dst []float32, p mat.Vec3, c [3]float32) []float32 {
		return append(dst, p[0], p[1], p[2], c[0], c[1], c[2])
	}
	const edgeShade = 0.9
	edgeColor := [3]float32{edgeShade, edgeShade, edgeShade}
	for i := range faces {
		f := &faces[i]
		c := f.Color
		if hoverOK && f.Command == hover {
			for j := range c {
				c[j] *= 1.3
				if c[j] > 1 {
					c[j] = 1
				}
			}
		}
		q := f.corners()
		for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
			tris = put(tris, q[k], c)
		}
		for k := 0; k < 4; k++ {
			lines = put(lines, q[k], edgeColor)
			lines = put(lines, q[(k+1)%4], edgeColor)
		}
	}
	return tris, lines
}
