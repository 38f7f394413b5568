package viewcube

import (
	"github.com/seqsense/pcgol/mat"
)

const degenerateUpEps = 1e-12

// Camera is a perspective camera with a mutable pose. It is the minimal
// surface the gizmo needs from the host: a position, an up vector and a
// lookAt-style orientation. The gizmo also uses it for its own private
// camera.
type Camera struct {
	Position mat.Vec3
	Up       mat.Vec3

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	target mat.Vec3
}

func NewCamera(fov, aspect, near, far float32) *Camera {
	return &Camera{
		Up:     mat.NewVec3(0, 1, 0),
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// LookAt aims the camera at p. The orientation is derived from the
// stored target on each ViewMatrix call, so moving the camera afterwards
// keeps it aimed at p.
func (c *Camera) LookAt(p mat.Vec3) {
	c.target = p
}

// Target returns the point set by the last LookAt.
func (c *Camera) Target() mat.Vec3 {
	return c.target
}

func (c *Camera) ProjectionMatrix() mat.Mat4 {
	return mat.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewMatrix builds the world-to-camera transform from the current
// position, target and up vector.
func (c *Camera) ViewMatrix() mat.Mat4 {
	f := c.target.Sub(c.Position).Normalized()
	up := c.Up
	if f.Cross(up).NormSq() < degenerateUpEps {
		// View direction parallel to the up vector (top/bottom views).
		// Substitute a Z-axis up so the front face lands at the bottom
		// edge of the screen for top, and the top edge for bottom.
		if f[1] < 0 {
			up = mat.NewVec3(0, 0, -1)
		} else {
			up = mat.NewVec3(0, 0, 1)
		}
		if f.Cross(up).NormSq() < degenerateUpEps {
			up = mat.NewVec3(1, 0, 0)
		}
	}
	s := f.Cross(up).Normalized()
	u := s.Cross(f)
	r := mat.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		0, 0, 0, 1,
	}
	return r.MulAffine(mat.Translate(-c.Position[0], -c.Position[1], -c.Position[2]))
}
