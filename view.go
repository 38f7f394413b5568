package viewcube

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

// ErrUnsupportedAxis is returned when a rotation around the Z axis is
// requested. Z rotation is reserved and intentionally unimplemented.
var ErrUnsupportedAxis = errors.New("unsupported rotation axis")

var errInvalidCommand = errors.New("invalid view command")

// ViewResolver places a camera on a fixed-radius circle around the focus
// point according to view commands.
type ViewResolver struct {
	Camera   *Camera
	Distance float32
	Focus    mat.Vec3
}

// RotateCamera puts the camera at angular offset angle (radians) from
// the front reference position, on the circle of radius Distance in the
// plane orthogonal to axis, then re-aims it at the focus point. The
// camera's off-axis coordinate is reset to the focus plane before the
// rotation is applied: compound views are expressed as an ordered
// sequence of single-axis rotations, never as one 3D rotation.
func (r *ViewResolver) RotateCamera(angle float32, axis Axis) error {
	s, c := math32.Sincos(angle)
	switch axis {
	case AxisY:
		r.Camera.Position[1] = r.Focus[1]
		r.Camera.Position[0] = r.Focus[0] + r.Distance*s
		r.Camera.Position[2] = r.Focus[2] + r.Distance*c
	case AxisX:
		r.Camera.Position[0] = r.Focus[0]
		r.Camera.Position[1] = r.Focus[1] + r.Distance*s
		r.Camera.Position[2] = r.Focus[2] + r.Distance*c
	default:
		return ErrUnsupportedAxis
	}
	r.Camera.LookAt(r.Focus)
	return nil
}

// Resolve runs the rotation sequence of cmd. Top and bottom first reset
// the yaw to the front reference, so the tilt always starts from the
// same horizontal orientation regardless of any prior left/right state.
func (r *ViewResolver) Resolve(cmd ViewCommand) error {
	switch cmd {
	case ViewFront:
		return r.RotateCamera(0, AxisY)
	case ViewBack:
		return r.RotateCamera(math32.Pi, AxisY)
	case ViewRight:
		return r.RotateCamera(math32.Pi/2, AxisY)
	case ViewLeft:
		return r.RotateCamera(-math32.Pi/2, AxisY)
	case ViewTop:
		if err := r.RotateCamera(0, AxisY); err != nil {
			return err
		}
		return r.RotateCamera(math32.Pi/2, AxisX)
	case ViewBottom:
		if err := r.RotateCamera(0, AxisY); err != nil {
			return err
		}
		return r.RotateCamera(-math32.Pi/2, AxisX)
	}
	return errInvalidCommand
}
