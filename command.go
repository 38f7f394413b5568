package viewcube

// ViewCommand identifies one of the six canonical camera views. Each
// gizmo face carries exactly one command.
type ViewCommand int

const (
	ViewFront ViewCommand = iota
	ViewBack
	ViewLeft
	ViewRight
	ViewTop
	ViewBottom
)

func (c ViewCommand) String() string {
	switch c {
	case ViewFront:
		return "front"
	case ViewBack:
		return "back"
	case ViewLeft:
		return "left"
	case ViewRight:
		return "right"
	case ViewTop:
		return "top"
	case ViewBottom:
		return "bottom"
	}
	return "unknown"
}

// Axis is a rotation axis of the primary camera. AxisZ is reserved and
// not accepted for camera rotation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}
