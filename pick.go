package viewcube

// Rect is the on-screen rectangle of the gizmo viewport in client
// coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

const pointerUnset = -1

// pointerState is the latest pointer position in normalized device
// coordinates plus the pressed flag. -1 on both axes means no pointer
// event has arrived yet.
type pointerState struct {
	x, y      float32
	activated bool
}

// normalize maps a client coordinate into the [-1, 1] device range of
// rect. Y grows upward in device space.
func normalize(rect Rect, clientX, clientY float64) (float32, float32) {
	x := (clientX-rect.Left)/rect.Width*2 - 1
	y := -(clientY-rect.Top)/rect.Height*2 + 1
	return float32(x), float32(y)
}

// pickController turns pointer events over the gizmo viewport into view
// commands. Events update the pointer state; the actual ray cast happens
// once per frame in step.
type pickController struct {
	rect     Rect
	state    pointerState
	dispatch func(ViewCommand)

	hover   ViewCommand
	hoverOK bool
}

func newPickController(rect Rect, dispatch func(ViewCommand)) *pickController {
	return &pickController{
		rect:     rect,
		state:    pointerState{x: pointerUnset, y: pointerUnset},
		dispatch: dispatch,
	}
}

func (p *pickController) PointerMove(clientX, clientY float64) {
	p.state.x, p.state.y = normalize(p.rect, clientX, clientY)
}

func (p *pickController) PointerDown(clientX, clientY float64) {
	p.state.x, p.state.y = normalize(p.rect, clientX, clientY)
	p.state.activated = true
}

func (p *pickController) PointerUp() {
	p.state.activated = false
}

// step casts the pick ray for this frame. The nearest intersected face
// is tracked for hover feedback and, while the pointer is pressed, its
// command is dispatched. A miss is not an error; nothing happens this
// frame.
func (p *pickController) step(cam *Camera, faces []PickableFace) {
	if p.state.x == pointerUnset && p.state.y == pointerUnset {
		// No pointer event yet; don't cast through the sentinel corner.
		return
	}
	hits := castRay(rayFromCamera(cam, p.state.x, p.state.y), faces)
	if len(hits) == 0 {
		p.hover, p.hoverOK = 0, false
		return
	}
	p.hover, p.hoverOK = hits[0].face.Command, true
	if p.state.activated {
		p.dispatch(p.hover)
	}
}
