package viewcube

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestNormalize(t *testing.T) {
	rect := Rect{Left: 100, Top: 50, Width: 200, Height: 100}
	testCases := map[string]struct {
		clientX, clientY float64
		x, y             float32
	}{
		"Center":      {200, 100, 0, 0},
		"TopLeft":     {100, 50, -1, 1},
		"BottomRight": {300, 150, 1, -1},
		"MidLeft":     {100, 100, -1, 0},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			x, y := normalize(rect, tt.clientX, tt.clientY)
			if x != tt.x || y != tt.y {
				t.Errorf("(%f, %f) must normalize to (%f, %f), got (%f, %f)",
					tt.clientX, tt.clientY, tt.x, tt.y, x, y)
			}
		})
	}
}

func newFrontCamera() *Camera {
	cam := NewCamera(math.Pi/3, 1, 0.1, 100)
	cam.Position = mat.NewVec3(0, 0, 3)
	cam.LookAt(mat.Vec3{})
	return cam
}

func TestPickControllerBeforeFirstEvent(t *testing.T) {
	var dispatched []ViewCommand
	p := newPickController(
		Rect{Width: 100, Height: 100},
		func(c ViewCommand) { dispatched = append(dispatched, c) },
	)
	// Narrow field of view: a ray through the bottom-left corner of the
	// viewport would land on the front face, the same corner the unset
	// pointer state encodes.
	cam := NewCamera(0.3, 1, 0.1, 100)
	cam.Position = mat.NewVec3(0, 0, 3)
	cam.LookAt(mat.Vec3{})
	faces := CubeFaces()

	p.step(cam, faces)
	if p.hoverOK {
		t.Errorf("No hover must be reported before the first pointer event, got %s", p.hover)
	}
	if len(dispatched) != 0 {
		t.Errorf("Nothing must dispatch before the first pointer event, got %v", dispatched)
	}

	// A real event near that corner picks normally.
	p.PointerMove(1, 99)
	p.step(cam, faces)
	if !p.hoverOK || p.hover != ViewFront {
		t.Errorf("Corner pointer event must hover the front face, got %s (%v)", p.hover, p.hoverOK)
	}
}

func TestPickControllerStep(t *testing.T) {
	var dispatched []ViewCommand
	p := newPickController(
		Rect{Width: 100, Height: 100},
		func(c ViewCommand) { dispatched = append(dispatched, c) },
	)
	cam := newFrontCamera()
	faces := CubeFaces()

	// Hover without a press tracks the face but dispatches nothing.
	p.PointerMove(50, 50)
	p.step(cam, faces)
	if len(dispatched) != 0 {
		t.Errorf("Hover must not dispatch, got %v", dispatched)
	}
	if !p.hoverOK || p.hover != ViewFront {
		t.Errorf("Center hover must resolve to the front face, got %s (%v)", p.hover, p.hoverOK)
	}

	p.PointerDown(50, 50)
	p.step(cam, faces)
	if len(dispatched) != 1 || dispatched[0] != ViewFront {
		t.Fatalf("Press over the front face must dispatch it, got %v", dispatched)
	}

	// The pick repeats every frame while pressed; debouncing is the
	// dispatch target's concern.
	p.step(cam, faces)
	if len(dispatched) != 2 {
		t.Errorf("Each pressed frame must dispatch, got %v", dispatched)
	}

	p.PointerUp()
	p.step(cam, faces)
	if len(dispatched) != 2 {
		t.Errorf("Release must stop dispatching, got %v", dispatched)
	}

	// Off the cube there is neither hover nor dispatch.
	p.PointerDown(1, 1)
	p.step(cam, faces)
	if len(dispatched) != 2 {
		t.Errorf("Miss must not dispatch, got %v", dispatched)
	}
	if p.hoverOK {
		t.Errorf("Miss must clear the hover, got %s", p.hover)
	}
}
