package viewcube

import (
	"errors"

	"github.com/seqsense/pcgol/mat"
)

// ErrNoParentNode is returned by setup when the host container is not
// attached to a parent element.
var ErrNoParentNode = errors.New("container has no parent node")

// gizmoCameraDistance is the fixed distance of the gizmo camera from the
// cube. The cube has unit size, so this is independent of the primary
// camera distance.
const gizmoCameraDistance = 3.0

// Renderer draws the gizmo faces through the gizmo camera. The output
// must composite over the primary viewport with a transparent
// background.
type Renderer interface {
	DrawFaces(cam *Camera, faces []PickableFace, hover ViewCommand, hoverOK bool)
}

// Overlay is the secondary viewport element hosting the gizmo.
type Overlay interface {
	// Rect reports the on-screen rectangle in client coordinates. The
	// gizmo queries it once at setup; if the host repositions the
	// overlay afterwards it must call RecomputeViewportRect.
	Rect() Rect
	// Bind registers the pointer listeners feeding in. Touch events map
	// onto the same adapters.
	Bind(in PointerInput)
	// Release removes the overlay element, detaching its listeners.
	// Must tolerate being called more than once.
	Release()
}

// PointerInput receives pointer events in client coordinates.
type PointerInput interface {
	PointerMove(clientX, clientY float64)
	PointerDown(clientX, clientY float64)
	PointerUp()
}

type gizmoState int

const (
	gizmoMounted gizmoState = iota
	gizmoDestroyed
)

// Gizmo is the view cube overlay. Render mirrors the primary camera's
// orientation onto the gizmo camera every frame, and a press on a face
// snaps the primary camera to the corresponding canonical view.
type Gizmo struct {
	cfg      Config
	primary  *Camera
	cam      *Camera
	faces    []PickableFace
	pick     *pickController
	deb      *debouncer[ViewCommand]
	resolver *ViewResolver
	overlay  Overlay
	renderer Renderer
	state    gizmoState
}

// New mounts a gizmo for the primary camera. overlay and renderer are
// the host adapters; browsers get both from NewDOM. A setup failure
// leaves no state behind.
func New(primary *Camera, overlay Overlay, renderer Renderer, cfg Config) (*Gizmo, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	rect := overlay.Rect()
	aspect := float32(1)
	if rect.Height > 0 {
		aspect = float32(rect.Width / rect.Height)
	}
	cam := NewCamera(cfg.FOV, aspect, cfg.Near, cfg.Far)
	cam.Up = primary.Up

	g := &Gizmo{
		cfg:      cfg,
		primary:  primary,
		cam:      cam,
		faces:    CubeFaces(),
		overlay:  overlay,
		renderer: renderer,
	}
	g.resolver = &ViewResolver{
		Camera:   primary,
		Distance: cfg.CameraDistance,
		Focus:    cfg.FocusPoint,
	}
	g.deb = newDebouncer(cfg.quietPeriod(), g.apply)
	g.pick = newPickController(rect, g.deb.Trigger)
	overlay.Bind(g.pick)
	return g, nil
}

// apply runs a debounced view command. The state check keeps a command
// that was pending at teardown from acting on the released instance.
func (g *Gizmo) apply(cmd ViewCommand) {
	if g.state != gizmoMounted {
		return
	}
	_ = g.resolver.Resolve(cmd)
}

// Render runs one gizmo frame: mirror the primary camera pose at the
// fixed gizmo distance, cast the pick ray, draw the cube. Call once per
// host frame, after the primary camera update for that frame.
func (g *Gizmo) Render() {
	if g.state != gizmoMounted {
		return
	}
	dir := g.primary.Position.Sub(g.cfg.FocusPoint)
	if dir.NormSq() > 0 {
		g.cam.Position = dir.Normalized().Mul(gizmoCameraDistance)
	}
	g.cam.LookAt(mat.NewVec3(0, 0, 0))
	g.pick.step(g.cam, g.faces)
	g.renderer.DrawFaces(g.cam, g.faces, g.pick.hover, g.pick.hoverOK)
}

// RecomputeViewportRect re-reads the overlay rectangle. Hosts that move
// or resize the container must call this afterwards; nothing watches
// for resize automatically.
func (g *Gizmo) RecomputeViewportRect() {
	if g.state != gizmoMounted {
		return
	}
	g.pick.rect = g.overlay.Rect()
}

// PointerMove forwards a pointer event for hosts that deliver input
// themselves instead of through Overlay.Bind.
func (g *Gizmo) PointerMove(clientX, clientY float64) { g.pick.PointerMove(clientX, clientY) }

// PointerDown forwards a press event.
func (g *Gizmo) PointerDown(clientX, clientY float64) { g.pick.PointerDown(clientX, clientY) }

// PointerUp forwards a release event.
func (g *Gizmo) PointerUp() { g.pick.PointerUp() }

// Close tears the gizmo down: the pending debounced command is
// cancelled and the overlay is released. Safe to call more than once.
func (g *Gizmo) Close() {
	if g.state != gizmoMounted {
		return
	}
	g.state = gizmoDestroyed
	g.deb.Stop()
	g.overlay.Release()
}
