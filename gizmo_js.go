package viewcube

import (
	"syscall/js"
)

// NewDOM mounts the gizmo over container with a DOM overlay canvas and
// a WebGL renderer. On failure nothing is left in the document.
func NewDOM(primary *Camera, container js.Value, cfg Config) (*Gizmo, error) {
	overlay, err := NewDOMOverlay(container, cfg)
	if err != nil {
		return nil, err
	}
	renderer, err := NewWebGLRenderer(overlay.Canvas())
	if err != nil {
		overlay.Release()
		return nil, err
	}
	g, err := New(primary, overlay, renderer, cfg)
	if err != nil {
		overlay.Release()
		return nil, err
	}
	return g, nil
}
