package viewcube

import (
	"strconv"
	"syscall/js"
)

// DOMOverlay is a canvas element overlapping the top-left corner of the
// host container, sized as a fraction of its width.
type DOMOverlay struct {
	canvas   js.Value
	funcs    []js.Func
	released bool
}

// NewDOMOverlay creates the overlay canvas as a sibling of container.
// It fails with ErrNoParentNode before touching the DOM tree if the
// container is detached.
func NewDOMOverlay(container js.Value, cfg Config) (*DOMOverlay, error) {
	parent := container.Get("parentNode")
	if parent.IsNull() || parent.IsUndefined() {
		return nil, ErrNoParentNode
	}
	doc := js.Global().Get("document")

	size := int(container.Call("getBoundingClientRect").Get("width").Float() * cfg.ViewportScale)
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", size)
	canvas.Set("height", size)

	style := canvas.Get("style")
	style.Set("position", "absolute")
	style.Set("left", strconv.Itoa(container.Get("offsetLeft").Int()+int(cfg.Margin))+"px")
	style.Set("top", strconv.Itoa(container.Get("offsetTop").Int()+int(cfg.Margin))+"px")
	style.Set("zIndex", "10")
	// Without this, touch drags over the overlay scroll the page instead
	// of arriving as pointer events.
	style.Set("touchAction", "none")

	parent.Call("appendChild", canvas)
	return &DOMOverlay{canvas: canvas}, nil
}

// Canvas returns the overlay canvas element, e.g. to build a renderer
// on it.
func (o *DOMOverlay) Canvas() js.Value {
	return o.canvas
}

func (o *DOMOverlay) Rect() Rect {
	r := o.canvas.Call("getBoundingClientRect")
	return Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

// Bind registers pointer listeners on the overlay canvas. Pointer events
// cover both mouse and touch; only the primary pointer is forwarded.
func (o *DOMOverlay) Bind(in PointerInput) {
	o.listen("pointermove", func(e js.Value) {
		in.PointerMove(e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	o.listen("pointerdown", func(e js.Value) {
		in.PointerDown(e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	up := func(js.Value) {
		in.PointerUp()
	}
	o.listen("pointerup", up)
	o.listen("pointercancel", up)
}

func (o *DOMOverlay) listen(name string, cb func(js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		e := args[0]
		e.Call("preventDefault")
		if e.Get("isPrimary").Bool() {
			cb(e)
		}
		return nil
	})
	o.funcs = append(o.funcs, f)
	o.canvas.Call("addEventListener", name, f)
}

// Release removes the overlay canvas, detaching its listeners.
// Idempotent.
func (o *DOMOverlay) Release() {
	if o.released {
		return
	}
	o.released = true
	o.canvas.Call("remove")
	for _, f := range o.funcs {
		f.Release()
	}
	o.funcs = nil
}
