package main

// dragPan moves the view center following a pointer drag.
type dragPan struct {
	view *view

	enabled  bool
	dragging bool

	x0, y0   float64
	cx0, cy0 float64
}

func newDragPan(v *view) *dragPan {
	return &dragPan{view: v}
}

func (d *dragPan) Enable() {
	d.enabled = true
}

func (d *dragPan) Disable() {
	d.enabled = false
	d.dragging = false
}

func (d *dragPan) IsEnabled() bool {
	return d.enabled
}

func (d *dragPan) IsActive() bool {
	return d.dragging
}

func (d *dragPan) Reset() {
	d.dragging = false
}

func (d *dragPan) dragStart(px, py float64) {
	if !d.enabled {
		return
	}
	d.dragging = true
	d.x0, d.y0 = px, py
	d.cx0, d.cy0 = d.view.x, d.view.y
}

func (d *dragPan) drag(px, py float64) {
	if !d.dragging {
		return
	}
	d.view.x = d.cx0 - (px-d.x0)/d.view.scale
	d.view.y = d.cy0 + (py-d.y0)/d.view.scale
}

func (d *dragPan) dragEnd(px, py float64) {
	if !d.dragging {
		return
	}
	d.drag(px, py)
	d.dragging = false
}
