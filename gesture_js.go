package main

import (
	"math"

	"github.com/seqsense/mapviewer/dom"
)

// touchGesture maps multi-touch input onto the pan and zoom handlers.
// Two-finger gestures pan and pinch-zoom the map. Single-finger moves are
// left to the page; the gesture guard is the one reacting to those.
type touchGesture struct {
	guard *gestureGuard
	pan   *dragPan
	zoom  *scrollZoom

	panning      bool
	distance0    float64
	lastX, lastY float64
}

func (t *touchGesture) touchStart(e dom.TouchEvent) {
	if len(e.Touches) != 2 {
		t.stopPan()
		return
	}
	e.PreventDefault()
	cx, cy := touchCenter(e)
	t.pan.dragStart(cx, cy)
	t.panning = true
	t.distance0 = touchDistance(e)
	t.lastX, t.lastY = cx, cy
}

func (t *touchGesture) touchMove(e dom.TouchEvent) {
	t.guard.OnTouchMove(e)
	if len(e.Touches) != 2 {
		t.stopPan()
		return
	}
	e.PreventDefault()
	cx, cy := touchCenter(e)
	if !t.panning {
		t.pan.dragStart(cx, cy)
		t.panning = true
		t.distance0 = touchDistance(e)
		t.lastX, t.lastY = cx, cy
		return
	}
	t.pan.drag(cx, cy)
	t.lastX, t.lastY = cx, cy

	d := touchDistance(e)
	if t.distance0 > 0 && d > 0 {
		t.zoom.wheel((t.distance0-d)/10, cx, cy)
	}
	t.distance0 = d
}

func (t *touchGesture) touchEnd(e dom.TouchEvent) {
	if len(e.Touches) < 2 {
		t.stopPan()
	}
}

func (t *touchGesture) stopPan() {
	if t.panning {
		t.pan.dragEnd(t.lastX, t.lastY)
		t.panning = false
	}
	t.distance0 = 0
}

func touchCenter(e dom.TouchEvent) (float64, float64) {
	return (e.Touches[0].ClientX + e.Touches[1].ClientX) / 2,
		(e.Touches[0].ClientY + e.Touches[1].ClientY) / 2
}

func touchDistance(e dom.TouchEvent) float64 {
	return math.Hypot(
		e.Touches[0].ClientX-e.Touches[1].ClientX,
		e.Touches[0].ClientY-e.Touches[1].ClientY,
	)
}
