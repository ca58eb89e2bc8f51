package main

import (
	"syscall/js"

	"github.com/seqsense/mapviewer/dom"
)

// viewport owns the DOM surface of the viewer and dispatches browser input
// to the attached handlers.
type viewport struct {
	container dom.Element
	canvas    dom.Element

	view  *view
	zoom  *scrollZoom
	pan   *dragPan
	guard *gestureGuard
	touch *touchGesture

	handlers []viewportHandler
}

func newViewport(container, canvas dom.Element, opts *GestureGuardOptions) *viewport {
	vp := &viewport{
		container: container,
		canvas:    canvas,
		view:      newView(),
	}
	vp.zoom = newScrollZoom(vp.view)
	vp.pan = newDragPan(vp.view)
	vp.guard = newGestureGuard(vp, opts)
	vp.touch = &touchGesture{
		guard: vp.guard,
		pan:   vp.pan,
		zoom:  vp.zoom,
	}
	vp.handlers = []viewportHandler{vp.zoom, vp.pan, vp.guard}

	container.OnWheel(vp.onWheel)
	container.OnTouchStart(vp.touch.touchStart)
	container.OnTouchMove(vp.touch.touchMove)
	container.OnTouchEnd(vp.touch.touchEnd)
	container.OnTouchCancel(vp.touch.touchEnd)

	canvas.OnMouseDown(func(e dom.MouseEvent) {
		if e.Button == 0 {
			vp.pan.dragStart(float64(e.OffsetX), float64(e.OffsetY))
		}
	})
	canvas.OnMouseMove(func(e dom.MouseEvent) {
		vp.pan.drag(float64(e.OffsetX), float64(e.OffsetY))
	})
	canvas.OnMouseUp(func(e dom.MouseEvent) {
		vp.pan.dragEnd(float64(e.OffsetX), float64(e.OffsetY))
	})

	return vp
}

func (vp *viewport) enableHandlers() {
	for _, h := range vp.handlers {
		h.Enable()
	}
}

func (vp *viewport) onWheel(e dom.WheelEvent) {
	keys := modifierKeys{ctrl: e.CtrlKey, meta: e.MetaKey}
	vp.guard.OnWheel(e)
	if !vp.guard.allowsWheelZoom(keys) {
		// Leave the event to the page.
		return
	}
	e.PreventDefault()
	vp.zoom.wheel(e.DeltaY, float64(e.OffsetX), float64(e.OffsetY))
}

func (vp *viewport) platform() string {
	return js.Global().Get("navigator").Get("platform").String()
}

func (vp *viewport) zoomPermitted() bool {
	return vp.zoom.IsEnabled()
}

func (vp *viewport) newNotification(desktopText, touchText string) notification {
	return newNotificationElement(vp.container, desktopText, touchText)
}

func (vp *viewport) setGuardMarker(active bool) {
	if active {
		vp.container.AddClass(guardMarkerClass)
	} else {
		vp.container.RemoveClass(guardMarkerClass)
	}
}
