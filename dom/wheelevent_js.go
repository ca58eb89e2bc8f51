package dom

import (
	"syscall/js"
)

type WheelEvent struct {
	MouseEvent
	DeltaX, DeltaY, DeltaZ float64
	DeltaMode              DeltaMode
}

func parseWheelEvent(event js.Value) WheelEvent {
	return WheelEvent{
		MouseEvent: parseMouseEvent(event),
		DeltaX:     event.Get("deltaX").Float(),
		DeltaY:     event.Get("deltaY").Float(),
		DeltaZ:     event.Get("deltaZ").Float(),
		DeltaMode:  DeltaMode(event.Get("deltaMode").Int()),
	}
}
