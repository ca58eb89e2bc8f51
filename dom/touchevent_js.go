package dom

import (
	"syscall/js"
)

type Touch struct {
	Identifier int
	ClientX    float64
	ClientY    float64
}

type TouchEvent struct {
	UIEvent
	Touches  []Touch
	AltKey   bool
	CtrlKey  bool
	MetaKey  bool
	ShiftKey bool
}

func parseTouchEvent(event js.Value) TouchEvent {
	touches := event.Get("touches")
	n := touches.Get("length").Int()
	tt := make([]Touch, n)
	for i := 0; i < n; i++ {
		t := touches.Index(i)
		tt[i] = Touch{
			Identifier: t.Get("identifier").Int(),
			ClientX:    t.Get("clientX").Float(),
			ClientY:    t.Get("clientY").Float(),
		}
	}
	return TouchEvent{
		UIEvent: UIEvent{
			Event: Event{
				event: event,
			},
		},
		Touches:  tt,
		AltKey:   event.Get("altKey").Bool(),
		CtrlKey:  event.Get("ctrlKey").Bool(),
		MetaKey:  event.Get("metaKey").Bool(),
		ShiftKey: event.Get("shiftKey").Bool(),
	}
}
