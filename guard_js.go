package main

import (
	"github.com/seqsense/mapviewer/dom"
)

func (g *gestureGuard) OnWheel(e dom.WheelEvent) {
	g.wheel(modifierKeys{ctrl: e.CtrlKey, meta: e.MetaKey})
}

func (g *gestureGuard) OnTouchMove(e dom.TouchEvent) {
	g.touchMove(len(e.Touches))
}
