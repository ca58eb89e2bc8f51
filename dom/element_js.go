package dom

import (
	"syscall/js"
)

// Element wraps a DOM element the same way gl wraps a canvas:
// a thin typed handle over js.Value.
type Element js.Value

func GetElementByID(id string) Element {
	return Element(js.Global().Get("document").Call("getElementById", id))
}

func CreateElement(tag string) Element {
	return Element(js.Global().Get("document").Call("createElement", tag))
}

func (e Element) JS() js.Value {
	return js.Value(e)
}

func (e Element) IsNull() bool {
	return js.Value(e).IsNull() || js.Value(e).IsUndefined()
}

func (e Element) AppendChild(c Element) {
	js.Value(e).Call("appendChild", js.Value(c))
}

func (e Element) Remove() {
	js.Value(e).Call("remove")
}

func (e Element) SetAttribute(key, value string) {
	js.Value(e).Call("setAttribute", key, value)
}

func (e Element) SetTextContent(text string) {
	js.Value(e).Set("textContent", text)
}

func (e Element) AddClass(class string) {
	js.Value(e).Get("classList").Call("add", class)
}

func (e Element) RemoveClass(class string) {
	js.Value(e).Get("classList").Call("remove", class)
}

func (e Element) HasClass(class string) bool {
	return js.Value(e).Get("classList").Call("contains", class).Bool()
}

func (e Element) ClientWidth() int {
	return js.Value(e).Get("clientWidth").Int()
}

func (e Element) ClientHeight() int {
	return js.Value(e).Get("clientHeight").Int()
}

func (e Element) Width() int {
	return js.Value(e).Get("width").Int()
}

func (e Element) Height() int {
	return js.Value(e).Get("height").Int()
}

func (e Element) SetWidth(width int) {
	js.Value(e).Set("width", width)
}

func (e Element) SetHeight(height int) {
	js.Value(e).Set("height", height)
}

func (e Element) OnWheel(cb func(WheelEvent)) {
	js.Value(e).Call("addEventListener", "wheel",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			cb(parseWheelEvent(args[0]))
			return nil
		}),
	)
}

func (e Element) OnMouseDown(cb func(MouseEvent)) {
	e.onMouse("mousedown", cb)
}

func (e Element) OnMouseMove(cb func(MouseEvent)) {
	e.onMouse("mousemove", cb)
}

func (e Element) OnMouseUp(cb func(MouseEvent)) {
	e.onMouse("mouseup", cb)
}

func (e Element) onMouse(name string, cb func(MouseEvent)) {
	js.Value(e).Call("addEventListener", name,
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			cb(parseMouseEvent(args[0]))
			return nil
		}),
	)
}

func (e Element) OnTouchStart(cb func(TouchEvent)) {
	e.onTouch("touchstart", cb)
}

func (e Element) OnTouchMove(cb func(TouchEvent)) {
	e.onTouch("touchmove", cb)
}

func (e Element) OnTouchEnd(cb func(TouchEvent)) {
	e.onTouch("touchend", cb)
}

func (e Element) OnTouchCancel(cb func(TouchEvent)) {
	e.onTouch("touchcancel", cb)
}

func (e Element) onTouch(name string, cb func(TouchEvent)) {
	js.Value(e).Call("addEventListener", name,
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			cb(parseTouchEvent(args[0]))
			return nil
		}),
	)
}
