package main

import (
	"github.com/seqsense/mapviewer/dom"
)

const (
	notificationClass      = "mapviewer-gesture-notification"
	notificationShownClass = "mapviewer-gesture-notification-shown"
	guardMarkerClass       = "mapviewer-gesture-guard"
)

// newNotificationElement builds the instruction overlay under container.
// The element carries both the desktop and the touch message; which one is
// visible is decided by the host CSS based on the input modality. The
// overlay is hidden from assistive technologies as it only makes sense for
// pointer and touch input.
func newNotificationElement(container dom.Element, desktopText, touchText string) *notifier {
	el := dom.CreateElement("div")
	el.AddClass(notificationClass)
	el.SetAttribute("aria-hidden", "true")

	desktop := dom.CreateElement("div")
	desktop.AddClass(notificationClass + "-desktop")
	desktop.SetTextContent(desktopText)
	el.AppendChild(desktop)

	touch := dom.CreateElement("div")
	touch.AddClass(notificationClass + "-touch")
	touch.SetTextContent(touchText)
	el.AppendChild(touch)

	container.AppendChild(el)

	return newNotifier(notificationElement(el))
}

type notificationElement dom.Element

func (n notificationElement) setShown(shown bool) {
	if shown {
		dom.Element(n).AddClass(notificationShownClass)
	} else {
		dom.Element(n).RemoveClass(notificationShownClass)
	}
}

func (n notificationElement) detach() {
	dom.Element(n).Remove()
}
