package main

const (
	defaultDesktopHelpTextWindows = "Use Ctrl + scroll to zoom the map"
	defaultDesktopHelpTextMac     = "Use ⌘ + scroll to zoom the map"
	defaultTouchHelpText          = "Use two fingers to move the map"
)

// GestureGuardOptions turns gesture guarding on and optionally overrides the
// instruction texts shown when a gesture looks unintentional. Unset fields
// fall back to the defaults above.
type GestureGuardOptions struct {
	DesktopHelpTextWindows string `yaml:"desktopHelpTextWindows"`
	DesktopHelpTextMac     string `yaml:"desktopHelpTextMac"`
	TouchHelpText          string `yaml:"touchHelpText"`
}

type notification interface {
	Flash()
	Destroy()
}

type guardHost interface {
	platform() string
	zoomPermitted() bool
	newNotification(desktopText, touchText string) notification
	setGuardMarker(active bool)
}

// gestureGuard flags gestures that likely were not meant for the map:
// a wheel scroll without the platform's bypass modifier, or a single-finger
// touch drag. It never consumes events itself; it only flashes a short
// instruction overlay owned by it while enabled.
type gestureGuard struct {
	host guardHost

	configured  bool
	bypass      modifier
	desktopText string
	touchText   string

	enabled bool
	overlay notification
}

// newGestureGuard builds a guard for the host. A nil opts disables guarding
// entirely: no overlay is ever created and all event intake is a no-op.
func newGestureGuard(host guardHost, opts *GestureGuardOptions) *gestureGuard {
	g := &gestureGuard{
		host:   host,
		bypass: bypassModifier(host.platform()),
	}
	if opts == nil {
		return g
	}
	g.configured = true
	if g.bypass == modifierMeta {
		g.desktopText = opts.DesktopHelpTextMac
		if g.desktopText == "" {
			g.desktopText = defaultDesktopHelpTextMac
		}
	} else {
		g.desktopText = opts.DesktopHelpTextWindows
		if g.desktopText == "" {
			g.desktopText = defaultDesktopHelpTextWindows
		}
	}
	g.touchText = opts.TouchHelpText
	if g.touchText == "" {
		g.touchText = defaultTouchHelpText
	}
	return g
}

func (g *gestureGuard) Enable() {
	if !g.configured {
		return
	}
	if g.overlay == nil {
		g.overlay = g.host.newNotification(g.desktopText, g.touchText)
		g.host.setGuardMarker(true)
	}
	g.enabled = true
}

// Disable clears the enabled flag before tearing the overlay down so that a
// late event can not race into a destroyed overlay.
func (g *gestureGuard) Disable() {
	g.enabled = false
	if g.overlay != nil {
		g.overlay.Destroy()
		g.overlay = nil
		g.host.setGuardMarker(false)
	}
}

func (g *gestureGuard) IsEnabled() bool {
	return g.enabled
}

// IsActive is always false. The guard is advisory and never consumes a
// gesture; it implements viewportHandler only so the viewport can manage it
// together with the other handlers.
func (g *gestureGuard) IsActive() bool {
	return false
}

func (g *gestureGuard) Reset() {}

// wheel classifies a wheel event. Without scroll zoom there is nothing to
// guard; otherwise the event is unintentional unless the bypass modifier is
// held.
func (g *gestureGuard) wheel(keys modifierKeys) {
	if !g.host.zoomPermitted() {
		return
	}
	if !keys.has(g.bypass) {
		g.notify()
	}
}

// touchMove classifies a touch-move event. A single-finger drag is reserved
// for page scroll; two or more touch points are a deliberate map gesture.
func (g *gestureGuard) touchMove(touchPoints int) {
	if touchPoints == 1 {
		g.notify()
	}
}

// allowsWheelZoom reports whether a wheel event with the given modifiers may
// be consumed for zooming instead of being left to the page.
func (g *gestureGuard) allowsWheelZoom(keys modifierKeys) bool {
	return !g.enabled || keys.has(g.bypass)
}

func (g *gestureGuard) notify() {
	if !g.enabled || g.overlay == nil {
		return
	}
	g.overlay.Flash()
}
