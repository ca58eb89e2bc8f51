package main

// viewportHandler is the capability contract shared by the input handlers
// attached to the viewport. IsActive reports whether the handler is in the
// middle of a gesture it consumes.
type viewportHandler interface {
	Enable()
	Disable()
	IsEnabled() bool
	IsActive() bool
	Reset()
}
