package main

import (
	"github.com/seqsense/pcgol/mat"
)

const (
	defaultScale = 20.0
	minScale     = 0.25
	maxScale     = 256.0
)

// view is the 2D camera of the viewer: world coordinates of the viewport
// center and scale in pixels per world unit. Screen y grows downward, world
// y grows upward.
type view struct {
	x, y  float64
	scale float64

	width, height int
}

func newView() *view {
	return &view{
		scale: defaultScale,
	}
}

func (v *view) reset() {
	v.x, v.y = 0, 0
	v.scale = defaultScale
}

func (v *view) setSize(width, height int) {
	v.width, v.height = width, height
}

// lookAt centers the view on the given world position.
func (v *view) lookAt(x, y float64) {
	v.x, v.y = x, y
}

// pan moves the view center by a screen-space displacement.
func (v *view) pan(dx, dy float64) {
	v.x -= dx / v.scale
	v.y += dy / v.scale
}

// unproject converts a screen position to world coordinates.
func (v *view) unproject(px, py float64) (float64, float64) {
	return v.x + (px-float64(v.width)/2)/v.scale,
		v.y - (py-float64(v.height)/2)/v.scale
}

// zoomAbout scales the view by factor keeping the world point under the
// given screen position fixed. The scale is clamped to [minScale, maxScale].
func (v *view) zoomAbout(factor, px, py float64) {
	if factor <= 0 {
		return
	}
	s := v.scale * factor
	if s < minScale {
		s = minScale
	} else if s > maxScale {
		s = maxScale
	}
	wx, wy := v.unproject(px, py)
	v.scale = s
	v.x = wx - (px-float64(v.width)/2)/v.scale
	v.y = wy + (py-float64(v.height)/2)/v.scale
}

// matrix maps world coordinates to clip space for the current view.
func (v *view) matrix() mat.Mat4 {
	sx := 2 * float32(v.scale) / float32(v.width)
	sy := 2 * float32(v.scale) / float32(v.height)
	return mat.Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}.MulAffine(mat.Translate(-float32(v.x), -float32(v.y), 0))
}
