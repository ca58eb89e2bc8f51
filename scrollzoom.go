package main

import (
	"math"
)

const wheelZoomStep = 0.1

// scrollZoom zooms the view about the cursor on wheel input. Its enabled
// state is what the gesture guard queries as "zoom permitted".
type scrollZoom struct {
	view *view
	norm *wheelNormalizer

	enabled bool
}

func newScrollZoom(v *view) *scrollZoom {
	return &scrollZoom{
		view: v,
		norm: &wheelNormalizer{},
	}
}

func (s *scrollZoom) Enable() {
	s.enabled = true
}

func (s *scrollZoom) Disable() {
	s.enabled = false
}

func (s *scrollZoom) IsEnabled() bool {
	return s.enabled
}

func (s *scrollZoom) IsActive() bool {
	return false
}

func (s *scrollZoom) Reset() {
	*s.norm = wheelNormalizer{}
}

// wheel applies a wheel delta at the given screen position. A positive
// delta (scroll down) zooms out.
func (s *scrollZoom) wheel(delta, px, py float64) {
	if !s.enabled {
		return
	}
	d, ok := s.norm.normalize(delta)
	if !ok {
		// Device type is not known yet; fall back to one step per event.
		switch {
		case delta > 0:
			d = 1
		case delta < 0:
			d = -1
		default:
			return
		}
	}
	s.view.zoomAbout(math.Pow(2, -d*wheelZoomStep), px, py)
}
