package main

import (
	"math"
	"testing"
)

func TestScrollZoom(t *testing.T) {
	v := newView()
	v.setSize(800, 600)
	s := newScrollZoom(v)

	if s.IsEnabled() {
		t.Error("Handler must be disabled after construction")
	}
	if s.IsActive() {
		t.Error("Handler must never be active")
	}

	s.wheel(100, 400, 300)
	if v.scale != defaultScale {
		t.Errorf("Disabled handler must not zoom, got scale: %f", v.scale)
	}

	s.Enable()
	if !s.IsEnabled() {
		t.Error("Handler must be enabled after Enable")
	}

	// Device type is unknown on the first event; one step per event applies.
	s.wheel(100, 400, 300)
	expected := defaultScale * math.Pow(2, -wheelZoomStep)
	if math.Abs(v.scale-expected) > 1e-9 {
		t.Errorf("Expected scale %f, got: %f", expected, v.scale)
	}

	s.wheel(-100, 400, 300)
	expected *= math.Pow(2, wheelZoomStep)
	if math.Abs(v.scale-expected) > 1e-9 {
		t.Errorf("Expected scale %f, got: %f", expected, v.scale)
	}

	scale := v.scale
	s.wheel(0, 400, 300)
	if v.scale != scale {
		t.Errorf("Expected zero delta to be ignored, got scale: %f", v.scale)
	}

	s.Disable()
	if s.IsEnabled() {
		t.Error("Handler must be disabled after Disable")
	}
}

func TestScrollZoom_Reset(t *testing.T) {
	v := newView()
	v.setSize(800, 600)
	s := newScrollZoom(v)
	s.Enable()

	for i := 0; i < 8; i++ {
		s.wheel(1, 400, 300)
	}
	if s.norm.eventCnt == 0 {
		t.Fatal("Normalizer must have consumed events")
	}

	s.Reset()
	if s.norm.eventCnt != 0 {
		t.Error("Reset must clear the normalizer state")
	}
}
