package main

import (
	"sync"
	"testing"
	"time"
)

type fakeDisplay struct {
	mu       sync.Mutex
	shown    bool
	detached bool
}

func (d *fakeDisplay) setShown(shown bool) {
	d.mu.Lock()
	d.shown = shown
	d.mu.Unlock()
}

func (d *fakeDisplay) detach() {
	d.mu.Lock()
	d.detached = true
	d.mu.Unlock()
}

func (d *fakeDisplay) isShown() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

func TestNotifier_AutoHide(t *testing.T) {
	d := &fakeDisplay{}
	n := newNotifier(d)

	n.Flash()
	if !d.isShown() {
		t.Error("Overlay must be shown right after Flash")
	}

	time.Sleep(notificationDuration / 2)
	if !d.isShown() {
		t.Error("Overlay must still be shown before the hide deadline")
	}

	time.Sleep(notificationDuration)
	if d.isShown() {
		t.Error("Overlay must be hidden after the hide deadline")
	}
}

func TestNotifier_RetriggerKeepsFirstDeadline(t *testing.T) {
	d := &fakeDisplay{}
	n := newNotifier(d)

	n.Flash()
	time.Sleep(notificationDuration / 2)
	n.Flash()
	if !d.isShown() {
		t.Error("Overlay must be shown right after the second Flash")
	}

	// Now between the first deadline and the second one.
	// The first timer is not reset by the second Flash.
	time.Sleep(notificationDuration * 7 / 10)
	if d.isShown() {
		t.Error("Overlay must hide on the first deadline despite the retrigger")
	}
}

func TestNotifier_PrunesFiredTimers(t *testing.T) {
	d := &fakeDisplay{}
	n := newNotifier(d)

	for i := 0; i < 3; i++ {
		n.Flash()
	}
	n.mu.Lock()
	pending := len(n.timers)
	n.mu.Unlock()
	if pending != 3 {
		t.Fatalf("Expected 3 pending timers, got: %d", pending)
	}

	time.Sleep(notificationDuration * 2)
	n.mu.Lock()
	pending = len(n.timers)
	n.mu.Unlock()
	if pending != 0 {
		t.Errorf("Expected no pending timers after the deadlines, got: %d", pending)
	}
}

func TestNotifier_DestroyCancelsHide(t *testing.T) {
	d := &fakeDisplay{}
	n := newNotifier(d)

	n.Flash()
	n.Destroy()

	d.mu.Lock()
	detached := d.detached
	d.mu.Unlock()
	if !detached {
		t.Error("Destroy must detach the display")
	}

	time.Sleep(notificationDuration + 50*time.Millisecond)
	if !d.isShown() {
		t.Error("Cancelled hide timer must not fire after Destroy")
	}
}
