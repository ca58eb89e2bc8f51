package main

import (
	"sync"
	"time"
)

const notificationDuration = 100 * time.Millisecond

type notificationDisplay interface {
	setShown(shown bool)
	detach()
}

// notifier drives the transient instruction overlay. Every Flash arms its
// own hide timer and an earlier deadline is kept armed, so a burst of
// triggers hides on the first deadline.
type notifier struct {
	display notificationDisplay

	mu     sync.Mutex
	timers []*time.Timer
}

func newNotifier(display notificationDisplay) *notifier {
	return &notifier{display: display}
}

func (n *notifier) Flash() {
	n.display.setShown(true)
	var t *time.Timer
	t = time.AfterFunc(notificationDuration, func() {
		n.display.setShown(false)
		n.mu.Lock()
		n.dropTimer(t)
		n.mu.Unlock()
	})
	n.mu.Lock()
	n.timers = append(n.timers, t)
	n.mu.Unlock()
}

func (n *notifier) dropTimer(t *time.Timer) {
	for i, ti := range n.timers {
		if ti == t {
			n.timers = append(n.timers[:i], n.timers[i+1:]...)
			return
		}
	}
}

// Destroy cancels the pending hide timers and detaches the overlay so no
// timer can fire against a detached element.
func (n *notifier) Destroy() {
	n.mu.Lock()
	for _, t := range n.timers {
		t.Stop()
	}
	n.timers = nil
	n.mu.Unlock()
	n.display.detach()
}
