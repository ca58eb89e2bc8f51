package main

import (
	"strings"
)

type modifier int

const (
	modifierCtrl modifier = iota
	modifierMeta
)

func (m modifier) String() string {
	switch m {
	case modifierCtrl:
		return "Ctrl"
	case modifierMeta:
		return "Meta"
	}
	return "unknown"
}

var applePlatformPrefixes = []string{"Mac", "iPhone", "iPad", "iPod"}

// bypassModifier returns the modifier key signaling deliberate zoom intent
// on the given platform: Meta on Apple platforms, Ctrl everywhere else.
func bypassModifier(platform string) modifier {
	for _, prefix := range applePlatformPrefixes {
		if strings.HasPrefix(platform, prefix) {
			return modifierMeta
		}
	}
	return modifierCtrl
}

type modifierKeys struct {
	ctrl bool
	meta bool
}

func (k modifierKeys) has(m modifier) bool {
	switch m {
	case modifierCtrl:
		return k.ctrl
	case modifierMeta:
		return k.meta
	}
	return false
}
