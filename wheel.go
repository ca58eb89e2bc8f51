package main

import (
	"time"
)

const (
	steppedDetectCnt = 4
	initialMaxDelta  = 10
)

type wheelDevice int

const (
	wheelDeviceUnknown wheelDevice = iota
	wheelDeviceStepped
	wheelDeviceContinuous
)

// wheelNormalizer maps raw wheel deltas onto comparable zoom steps.
// Stepped mice report a fixed delta per click and are normalized to ±1;
// continuous trackpads are scaled against a decaying peak rate. The second
// return value is false until enough events were seen to tell the device
// type apart.
type wheelNormalizer struct {
	ready    bool
	eventCnt int

	device   wheelDevice
	maxDelta float64

	repeatCnt int
	repeatAbs float64

	timePrev time.Time
	dSum     float64
}

func (n *wheelNormalizer) normalize(d float64) (float64, bool) {
	if n.eventCnt > steppedDetectCnt {
		n.ready = true
	} else {
		n.eventCnt++
	}

	dAbs := d
	if dAbs < 0 {
		dAbs = -d
	}
	if dAbs == 0 {
		return 0, n.ready
	}

	if n.repeatAbs == dAbs {
		n.repeatCnt++
	} else {
		n.repeatCnt = 0
	}
	n.repeatAbs = dAbs

	devicePrev := n.device
	if n.repeatCnt > steppedDetectCnt {
		n.device = wheelDeviceStepped
	} else {
		n.device = wheelDeviceContinuous
	}
	if n.device != devicePrev {
		n.maxDelta = initialMaxDelta
	}

	now := time.Now()
	dt := now.Sub(n.timePrev).Seconds()
	if dt > 0 {
		if dt > 0.1 {
			dt = 0.1
		}

		n.dSum += d
		dps := n.dSum / dt
		n.dSum = 0
		n.timePrev = now

		dpsAbs := dps
		if dpsAbs < 0 {
			dpsAbs = -dps
		}

		if n.maxDelta < dpsAbs {
			// LPF to suppress spikes
			n.maxDelta = n.maxDelta*0.5 + dpsAbs*0.5
		}
		n.maxDelta *= 0.95
	} else {
		n.dSum += d
	}

	if n.maxDelta < 1 {
		n.maxDelta = 1
	}
	if n.device == wheelDeviceStepped {
		if d < 0 {
			return -1, n.ready
		}
		return 1, n.ready
	}
	return d * 250 / n.maxDelta, n.ready
}
