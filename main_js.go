package main

import (
	"time"

	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/mapviewer/dom"
)

const configPath = "viewer.yaml"

func main() {
	container := dom.GetElementByID("mapViewport")
	canvas := dom.GetElementByID("mapCanvas")
	if container.IsNull() || canvas.IsNull() {
		println("viewport elements are not found")
		return
	}

	b, err := fetchGet(configPath)
	if err != nil {
		println("failed to load config:", err.Error())
		return
	}
	cfg, err := parseViewerConfig(b)
	if err != nil {
		println("failed to parse config:", err.Error())
		return
	}

	vp := newViewport(container, canvas, cfg.CooperativeGestures)

	r, err := newRenderer(canvas)
	if err != nil {
		println("failed to initialize renderer:", err.Error())
		return
	}
	// The render context is webgl2 and a canvas serves only one context
	// type, so the GPU info is probed on a scratch canvas.
	if dbg, err := webgl.New(dom.CreateElement("canvas").JS()); err == nil {
		showDebugInfo(dbg)
	}

	m, img, err := (&browserMapIO{}).readMap(cfg.Map)
	if err != nil {
		println("failed to load map:", err.Error())
		return
	}
	r.setMap(m, img)

	x0, y0 := m.origin()
	vp.view.setSize(canvas.ClientWidth(), canvas.ClientHeight())
	vp.view.lookAt(
		float64(x0)+float64(img.Width())*float64(m.Resolution)/2,
		float64(y0)+float64(img.Height())*float64(m.Resolution)/2,
	)

	vp.enableHandlers()

	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()
	for {
		r.render(vp.view)
		<-tick.C
	}
}
