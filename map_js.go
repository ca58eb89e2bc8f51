package main

import (
	"fmt"
	"syscall/js"
)

// browserMapIO loads an occupancy grid over the network: the descriptor
// through fetch and the image through an Image element so the decoded
// pixels stay on the JS side for the texture upload.
type browserMapIO struct{}

func (*browserMapIO) readMap(yamlPath string) (*occupancyGrid, mapImage, error) {
	b, err := fetchGet(yamlPath)
	if err != nil {
		return nil, nil, err
	}
	m, err := parseOccupancyGrid(b)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", yamlPath, err)
	}
	img, err := loadImage(m.imagePath(yamlPath))
	if err != nil {
		return nil, nil, err
	}
	return m, img, nil
}

func loadImage(imgPath string) (mapImage, error) {
	chErr := make(chan error, 1)
	onLoad := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- nil
		return nil
	})
	onError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- fmt.Errorf("failed to load image %s", imgPath)
		return nil
	})
	defer onLoad.Release()
	defer onError.Release()

	img := js.Global().Get("Image").New()
	img.Call("addEventListener", "load", onLoad)
	img.Call("addEventListener", "error", onError)
	img.Set("src", imgPath)

	if err := <-chErr; err != nil {
		return nil, err
	}
	return &htmlImage{img: img}, nil
}

// htmlImage exposes a decoded HTMLImageElement to the renderer.
type htmlImage struct {
	img js.Value
}

func (m *htmlImage) Width() int {
	return m.img.Get("width").Int()
}

func (m *htmlImage) Height() int {
	return m.img.Get("height").Int()
}

func (m *htmlImage) Interface() interface{} {
	return m.img
}
