package main

import (
	"errors"
	"path"

	"gopkg.in/yaml.v3"
)

var errMapImageNotSet = errors.New("map image is not set")

// occupancyGrid is the metadata of a 2D grid map: the image file next to
// the descriptor, its resolution in world units per pixel and the world
// position of the image's lower-left corner.
type occupancyGrid struct {
	Image      string    `yaml:"image"`
	Resolution float32   `yaml:"resolution"`
	Origin     []float32 `yaml:"origin"`
}

// parseOccupancyGrid decodes a map descriptor and validates that it names
// its image file.
func parseOccupancyGrid(b []byte) (*occupancyGrid, error) {
	m := &occupancyGrid{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, err
	}
	if m.Image == "" {
		return nil, errMapImageNotSet
	}
	return m, nil
}

// imagePath resolves the image file relative to the descriptor location.
func (m *occupancyGrid) imagePath(yamlPath string) string {
	return path.Join(path.Dir(yamlPath), m.Image)
}

func (m *occupancyGrid) origin() (float32, float32) {
	if len(m.Origin) < 2 {
		return 0, 0
	}
	return m.Origin[0], m.Origin[1]
}

type mapImage interface {
	Width() int
	Height() int
	Interface() interface{}
}

type mapIO interface {
	readMap(yamlPath string) (*occupancyGrid, mapImage, error)
}
