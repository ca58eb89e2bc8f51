package main

import (
	"errors"

	"gopkg.in/yaml.v3"
)

var errMapNotSet = errors.New("map is not set")

// viewerConfig is the configuration fetched once at startup. An absent
// cooperativeGestures section leaves the gesture guard fully disabled.
type viewerConfig struct {
	Map                 string               `yaml:"map"`
	CooperativeGestures *GestureGuardOptions `yaml:"cooperativeGestures"`
}

func parseViewerConfig(b []byte) (*viewerConfig, error) {
	c := &viewerConfig{}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if c.Map == "" {
		return nil, errMapNotSet
	}
	return c, nil
}
