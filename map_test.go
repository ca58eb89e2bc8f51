package main

import (
	"testing"
)

func TestParseOccupancyGrid(t *testing.T) {
	testCases := map[string]struct {
		yaml  string
		check func(t *testing.T, m *occupancyGrid)
		err   bool
	}{
		"Full": {
			yaml: `
image: office.png
resolution: 0.05
origin: [-10.0, -5.0, 0.0]
`,
			check: func(t *testing.T, m *occupancyGrid) {
				if m.Image != "office.png" {
					t.Errorf("Expected image office.png, got: %q", m.Image)
				}
				if m.Resolution != 0.05 {
					t.Errorf("Expected resolution 0.05, got: %f", m.Resolution)
				}
				x, y := m.origin()
				if x != -10 || y != -5 {
					t.Errorf("Expected origin (-10, -5), got: (%f, %f)", x, y)
				}
			},
		},
		"MissingImage": {
			yaml: "resolution: 0.05\n",
			err:  true,
		},
		"Broken": {
			yaml: "image: [\n",
			err:  true,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			m, err := parseOccupancyGrid([]byte(tt.yaml))
			if tt.err {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, m)
		})
	}
}

func TestOccupancyGrid_ImagePath(t *testing.T) {
	testCases := map[string]struct {
		yamlPath string
		image    string
		expected string
	}{
		"SameDir": {"maps/office.yaml", "office.png", "maps/office.png"},
		"RootDir": {"office.yaml", "office.png", "office.png"},
		"SubDir":  {"maps/office.yaml", "img/office.png", "maps/img/office.png"},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			m := &occupancyGrid{Image: tt.image}
			if p := m.imagePath(tt.yamlPath); p != tt.expected {
				t.Errorf("Expected: %q, got: %q", tt.expected, p)
			}
		})
	}
}

func TestOccupancyGrid_OriginDefault(t *testing.T) {
	m := &occupancyGrid{}
	x, y := m.origin()
	if x != 0 || y != 0 {
		t.Errorf("Expected origin (0, 0), got: (%f, %f)", x, y)
	}
}
