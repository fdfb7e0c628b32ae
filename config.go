package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
)

type LightConfig struct {
	Color     string     `json:"color"`
	Position  [3]float64 `json:"position"`
	Intensity float64    `json:"intensity"`
}

type SceneConfig struct {
	ClearColor string `json:"clearColor"`
	WireColor  string `json:"wireColor"`

	AmbientLight     LightConfig `json:"ambientLight"`
	DirectionalLight LightConfig `json:"directionalLight"`

	Model struct {
		Position [3]float64 `json:"position"`
		Scale    [3]float64 `json:"scale"`
	} `json:"model"`

	Screen struct {
		Size          [2]float64 `json:"size"`
		Position      [3]float64 `json:"position"`
		Subdivisions  int        `json:"subdivisions"`
		CpuResolution int        `json:"cpuResolution"`
	} `json:"screen"`

	Camera struct {
		Position [3]float64 `json:"position"`
		Target   [3]float64 `json:"target"`
		Fov      float64    `json:"fov"`
		Near     float64    `json:"near"`
		Far      float64    `json:"far"`
	} `json:"camera"`

	// parsed from strings above
	clearColor   color.NRGBA
	wireColor    color.NRGBA
	ambientColor color.NRGBA
	dirColor     color.NRGBA
}

func ParseSceneConfig(r io.Reader) (SceneConfig, error) {
	var cfg SceneConfig

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding scene config: %w", err)
	}

	colors := []struct {
		name string
		str  string
		dst  *color.NRGBA
	}{
		{"clearColor", cfg.ClearColor, &cfg.clearColor},
		{"wireColor", cfg.WireColor, &cfg.wireColor},
		{"ambientLight.color", cfg.AmbientLight.Color, &cfg.ambientColor},
		{"directionalLight.color", cfg.DirectionalLight.Color, &cfg.dirColor},
	}

	for _, c := range colors {
		clr, err := ParseColorString(c.str)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = clr
	}

	if cfg.Screen.Subdivisions <= 0 {
		cfg.Screen.Subdivisions = 1
	}
	if cfg.Screen.Subdivisions > MaxScreenSubdivisions {
		return cfg, fmt.Errorf("screen subdivisions must be at most %d, got %d", MaxScreenSubdivisions, cfg.Screen.Subdivisions)
	}
	if cfg.Screen.CpuResolution <= 0 {
		cfg.Screen.CpuResolution = int(2 / PatternPixelSize)
	}
	if cfg.Screen.Size[0] <= 0 || cfg.Screen.Size[1] <= 0 {
		return cfg, fmt.Errorf("screen size must be positive, got %v", cfg.Screen.Size)
	}
	if cfg.Camera.Fov <= 0 || cfg.Camera.Fov >= 180 {
		return cfg, fmt.Errorf("camera fov must be in (0, 180), got %v", cfg.Camera.Fov)
	}
	if cfg.Camera.Near <= 0 {
		return cfg, fmt.Errorf("camera near must be positive, got %v", cfg.Camera.Near)
	}
	if cfg.Camera.Far <= cfg.Camera.Near {
		return cfg, fmt.Errorf("camera far (%v) must be bigger than near (%v)", cfg.Camera.Far, cfg.Camera.Near)
	}

	return cfg, nil
}

// LoadSceneConfig reads config from path.
// Empty path means embedded default.
func LoadSceneConfig(path string) (SceneConfig, error) {
	if path == "" {
		return ParseSceneConfig(bytes.NewReader(defaultSceneConfigJson))
	}

	file, err := os.Open(path)
	if err != nil {
		return SceneConfig{}, err
	}
	defer file.Close()

	return ParseSceneConfig(file)
}
