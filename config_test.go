package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSceneConfig(t *testing.T) {
	cfg, err := LoadSceneConfig("")
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, cfg.clearColor)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, cfg.wireColor)

	assert.Equal(t, 50.0, cfg.AmbientLight.Intensity)
	assert.Equal(t, [3]float64{10, 100, 5}, cfg.DirectionalLight.Position)
	assert.Equal(t, 1.5, cfg.DirectionalLight.Intensity)

	assert.Equal(t, [3]float64{0, -6, -7}, cfg.Model.Position)
	assert.Equal(t, [2]float64{50, 50}, cfg.Screen.Size)
	assert.Equal(t, [3]float64{0, 0, -2}, cfg.Screen.Position)
	assert.Equal(t, 200, cfg.Screen.CpuResolution)

	assert.Equal(t, 75.0, cfg.Camera.Fov)
}

func TestSceneConfigDefaultsFilledIn(t *testing.T) {
	src := bytes.ReplaceAll(defaultSceneConfigJson, []byte(`"subdivisions": 16`), []byte(`"subdivisions": 0`))

	cfg, err := ParseSceneConfig(bytes.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Screen.Subdivisions)

	src = bytes.ReplaceAll(defaultSceneConfigJson, []byte(`"subdivisions": 16`), []byte(`"subdivisions": 255`))
	cfg, err = ParseSceneConfig(bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, MaxScreenSubdivisions, cfg.Screen.Subdivisions)
}

func TestSceneConfigErrors(t *testing.T) {
	replace := func(old, new string) string {
		return strings.Replace(string(defaultSceneConfigJson), old, new, 1)
	}

	cases := map[string]string{
		"bad color":             replace(`"clearColor": "black"`, `"clearColor": "blackish"`),
		"bad fov":               replace(`"fov": 75`, `"fov": 0`),
		"bad near":              replace(`"near": 0.1`, `"near": -1`),
		"far too close":         replace(`"far": 1000`, `"far": 0.01`),
		"too many subdivisions": replace(`"subdivisions": 16`, `"subdivisions": 256`),
		"bad size":              replace(`"size": [50, 50]`, `"size": [0, 50]`),
		"unknown field":         replace(`"camera"`, `"speed": 1, "camera"`),
		// playback rate is fixed
		"clip time scale":       replace(`"camera"`, `"clipTimeScale": -1, "camera"`),
		"not json":              "{",
	}

	for name, src := range cases {
		_, err := ParseSceneConfig(strings.NewReader(src))
		assert.Error(t, err, name)
	}
}

func TestLoadSceneConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	src := strings.Replace(string(defaultSceneConfigJson), `"wireColor": "white"`, `"wireColor": "#ff0000"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cfg, err := LoadSceneConfig(path)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, cfg.wireColor)

	_, err = LoadSceneConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
