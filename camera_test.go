package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrbitCameraFromPosition(t *testing.T) {
	cam := NewOrbitCamera(V3(0, 0, 5), Vec3{}, 75, 0.1, 1000)

	assert.InDelta(t, 5, cam.Distance, 1e-9)
	assert.InDelta(t, 0, cam.Yaw, 1e-9)
	assert.InDelta(t, 0, cam.Pitch, 1e-9)

	pos := cam.Position()
	assert.InDelta(t, 0, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)
	assert.InDelta(t, 5, pos.Z, 1e-9)

	cam = NewOrbitCamera(V3(3, 4, 0), Vec3{}, 75, 0.1, 1000)
	pos = cam.Position()
	assert.InDelta(t, 3, pos.X, 1e-9)
	assert.InDelta(t, 4, pos.Y, 1e-9)
	assert.InDelta(t, 0, pos.Z, 1e-9)
}

func TestOrbitCameraProject(t *testing.T) {
	cam := NewOrbitCamera(V3(0, 0, 5), Vec3{}, 90, 0.1, 1000)

	pt, depth, ok := cam.Project(Vec3{}, 800, 600)
	assert.True(t, ok)
	assert.InDelta(t, 5, depth, 1e-9)
	assert.InDelta(t, 400, pt.X, 1e-9)
	assert.InDelta(t, 300, pt.Y, 1e-9)

	// fov 90 at depth 5 covers y in [-5, 5]
	pt, _, ok = cam.Project(V3(0, 5, 0), 800, 600)
	assert.True(t, ok)
	assert.InDelta(t, 0, pt.Y, 1e-9)

	// positive x goes right
	pt, _, _ = cam.Project(V3(1, 0, 0), 800, 600)
	assert.Greater(t, pt.X, 400.0)

	// behind camera
	_, _, ok = cam.Project(V3(0, 0, 10), 800, 600)
	assert.False(t, ok)

	// beyond far
	_, _, ok = cam.Project(V3(0, 0, -2000), 800, 600)
	assert.False(t, ok)
}

func TestOrbitCameraControls(t *testing.T) {
	cam := NewOrbitCamera(V3(0, 0, 5), Vec3{}, 75, 0.1, 1000)

	cam.Rotate(0, 1e6)
	assert.InDelta(t, orbitMaxPitch, cam.Pitch, 1e-9)
	cam.Rotate(0, -1e7)
	assert.InDelta(t, -orbitMaxPitch, cam.Pitch, 1e-9)

	cam.Zoom(1000)
	assert.Equal(t, orbitMinDistance, cam.Distance)
	cam.Zoom(-1000)
	assert.Equal(t, float64(orbitMaxDistance), cam.Distance)

	// still looking at the target
	cam.Rotate(123, 45)
	_, _, forward := cam.Basis()
	toTarget := cam.Target.Sub(cam.Position()).Normalize()
	assert.InDelta(t, 1, forward.Dot(toTarget), 1e-9)
	assert.False(t, math.IsNaN(forward.X))
}

func TestPixelsPerUnit(t *testing.T) {
	cam := NewOrbitCamera(V3(0, 0, 5), Vec3{}, 90, 0.1, 1000)
	assert.InDelta(t, 300, cam.PixelsPerUnit(600), 1e-9)
}
