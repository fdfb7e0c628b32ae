package main

import (
	"math"

	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	orbitRotateSpeed = 0.005 // radians per pixel
	orbitZoomSpeed   = 0.95
	orbitMinDistance = 0.5
	orbitMaxDistance = 200
	orbitMaxPitch    = math.Pi/2 - 0.01
)

// OrbitCamera looks at Target from a point on a sphere around it.
type OrbitCamera struct {
	Target   Vec3
	Yaw      float64
	Pitch    float64
	Distance float64

	FovY float64 // degrees
	Near float64
	Far  float64

	dragging  bool
	dragStart FPoint
}

// NewOrbitCamera places the camera at position, looking at target.
func NewOrbitCamera(position, target Vec3, fovY, near, far float64) *OrbitCamera {
	cam := &OrbitCamera{
		Target: target,
		FovY:   fovY,
		Near:   near,
		Far:    far,
	}

	offset := position.Sub(target)
	cam.Distance = max(offset.Length(), orbitMinDistance)
	if offset.Length() > 0 {
		cam.Yaw = math.Atan2(offset.X, offset.Z)
		cam.Pitch = math.Asin(Clamp(offset.Y/offset.Length(), -1, 1))
	}
	cam.Pitch = Clamp(cam.Pitch, -orbitMaxPitch, orbitMaxPitch)

	return cam
}

func (c *OrbitCamera) Position() Vec3 {
	cp := math.Cos(c.Pitch)
	return c.Target.Add(Vec3{
		X: c.Distance * cp * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Cos(c.Yaw),
	})
}

// Basis returns right, up and forward vectors of the camera.
func (c *OrbitCamera) Basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Position()).Normalize()
	right = forward.Cross(V3(0, 1, 0)).Normalize()
	up = right.Cross(forward)
	return
}

// ToView returns p in camera space, z being distance along view direction.
func (c *OrbitCamera) ToView(p Vec3) Vec3 {
	right, up, forward := c.Basis()
	d := p.Sub(c.Position())
	return Vec3{d.Dot(right), d.Dot(up), d.Dot(forward)}
}

// Project maps p to screen pixels.
// ok is false when p is outside of near and far plane.
func (c *OrbitCamera) Project(p Vec3, width, height float64) (pt FPoint, depth float64, ok bool) {
	v := c.ToView(p)
	if v.Z < c.Near || v.Z > c.Far {
		return FPoint{}, v.Z, false
	}

	f := c.focal()
	aspect := width / height

	ndcX := v.X * f / (v.Z * aspect)
	ndcY := v.Y * f / v.Z

	return FPt(
		(ndcX+1)*0.5*width,
		(1-ndcY)*0.5*height,
	), v.Z, true
}

func (c *OrbitCamera) focal() float64 {
	return 1 / math.Tan(c.FovY*math.Pi/180*0.5)
}

// PixelsPerUnit is how many pixels a unit long segment facing the camera
// covers at depth 1.
func (c *OrbitCamera) PixelsPerUnit(height float64) float64 {
	return c.focal() * height * 0.5
}

func (c *OrbitCamera) Rotate(dx, dy float64) {
	c.Yaw -= dx * orbitRotateSpeed
	c.Pitch = Clamp(c.Pitch+dy*orbitRotateSpeed, -orbitMaxPitch, orbitMaxPitch)
}

func (c *OrbitCamera) Zoom(steps float64) {
	c.Distance = Clamp(c.Distance*math.Pow(orbitZoomSpeed, steps), orbitMinDistance, orbitMaxDistance)
}

// Update handles mouse drag and wheel.
func (c *OrbitCamera) Update() {
	cursor := CursorFPt()

	if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		c.dragging = true
		c.dragStart = cursor
	}
	if !IsMouseButtonPressed(eb.MouseButtonLeft) {
		c.dragging = false
	}

	if c.dragging {
		delta := cursor.Sub(c.dragStart)
		c.Rotate(delta.X, delta.Y)
		c.dragStart = cursor
	}

	if _, wheelY := eb.Wheel(); wheelY != 0 {
		c.Zoom(wheelY)
	}
}
