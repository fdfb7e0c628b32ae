package main

import (
	"math"

	"golang.org/x/exp/constraints"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Add(q FPoint) FPoint {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p FPoint) Sub(q FPoint) FPoint {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p FPoint) Mul(q FPoint) FPoint {
	p.X *= q.X
	p.Y *= q.Y
	return p
}

func (p FPoint) Scale(s float64) FPoint {
	p.X *= s
	p.Y *= s
	return p
}

func (p FPoint) AddScalar(s float64) FPoint {
	p.X += s
	p.Y += s
	return p
}

func (p FPoint) Dot(q FPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p FPoint) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// =================================
// Vec3
// =================================

type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// V3FromArray is for json friendly [3]float64 values.
func V3FromArray(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vec3) Mul(w Vec3) Vec3 {
	return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns zero vector for zero length input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(a.X, b.X, t),
		Lerp(a.Y, b.Y, t),
		Lerp(a.Z, b.Z, t),
	}
}

// =================================
// Mat3
// =================================

// Mat3 is a row major 3x3 rotation matrix.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for row := range 3 {
		for col := range 3 {
			r[row*3+col] = m[row*3+0]*n[0*3+col] +
				m[row*3+1]*n[1*3+col] +
				m[row*3+2]*n[2*3+col]
		}
	}
	return r
}

func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mat3FromEuler builds rotation from euler angles in XYZ order (radians).
func Mat3FromEuler(e Vec3) Mat3 {
	cx, sx := math.Cos(e.X), math.Sin(e.X)
	cy, sy := math.Cos(e.Y), math.Sin(e.Y)
	cz, sz := math.Cos(e.Z), math.Sin(e.Z)

	rx := Mat3{
		1, 0, 0,
		0, cx, -sx,
		0, sx, cx,
	}
	ry := Mat3{
		cy, 0, sy,
		0, 1, 0,
		-sy, 0, cy,
	}
	rz := Mat3{
		cz, -sz, 0,
		sz, cz, 0,
		0, 0, 1,
	}

	return rx.Mul(ry).Mul(rz)
}

// =================================
// misc
// =================================

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}
