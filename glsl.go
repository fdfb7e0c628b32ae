package main

import (
	"math"
)

// Helpers that behave like their shader language builtins,
// so pattern functions read the same in Go and in Kage.

func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// GlslMod is x - y*floor(x/y).
// Unlike math.Mod, result takes the sign of y.
func GlslMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

func GlslModPt(p FPoint, y float64) FPoint {
	return FPt(GlslMod(p.X, y), GlslMod(p.Y, y))
}

// SmoothStep also accepts edge0 > edge1, which gives an inverted ramp.
func SmoothStep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func Mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Atan2 is 0 at the origin.
func Atan2(y, x float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	return math.Atan2(y, x)
}

func HashNoise(p FPoint) float64 {
	return Fract(math.Sin(p.Dot(FPt(12.9898, 78.233))) * 43758.5453123)
}
