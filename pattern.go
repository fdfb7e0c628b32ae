package main

import (
	"math"
)

const (
	PatternPixelSize   = 0.01
	PatternStageLength = 10.0 // seconds
	PatternStageCount  = 23
	PatternAlpha       = 0.5
)

// PatternCycleLength is how long it takes before the first pattern shows up again.
const PatternCycleLength = PatternStageLength * PatternStageCount

type PatternInput struct {
	// UV is the raw surface coordinate in [0, 1].
	UV FPoint
	// Coord is UV remapped to [-1, 1] and snapped to PatternPixelSize.
	Coord FPoint
	Time  float64
}

type PatternFunc func(in PatternInput) Vec3

// PixelColor is not clamped.
// Some patterns go below 0 or above 1.
type PixelColor struct {
	R, G, B, A float64
}

func SnapCoord(x float64) float64 {
	return PatternPixelSize * math.Floor(x/PatternPixelSize)
}

func CenterUV(uv FPoint) FPoint {
	c := uv.Scale(2).AddScalar(-1)
	return FPt(SnapCoord(c.X), SnapCoord(c.Y))
}

func PatternStage(time float64) int {
	stage := int(math.Floor(GlslMod(time/PatternStageLength, PatternStageCount)))
	// float rounding on huge time values
	return Clamp(stage, 0, PatternStageCount-1)
}

// NextStageTime returns the first time after t where stage changes.
func NextStageTime(t float64) float64 {
	return (math.Floor(t/PatternStageLength) + 1) * PatternStageLength
}

func EvalPattern(time float64, uv FPoint) PixelColor {
	in := PatternInput{
		UV:    uv,
		Coord: CenterUV(uv),
		Time:  time,
	}

	c := PatternTable[PatternStage(time)](in)

	return PixelColor{R: c.X, G: c.Y, B: c.Z, A: PatternAlpha}
}

var PatternNames = [PatternStageCount]string{
	"rgb cyberpunk",
	"sacred geometry",
	"checkerboard",
	"radial gradient",
	"sine distortion",
	"circular waves",
	"noise",
	"vertical stripes",
	"horizontal stripes",
	"diagonal lines",
	"checkerboard 2",
	"spiral",
	"radial lines",
	"zoom",
	"wave grid",
	"moving grid",
	"pulsating dots",
	"kaleidoscope",
	"plasma",
	"random noise",
	"vortex",
	"hexagon",
	"moving triangles",
}

var PatternTable = [PatternStageCount]PatternFunc{
	PatternCyberpunk,
	PatternSacredGeometry,
	PatternCheckerboard,
	PatternRadialGradient,
	PatternSineDistortion,
	PatternCircularWaves,
	PatternNoise,
	PatternVerticalStripes,
	PatternHorizontalStripes,
	PatternDiagonalLines,
	PatternCheckerboard2,
	PatternSpiral,
	PatternRadialLines,
	PatternZoom,
	PatternWaveGrid,
	PatternMovingGrid,
	PatternPulsatingDots,
	PatternKaleidoscope,
	PatternPlasma,
	PatternRandomNoise,
	PatternVortex,
	PatternHexagon,
	PatternMovingTriangles,
}

func gray(v float64) Vec3 {
	return Vec3{v, v, v}
}

func polar(p FPoint) (angle, radius float64) {
	return Atan2(p.Y, p.X), p.Length()
}

func PatternCyberpunk(in PatternInput) Vec3 {
	uv, t := in.Coord, in.Time

	pattern := math.Abs(math.Sin(uv.X*10+t) * math.Cos(uv.Y*10+t))
	r := 0.5 + 0.5*math.Sin(t+uv.X+uv.Y+pattern)
	g := 0.5 + 0.5*math.Cos(t+2+uv.X+uv.Y+pattern)
	b := 0.5 + 0.5*math.Sin(t+4+uv.X+uv.Y-pattern)

	// grid lines use the unsnapped coordinate
	grid := GlslModPt(in.UV.Scale(5000), 1.5)
	line := SmoothStep(0.98, 1, grid.X) * SmoothStep(0.98, 1, grid.Y)

	glowCenter := FPt(math.Sin(t*0.1), math.Cos(t*0.15))
	glow := SmoothStep(0.2, 0, uv.Sub(glowCenter).Length())

	return V3(r, g, b).Scale(line * (0.7 + 0.3*glow))
}

func PatternSacredGeometry(in PatternInput) Vec3 {
	angle, radius := polar(in.Coord)
	return gray(math.Abs(math.Sin(10*angle+in.Time) * math.Cos(10*radius+in.Time)))
}

func PatternCheckerboard(in PatternInput) Vec3 {
	const gridSize = 10
	gridX := math.Floor(in.Coord.X*gridSize) / gridSize
	gridY := math.Floor(in.Coord.Y*gridSize) / gridSize
	checker := GlslMod(math.Floor(gridX)+math.Floor(gridY), 2)
	return gray(Mix(1, 0, checker))
}

func PatternRadialGradient(in PatternInput) Vec3 {
	return gray(in.Coord.Length())
}

func PatternSineDistortion(in PatternInput) Vec3 {
	uv, t := in.Coord, in.Time
	uv.X += math.Sin(uv.Y*10+t) * 0.1
	// uses already distorted x
	uv.Y += math.Cos(uv.X*10+t) * 0.1
	return V3(uv.X, uv.Y, 1-uv.X*uv.Y)
}

func PatternCircularWaves(in PatternInput) Vec3 {
	radius, t := in.Coord.Length(), in.Time
	return V3(
		math.Sin(radius*10-t),
		math.Cos(radius*10-t),
		math.Sin(radius*5-t),
	)
}

func PatternNoise(in PatternInput) Vec3 {
	return gray(HashNoise(in.Coord.AddScalar(in.Time)))
}

func PatternVerticalStripes(in PatternInput) Vec3 {
	return gray(SmoothStep(0.45, 0.55, math.Abs(math.Sin(in.Coord.X*20+in.Time))))
}

func PatternHorizontalStripes(in PatternInput) Vec3 {
	return gray(SmoothStep(0.45, 0.55, math.Abs(math.Sin(in.Coord.Y*20+in.Time))))
}

func PatternDiagonalLines(in PatternInput) Vec3 {
	return gray(math.Abs(math.Sin((in.Coord.X+in.Coord.Y)*20 + in.Time)))
}

func PatternCheckerboard2(in PatternInput) Vec3 {
	return gray(GlslMod(math.Floor(in.Coord.X*10)+math.Floor(in.Coord.Y*10), 2))
}

func PatternSpiral(in PatternInput) Vec3 {
	angle, radius := polar(in.Coord)
	return gray(math.Sin(angle*10 + radius*10 - in.Time))
}

func PatternRadialLines(in PatternInput) Vec3 {
	angle, _ := polar(in.Coord)
	return gray(math.Sin(angle*10 - in.Time))
}

func PatternZoom(in PatternInput) Vec3 {
	zoom, t := in.Coord.Length()*10, in.Time
	return V3(math.Sin(zoom-t), math.Cos(zoom-t), math.Sin(zoom*0.5-t))
}

func PatternWaveGrid(in PatternInput) Vec3 {
	return gray(math.Sin(in.Coord.X*10+in.Time) * math.Sin(in.Coord.Y*10+in.Time))
}

func movingGrid(in PatternInput) FPoint {
	offset := FPt(math.Sin(in.Time), math.Cos(in.Time))
	return GlslModPt(in.Coord.Scale(10).Add(offset), 1)
}

func PatternMovingGrid(in PatternInput) Vec3 {
	grid := movingGrid(in)
	return gray(SmoothStep(0.45, 0.55, grid.X) * SmoothStep(0.45, 0.55, grid.Y))
}

func PatternPulsatingDots(in PatternInput) Vec3 {
	grid := GlslModPt(in.Coord.Scale(10), 1)
	dist := grid.AddScalar(-0.5).Length()
	return gray(SmoothStep(0.1, 0.15, dist*math.Sin(in.Time)))
}

func PatternKaleidoscope(in PatternInput) Vec3 {
	angle, radius := polar(in.Coord)
	return gray(math.Sin(angle*6+in.Time) * math.Cos(radius*10))
}

func PatternPlasma(in PatternInput) Vec3 {
	return gray(math.Sin(in.Coord.X*10+in.Time) + math.Sin(in.Coord.Y*10+in.Time))
}

func PatternRandomNoise(in PatternInput) Vec3 {
	return gray(HashNoise(in.Coord.AddScalar(in.Time)))
}

func PatternVortex(in PatternInput) Vec3 {
	angle, radius := polar(in.Coord)
	return gray(math.Sin(angle*10 + radius*5 - in.Time))
}

func PatternHexagon(in PatternInput) Vec3 {
	return gray(GlslMod(in.Coord.X+in.Coord.Y, 0.5) * 2)
}

func PatternMovingTriangles(in PatternInput) Vec3 {
	grid := movingGrid(in)
	return gray(SmoothStep(0.45, 0.55, math.Abs(grid.X-grid.Y)))
}
