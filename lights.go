package main

import (
	"image/color"
	"math"
)

// ambient light of intensity 1 is this bright on a wire
const ambientBrightness = 0.05

type LightRig struct {
	AmbientColor     color.NRGBA
	AmbientIntensity float64

	DirectionalColor     color.NRGBA
	DirectionalPosition  Vec3
	DirectionalIntensity float64
}

func NewLightRig(cfg SceneConfig) LightRig {
	return LightRig{
		AmbientColor:         cfg.ambientColor,
		AmbientIntensity:     cfg.AmbientLight.Intensity,
		DirectionalColor:     cfg.dirColor,
		DirectionalPosition:  V3FromArray(cfg.DirectionalLight.Position),
		DirectionalIntensity: cfg.DirectionalLight.Intensity,
	}
}

// Shade returns wire color for a segment going in dir.
// Wires have no real normal, so the one facing the light the most is used,
// which only depends on how parallel the wire is to the light.
func (lr *LightRig) Shade(base color.NRGBA, dir Vec3) color.NRGBA {
	toLight := lr.DirectionalPosition.Normalize()

	parallel := math.Abs(dir.Normalize().Dot(toLight))
	lambert := math.Sqrt(max(0, 1-parallel*parallel))

	ambient := ColorNormalized(lr.AmbientColor, false)
	directional := ColorNormalized(lr.DirectionalColor, false)
	b := ColorNormalized(base, false)

	channel := func(i int) uint8 {
		light := ambient[i]*lr.AmbientIntensity*ambientBrightness +
			directional[i]*lr.DirectionalIntensity*lambert
		return uint8(Clamp(b[i]*light, 0, 1) * 255)
	}

	return color.NRGBA{channel(0), channel(1), channel(2), base.A}
}
