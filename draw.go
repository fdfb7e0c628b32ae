package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
	"image/color"
)

func DrawFilledRect(
	dst *eb.Image,
	x, y, w, h float64,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledRect(
		dst,
		f32(x), f32(y), f32(w), f32(h),
		clr,
		antialias,
	)
}

func StrokeLine(
	dst *eb.Image,
	from, to FPoint,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeLine(
		dst,
		f32(from.X), f32(from.Y), f32(to.X), f32(to.Y),
		f32(strokeWidth),
		clr,
		antialias,
	)
}

func StrokeCircle(
	dst *eb.Image,
	x, y, r float64,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeCircle(
		dst, f32(x), f32(y), f32(r), f32(strokeWidth), clr, antialias)
}
