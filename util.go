package main

import (
	"image"
	"os"
	"path/filepath"

	eb "github.com/hajimehoshi/ebiten/v2"
)

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

func ImageSizeF(img image.Image) (float64, float64) {
	return f64(img.Bounds().Dx()), f64(img.Bounds().Dy())
}

// ImageImageFromEbImage copies pixels out of GPU.
// Only call it in Draw.
func ImageImageFromEbImage(img *eb.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	img.ReadPixels(rgba.Pix)
	return rgba
}

// RelativePath joins path to the directory of the executable.
func RelativePath(path string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), path), nil
}
