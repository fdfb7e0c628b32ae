package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

// MaxScreenSubdivisions keeps grid vertex indices within uint16.
const MaxScreenSubdivisions = 255

// LCDScreen is a plane colored by the pattern shader.
//
// The plane lies on XY plane facing +Z, centered at Position.
// When there is no shader or UseCPU is set, patterns are rendered
// on the CPU to an image which is then drawn on the plane.
type LCDScreen struct {
	Position     Vec3
	Size         FPoint
	Subdivisions int

	UseCPU        bool
	CpuResolution int

	cpuImage  *eb.Image
	cpuPixels []byte

	vertices []eb.Vertex
	indices  []uint16
}

func NewLCDScreen(cfg SceneConfig) *LCDScreen {
	return &LCDScreen{
		Position:      V3FromArray(cfg.Screen.Position),
		Size:          FPt(cfg.Screen.Size[0], cfg.Screen.Size[1]),
		Subdivisions:  cfg.Screen.Subdivisions,
		CpuResolution: cfg.Screen.CpuResolution,
	}
}

// PlanePoint returns world position of plane uv.
// v = 0 is the bottom edge.
func (s *LCDScreen) PlanePoint(u, v float64) Vec3 {
	return s.Position.Add(Vec3{
		X: (u - 0.5) * s.Size.X,
		Y: (v - 0.5) * s.Size.Y,
	})
}

// RenderPatternPixels writes premultiplied RGBA of a res x res image to pix.
// First row is the top of the plane.
func RenderPatternPixels(time float64, res int, pix []byte) {
	for y := range res {
		v := 1 - (f64(y)+0.5)/f64(res)
		for x := range res {
			u := (f64(x) + 0.5) / f64(res)

			c := PixelColorToRGBA(EvalPattern(time, FPt(u, v)))

			i := (y*res + x) * 4
			pix[i+0] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
}

// buildTriangles projects plane grid into screen space.
// srcScale is multiplied to uv to get vertex source position.
// Triangles with a vertex outside of the view are dropped.
func (s *LCDScreen) buildTriangles(cam *OrbitCamera, width, height float64, srcScale float64, flipV bool) {
	n := Clamp(s.Subdivisions, 1, MaxScreenSubdivisions)

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	visible := make([]bool, 0, (n+1)*(n+1))

	for gy := 0; gy <= n; gy++ {
		for gx := 0; gx <= n; gx++ {
			u := f64(gx) / f64(n)
			v := f64(gy) / f64(n)

			pt, _, ok := cam.Project(s.PlanePoint(u, v), width, height)
			visible = append(visible, ok)

			srcV := v
			if flipV {
				srcV = 1 - v
			}

			s.vertices = append(s.vertices, eb.Vertex{
				DstX:   f32(pt.X),
				DstY:   f32(pt.Y),
				SrcX:   f32(u * srcScale),
				SrcY:   f32(srcV * srcScale),
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}
	}

	at := func(gx, gy int) int {
		return gy*(n+1) + gx
	}

	for gy := range n {
		for gx := range n {
			i0, i1 := at(gx, gy), at(gx+1, gy)
			i2, i3 := at(gx, gy+1), at(gx+1, gy+1)

			if visible[i0] && visible[i1] && visible[i2] {
				s.indices = append(s.indices, uint16(i0), uint16(i1), uint16(i2))
			}
			if visible[i1] && visible[i3] && visible[i2] {
				s.indices = append(s.indices, uint16(i1), uint16(i3), uint16(i2))
			}
		}
	}
}

func (s *LCDScreen) Draw(dst *eb.Image, cam *OrbitCamera, time float64) {
	width, height := ImageSizeF(dst)

	if PatternShader != nil && !s.UseCPU {
		s.buildTriangles(cam, width, height, 1, false)
		if len(s.indices) == 0 {
			return
		}

		op := &eb.DrawTrianglesShaderOptions{}
		op.Uniforms = map[string]any{
			"Time": f32(time),
		}
		op.AntiAlias = true

		dst.DrawTrianglesShader(s.vertices, s.indices, PatternShader, op)
		return
	}

	res := max(s.CpuResolution, 1)

	if s.cpuImage == nil || s.cpuImage.Bounds().Dx() != res {
		if s.cpuImage != nil {
			s.cpuImage.Deallocate()
		}
		s.cpuImage = eb.NewImage(res, res)
		s.cpuPixels = make([]byte, res*res*4)
	}

	RenderPatternPixels(time, res, s.cpuPixels)
	s.cpuImage.WritePixels(s.cpuPixels)

	s.buildTriangles(cam, width, height, f64(res), true)
	if len(s.indices) == 0 {
		return
	}

	op := &eb.DrawTrianglesOptions{}
	op.Filter = eb.FilterNearest
	op.AntiAlias = true

	dst.DrawTriangles(s.vertices, s.indices, s.cpuImage, op)
}
