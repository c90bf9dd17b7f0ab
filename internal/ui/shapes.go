// internal/ui/shapes.go
package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-shape-defense/internal/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// polygon — вершины фигуры в координатах экрана. Круг рисуется отдельно.
func polygon(shape render.Shape, cx, cy, size float64) [][2]float32 {
	r := size / 2
	switch shape {
	case render.ShapeTriangle:
		return regular(cx, cy, r, 3, -math.Pi/2)
	case render.ShapeSquare:
		return regular(cx, cy, r*math.Sqrt2, 4, math.Pi/4)
	case render.ShapeStar:
		return star(cx, cy, r, r*0.45, 5)
	case render.ShapeBoss:
		return regular(cx, cy, r, 6, 0)
	}
	return nil
}

func regular(cx, cy, r float64, n int, start float64) [][2]float32 {
	pts := make([][2]float32, n)
	for i := 0; i < n; i++ {
		a := start + 2*math.Pi*float64(i)/float64(n)
		pts[i] = [2]float32{float32(cx + r*math.Cos(a)), float32(cy + r*math.Sin(a))}
	}
	return pts
}

func star(cx, cy, outer, inner float64, points int) [][2]float32 {
	pts := make([][2]float32, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(points)
		pts = append(pts, [2]float32{float32(cx + r*math.Cos(a)), float32(cy + r*math.Sin(a))})
	}
	return pts
}

// fillFan заливает многоугольник веером треугольников из центра.
// Подходит и для невыпуклой звезды: каждый треугольник веера выпуклый.
func fillFan(dst *ebiten.Image, cx, cy float32, pts [][2]float32, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	vs := make([]ebiten.Vertex, 0, len(pts)+1)
	vs = append(vs, ebiten.Vertex{DstX: cx, DstY: cy, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{DstX: p[0], DstY: p[1], SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a})
	}
	is := make([]uint16, 0, len(pts)*3)
	for i := 1; i <= len(pts); i++ {
		next := i + 1
		if next > len(pts) {
			next = 1
		}
		is = append(is, 0, uint16(i), uint16(next))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
