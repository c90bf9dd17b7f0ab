package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-shape-defense/internal/render"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		-3: "-",
		0:  "-",
		1:  "I",
		4:  "IV",
		9:  "IX",
		14: "XIV",
		15: "XV",
		40: "XL",
		99: "XCIX",
	}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "%d", n)
	}
}

func TestPolygonVertices(t *testing.T) {
	assert.Len(t, polygon(render.ShapeTriangle, 0, 0, 20), 3)
	assert.Len(t, polygon(render.ShapeStar, 0, 0, 20), 10)
	assert.Len(t, polygon(render.ShapeBoss, 0, 0, 20), 6)
	assert.Nil(t, polygon(render.ShapeCircle, 0, 0, 20))

	// Квадрат вписан в size x size
	sq := polygon(render.ShapeSquare, 100, 50, 20)
	assert.Len(t, sq, 4)
	assert.InDelta(t, 110, sq[0][0], 1e-4)
	assert.InDelta(t, 60, sq[0][1], 1e-4)

	// Вершина треугольника смотрит вверх
	tri := polygon(render.ShapeTriangle, 0, 0, 20)
	assert.InDelta(t, 0, tri[0][0], 1e-4)
	assert.InDelta(t, -10, tri[0][1], 1e-4)
}
