package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenSurface draws particle frames onto whatever image is current.
type ebitenSurface struct {
	dst        *ebiten.Image
	background color.Color
}

func (s *ebitenSurface) Clear() {
	s.dst.Fill(s.background)
}

func (s *ebitenSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *ebitenSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}
