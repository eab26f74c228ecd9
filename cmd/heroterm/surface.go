package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// A terminal cell stands in for this many canvas pixels.
const (
	cellWidth  = 8
	cellHeight = 16
)

type cell struct{ x, y int }

// termSurface renders particles as glyphs. Links only fill cells that no
// particle already occupies.
type termSurface struct {
	screen tcell.Screen
	cols   int
	rows   int
	used   []bool
}

func newTermSurface(screen tcell.Screen) *termSurface {
	s := &termSurface{screen: screen}
	cols, rows := screen.Size()
	s.Resize(cols*cellWidth, rows*cellHeight)
	return s
}

func (s *termSurface) Resize(width, height int) {
	s.cols, s.rows = width/cellWidth, height/cellHeight
	s.used = make([]bool, s.cols*s.rows)
}

func (s *termSurface) Clear() {
	s.screen.Clear()
	clear(s.used)
}

func (s *termSurface) FillCircle(x, y, r float64, c color.Color) {
	at := toCell(x, y)
	glyph := '·'
	if r >= 2 {
		glyph = '●'
	} else if r >= 1 {
		glyph = '•'
	}
	s.set(at, glyph, c)
}

func (s *termSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	for _, at := range cellLine(toCell(x1, y1), toCell(x2, y2)) {
		if s.inside(at) && !s.used[at.y*s.cols+at.x] {
			s.set(at, '.', c)
		}
	}
}

func (s *termSurface) inside(at cell) bool {
	return at.x >= 0 && at.y >= 0 && at.x < s.cols && at.y < s.rows
}

func (s *termSurface) set(at cell, glyph rune, c color.Color) {
	if !s.inside(at) {
		return
	}
	s.used[at.y*s.cols+at.x] = true
	s.screen.SetContent(at.x, at.y, glyph, nil, tcell.StyleDefault.Foreground(termColor(c)))
}

func toCell(x, y float64) cell {
	return cell{x: int(x) / cellWidth, y: int(y) / cellHeight}
}

// termColor flattens c onto a black background, since terminals have no alpha.
func termColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// cellLine walks the cells between a and b (Bresenham).
func cellLine(a, b cell) []cell {
	dx, dy := abs(b.x-a.x), -abs(b.y-a.y)
	sx, sy := 1, 1
	if a.x > b.x {
		sx = -1
	}
	if a.y > b.y {
		sy = -1
	}

	var cells []cell
	e := dx + dy
	for {
		cells = append(cells, a)
		if a == b {
			return cells
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.x += sx
		}
		if e2 <= dx {
			e += dx
			a.y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
