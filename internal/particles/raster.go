package particles

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sync/atomic"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter-circle approximation.
const kappa = 0.5522847498

// RasterSurface draws frames into an in-memory RGBA image and publishes a
// PNG of each finished frame for readers on other goroutines.
type RasterSurface struct {
	img        *image.RGBA
	background image.Image
	raster     *vector.Rasterizer

	latest atomic.Pointer[[]byte]
}

// NewRasterSurface creates a surface of the given pixel size.
func NewRasterSurface(width, height int, background color.Color) *RasterSurface {
	rs := &RasterSurface{background: image.NewUniform(background)}
	rs.Resize(width, height)
	return rs
}

// Resize replaces the backing image.
func (rs *RasterSurface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	rs.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if rs.raster == nil {
		rs.raster = vector.NewRasterizer(width, height)
	}
	rs.Clear()
}

func (rs *RasterSurface) Clear() {
	draw.Draw(rs.img, rs.img.Bounds(), rs.background, image.Point{}, draw.Src)
}

func (rs *RasterSurface) FillCircle(x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	box, ok := rs.begin(x-r, y-r, x+r, y+r)
	if !ok {
		return
	}
	cx, cy := float32(x-float64(box.Min.X)), float32(y-float64(box.Min.Y))
	rr := float32(r)
	k := float32(kappa) * rr

	rs.raster.MoveTo(cx+rr, cy)
	rs.raster.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	rs.raster.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	rs.raster.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	rs.raster.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	rs.raster.ClosePath()
	rs.fill(box, c)
}

// StrokeLine fills the quad covering a line of the given width.
func (rs *RasterSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	pad := width / 2
	box, ok := rs.begin(math.Min(x1, x2)-pad, math.Min(y1, y2)-pad, math.Max(x1, x2)+pad, math.Max(y1, y2)+pad)
	if !ok {
		return
	}

	// Half-width normal
	nx := float32(-dy / length * pad)
	ny := float32(dx / length * pad)
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	ax, ay := float32(x1-ox), float32(y1-oy)
	bx, by := float32(x2-ox), float32(y2-oy)

	rs.raster.MoveTo(ax+nx, ay+ny)
	rs.raster.LineTo(bx+nx, by+ny)
	rs.raster.LineTo(bx-nx, by-ny)
	rs.raster.LineTo(ax-nx, ay-ny)
	rs.raster.ClosePath()
	rs.fill(box, c)
}

// begin sizes the rasterizer to the pixel box covering the given extent,
// clipped to the image. Path coordinates are then relative to box.Min.
func (rs *RasterSurface) begin(minX, minY, maxX, maxY float64) (image.Rectangle, bool) {
	box := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(rs.img.Bounds())
	if box.Empty() {
		return box, false
	}
	rs.raster.Reset(box.Dx(), box.Dy())
	rs.raster.DrawOp = draw.Over
	return box, true
}

func (rs *RasterSurface) fill(box image.Rectangle, c color.Color) {
	rs.raster.Draw(rs.img, box, image.NewUniform(c), box.Min)
}

// Image returns the frame currently being drawn. Only safe on the drawing
// goroutine.
func (rs *RasterSurface) Image() *image.RGBA { return rs.img }

// Publish encodes the current frame as PNG and makes it visible to
// Snapshot callers.
func (rs *RasterSurface) Publish() error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, rs.img); err != nil {
		return err
	}
	b := buf.Bytes()
	rs.latest.Store(&b)
	return nil
}

// Snapshot returns the last published frame, or nil before the first one.
func (rs *RasterSurface) Snapshot() []byte {
	if p := rs.latest.Load(); p != nil {
		return *p
	}
	return nil
}
