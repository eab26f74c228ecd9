package particles

import (
	"image/color"
	"math/rand"
	"testing"
	"time"
)

func TestRasterSurfaceLeavesPixelsOutsideShapeAlone(t *testing.T) {
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	rs := NewRasterSurface(100, 100, bg)

	rs.FillCircle(80, 80, 3, color.White)
	rs.StrokeLine(10, 10, 30, 10, 1, color.White)

	for _, p := range [][2]int{{0, 0}, {50, 50}, {99, 0}, {0, 99}, {10, 40}, {76, 80}} {
		if got := rs.Image().RGBAAt(p[0], p[1]); got != bg {
			t.Errorf("pixel %v = %v, want background", p, got)
		}
	}
	if got := rs.Image().RGBAAt(80, 80); got.R != 255 {
		t.Errorf("circle centre = %v, want white", got)
	}
	if got := rs.Image().RGBAAt(20, 10); got.R == bg.R {
		t.Errorf("line midpoint untouched: %v", got)
	}
}

func TestRasterSurfaceClipsAtEdges(t *testing.T) {
	rs := NewRasterSurface(40, 40, color.Black)

	// Partly outside: the visible part is drawn, nothing panics.
	rs.FillCircle(-1, 20, 4, color.White)
	if got := rs.Image().RGBAAt(1, 20); got.R != 255 {
		t.Errorf("clipped circle pixel = %v, want white", got)
	}
	rs.StrokeLine(-20, 5, 60, 5, 2, color.White)
	if got := rs.Image().RGBAAt(39, 5); got.R == 0 {
		t.Errorf("clipped line end = %v, want lit", got)
	}

	// Fully outside: nothing drawn.
	rs.Clear()
	rs.FillCircle(-50, -50, 3, color.White)
	rs.StrokeLine(100, 100, 120, 130, 1, color.White)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if got := rs.Image().RGBAAt(x, y); got.R != 0 {
				t.Fatalf("pixel (%d, %d) = %v after off-canvas drawing", x, y, got)
			}
		}
	}
}

func TestSkillsTickFitsFrameInterval(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	const ticks = 20
	field := NewField(SkillsConfig(), 1200, 600, rand.New(rand.NewSource(7)))
	rs := NewRasterSurface(1200, 600, color.Black)
	field.Tick(rs)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		field.Tick(rs)
	}
	if per := time.Since(start) / ticks; per > DefaultFrameInterval {
		t.Errorf("skills tick took %v, over the %v frame interval (%d links)", per, DefaultFrameInterval, len(field.Links()))
	}
}

func BenchmarkSkillsTick(b *testing.B) {
	field := NewField(SkillsConfig(), 1200, 600, rand.New(rand.NewSource(7)))
	rs := NewRasterSurface(1200, 600, color.Black)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		field.Tick(rs)
	}
}

func BenchmarkProfileTick(b *testing.B) {
	field := NewField(ProfileConfig(), 200, 200, rand.New(rand.NewSource(7)))
	rs := NewRasterSurface(200, 200, color.Transparent)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		field.Tick(rs)
	}
}
