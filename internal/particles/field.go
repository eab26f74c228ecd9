package particles

import (
	"image/color"
	"math/rand"
)

// Surface is a 2D drawing target that receives one frame at a time.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// ResizableSurface is a Surface whose backing store follows the canvas size.
type ResizableSurface interface {
	Surface
	Resize(width, height int)
}

// Field is the animation context of one canvas. It owns the particle slice
// and everything needed to advance it; nothing is shared between fields.
//
// A Field is not safe for concurrent use. The Scheduler is the only caller
// once it is running.
type Field struct {
	cfg    Config
	rng    *rand.Rand
	width  float64
	height float64

	particles []Particle
	hovered   bool
	frames    uint64
}

// NewField builds a field and populates it for the given canvas size.
func NewField(cfg Config, width, height float64, rng *rand.Rand) *Field {
	f := &Field{cfg: cfg, rng: rng}
	f.Resize(width, height)
	return f
}

// Initialize builds a fresh particle set for a canvas of the given size
// without touching the field's current state.
func (f *Field) Initialize(width, height float64) []Particle {
	n := f.cfg.ParticleCount(width, height)
	ps := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		if f.cfg.Boundary == RespawnAtOrigin {
			ps = append(ps, newRespawnParticle(&f.cfg, width/2, height/2, f.rng))
		} else {
			ps = append(ps, newBounceParticle(&f.cfg, width, height, f.rng))
		}
	}
	return ps
}

// Resize discards all particles and repopulates for the new extents. The
// slice is replaced wholesale.
func (f *Field) Resize(width, height float64) {
	ps := f.Initialize(width, height)
	f.width, f.height = width, height
	f.particles = ps
}

// Advance moves one particle according to the field's boundary policy.
func (f *Field) Advance(p Particle) Particle {
	if f.cfg.Boundary == RespawnAtOrigin {
		speedup := 1.0
		if f.hovered && f.cfg.HoverSpeedup > 0 {
			speedup = f.cfg.HoverSpeedup
		}
		return advanceRespawn(p, &f.cfg, f.width/2, f.height/2, speedup, f.rng)
	}
	return Advance(p, f.width, f.height)
}

// Tick renders one frame: clear, advance and draw every particle, then draw
// the proximity links of the new positions.
func (f *Field) Tick(s Surface) {
	s.Clear()
	for i := range f.particles {
		p := f.Advance(f.particles[i])
		f.particles[i] = p
		s.FillCircle(p.X, p.Y, p.Size, p.DrawColor())
	}

	lp := f.cfg.Link
	for _, l := range f.Links() {
		a, b := f.particles[l.A], f.particles[l.B]
		c := lp.Color
		c.A = uint8(255 * clamp01(l.Opacity*lp.Alpha))
		s.StrokeLine(a.X, a.Y, b.X, b.Y, lp.Width, c)
	}
	f.frames++
}

// Links returns the proximity links of the current positions.
func (f *Field) Links() []Link {
	return Connections(f.particles, f.cfg.Link, f.width, f.height)
}

// SetHover records whether the pointer is over the canvas container.
func (f *Field) SetHover(hovered bool) { f.hovered = hovered }

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

func (f *Field) Size() (width, height float64) { return f.width, f.height }

func (f *Field) Config() Config { return f.cfg }

// Frames is the number of ticks rendered since the field was created.
func (f *Field) Frames() uint64 { return f.frames }
