package particles

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is a single animated point.
//
// Bounce particles keep Life and MaxLife at zero. Respawn particles count
// Life down by one per frame and restart from the canvas centre at zero.
type Particle struct {
	X, Y                   float64
	DirectionX, DirectionY float64
	Size                   float64
	Color                  color.NRGBA

	Life, MaxLife float64
}

// DrawColor is the fill colour for the current frame. Respawn particles fade
// with their remaining life.
func (p Particle) DrawColor() color.NRGBA {
	if p.MaxLife <= 0 {
		return p.Color
	}
	c := p.Color
	c.A = uint8(float64(c.A) * clamp01(p.Life/p.MaxLife))
	return c
}

// Advance moves a bounce particle one frame. A component whose pre-update
// coordinate lies outside [0, bound] has its direction negated before the
// move. Position is never clamped, so a particle can sit one step past the
// edge until the next frame turns it around.
func Advance(p Particle, width, height float64) Particle {
	if p.X > width || p.X < 0 {
		p.DirectionX = -p.DirectionX
	}
	if p.Y > height || p.Y < 0 {
		p.DirectionY = -p.DirectionY
	}
	p.X += p.DirectionX
	p.Y += p.DirectionY
	return p
}

// advanceRespawn moves a respawn particle by its velocity times speedup and
// restarts it at the origin when its life runs out.
func advanceRespawn(p Particle, cfg *Config, originX, originY, speedup float64, rng *rand.Rand) Particle {
	p.X += p.DirectionX * speedup
	p.Y += p.DirectionY * speedup
	p.Life--
	if p.Life <= 0 {
		p = respawn(p, cfg, originX, originY, rng)
	}
	return p
}

func respawn(p Particle, cfg *Config, originX, originY float64, rng *rand.Rand) Particle {
	p.X, p.Y = originX, originY
	angle := rng.Float64() * math.Pi * 2
	speed := rng.Float64()*cfg.RespawnSpeedSpread + cfg.RespawnSpeedMin
	p.DirectionX = math.Cos(angle) * speed
	p.DirectionY = math.Sin(angle) * speed
	p.Life = p.MaxLife
	return p
}

func newBounceParticle(cfg *Config, width, height float64, rng *rand.Rand) Particle {
	size := rng.Float64()*cfg.SizeSpread + cfg.SizeMin
	return Particle{
		X:          rng.Float64()*(width-size*2) + size,
		Y:          rng.Float64()*(height-size*2) + size,
		DirectionX: rng.Float64()*cfg.Speed*2 - cfg.Speed,
		DirectionY: rng.Float64()*cfg.Speed*2 - cfg.Speed,
		Size:       size,
		Color:      cfg.Color,
	}
}

func newRespawnParticle(cfg *Config, originX, originY float64, rng *rand.Rand) Particle {
	p := Particle{
		Size:    rng.Float64()*cfg.SizeSpread + cfg.SizeMin,
		Color:   cfg.Color,
		MaxLife: rng.Float64()*cfg.LifeSpread + cfg.LifeMin,
	}
	return respawn(p, cfg, originX, originY, rng)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
