package particles

import (
	"image/color"
	"math"
)

// CountPolicy decides how many particles a canvas gets.
type CountPolicy int

const (
	// FixedCount always creates Config.Fixed particles.
	FixedCount CountPolicy = iota
	// AreaDerivedCount creates max(MinCount, floor(w*h/AreaPerParticle)) particles.
	AreaDerivedCount
)

// BoundaryPolicy decides what happens when a particle reaches the canvas edge.
type BoundaryPolicy int

const (
	// Bounce reflects the direction component that left the canvas.
	Bounce BoundaryPolicy = iota
	// RespawnAtOrigin ignores the edges and restarts the particle at the
	// canvas centre once its life runs out.
	RespawnAtOrigin
)

// LinkMetric selects how particle distance is measured for proximity links.
type LinkMetric int

const (
	// Euclidean compares the true distance against the threshold.
	Euclidean LinkMetric = iota
	// Squared compares squared distance against a squared threshold.
	Squared
)

func (m LinkMetric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Squared:
		return "squared"
	default:
		return "unknown"
	}
}

// LinkPolicy configures the proximity linker for one canvas.
type LinkPolicy struct {
	Metric LinkMetric

	// Threshold is expressed in metric units: pixels for Euclidean,
	// pixels squared for Squared.
	Threshold float64

	// CanvasThreshold replaces Threshold with (width/7)*(height/7).
	// Only meaningful with the Squared metric.
	CanvasThreshold bool

	// Falloff is the measure at which opacity reaches zero.
	// Zero means "same as the threshold".
	Falloff float64

	// IncludeSelf keeps the zero-length link from each particle to itself.
	IncludeSelf bool

	// Alpha scales the line opacity before drawing.
	Alpha float64
	Color color.NRGBA
	Width float64
}

// limit returns the comparison bound for a canvas of the given size.
func (lp LinkPolicy) limit(width, height float64) float64 {
	if lp.Metric == Squared && lp.CanvasThreshold {
		return (width / 7) * (height / 7)
	}
	return lp.Threshold
}

func (lp LinkPolicy) falloff(limit float64) float64 {
	if lp.Falloff > 0 {
		return lp.Falloff
	}
	return limit
}

// Config describes one particle canvas.
type Config struct {
	Name string

	Count           CountPolicy
	Fixed           int
	MinCount        int
	AreaPerParticle float64

	Boundary BoundaryPolicy

	// Speed bounds each bounce direction component to [-Speed, Speed).
	Speed float64

	// Respawn particles pick a speed in [RespawnSpeedMin, RespawnSpeedMin+RespawnSpeedSpread)
	// and a life in [LifeMin, LifeMin+LifeSpread).
	RespawnSpeedMin    float64
	RespawnSpeedSpread float64
	LifeMin            float64
	LifeSpread         float64

	SizeMin    float64
	SizeSpread float64
	Color      color.NRGBA

	Link LinkPolicy

	// HoverSpeedup multiplies respawn particle velocity while the pointer
	// is over the canvas container.
	HoverSpeedup float64

	// HoverRadius is carried for canvases that declare a pointer radius.
	// Nothing reads it when advancing particles.
	HoverRadius float64
}

// ParticleCount returns the number of particles for a canvas of the given size.
func (c Config) ParticleCount(width, height float64) int {
	if c.Count == FixedCount {
		return c.Fixed
	}
	per := c.AreaPerParticle
	if per <= 0 {
		per = 20000
	}
	n := int(math.Floor(width * height / per))
	if n < c.MinCount {
		n = c.MinCount
	}
	return n
}

var teal = color.NRGBA{R: 0, G: 255, B: 204, A: 255}

// SkillsConfig is the background canvas behind the skills section.
func SkillsConfig() Config {
	return Config{
		Name:       "skills",
		Count:      FixedCount,
		Fixed:      80,
		Boundary:   Bounce,
		Speed:      0.2,
		SizeMin:    1,
		SizeSpread: 2,
		Color:      color.NRGBA{R: 0, G: 255, B: 204, A: 128},
		Link: LinkPolicy{
			Metric:          Squared,
			CanvasThreshold: true,
			Falloff:         20000,
			IncludeSelf:     true,
			Alpha:           1,
			Color:           teal,
			Width:           1,
		},
	}
}

// ProfileConfig is the small burst animation around the profile picture.
func ProfileConfig() Config {
	return Config{
		Name:               "profile",
		Count:              FixedCount,
		Fixed:              40,
		Boundary:           RespawnAtOrigin,
		RespawnSpeedMin:    0.5,
		RespawnSpeedSpread: 1.5,
		LifeMin:            40,
		LifeSpread:         60,
		SizeMin:            1,
		SizeSpread:         1.5,
		Color:              color.NRGBA{R: 0, G: 255, B: 204, A: 204},
		Link: LinkPolicy{
			Metric:      Euclidean,
			Threshold:   35,
			IncludeSelf: true,
			Alpha:       0.5,
			Color:       color.NRGBA{R: 255, G: 0, B: 255, A: 255},
			Width:       1,
		},
		HoverSpeedup: 1.5,
	}
}

// HeroConfig is the full-screen variant: count follows the canvas area and
// links use a fixed 120px radius.
func HeroConfig() Config {
	return Config{
		Name:            "hero",
		Count:           AreaDerivedCount,
		MinCount:        50,
		AreaPerParticle: 20000,
		Boundary:        Bounce,
		Speed:           0.3,
		SizeMin:         1,
		SizeSpread:      2,
		Color:           color.NRGBA{R: 0, G: 255, B: 204, A: 128},
		Link: LinkPolicy{
			Metric:    Squared,
			Threshold: 120 * 120,
			Alpha:     1,
			Color:     teal,
			Width:     1,
		},
		HoverRadius: 150,
	}
}

// Preset looks up a named configuration.
func Preset(name string) (Config, bool) {
	switch name {
	case "skills":
		return SkillsConfig(), true
	case "profile":
		return ProfileConfig(), true
	case "hero":
		return HeroConfig(), true
	default:
		return Config{}, false
	}
}
