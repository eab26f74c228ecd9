package particles

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestAdvanceFlipsOnceOutsideBounds(t *testing.T) {
	tests := []struct {
		name  string
		p     Particle
		wantX float64
		wantD float64
	}{
		{"left edge", Particle{X: -0.1, Y: 50, DirectionX: -0.2}, 0.1, 0.2},
		{"right edge", Particle{X: 100.1, Y: 50, DirectionX: 0.2}, 99.9, -0.2},
		{"inside", Particle{X: 50, Y: 50, DirectionX: 0.2}, 50.2, 0.2},
		{"exactly on edge", Particle{X: 100, Y: 50, DirectionX: 0.2}, 100.2, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.p, 100, 100)
			if !near(got.DirectionX, tt.wantD) {
				t.Errorf("DirectionX = %v, want %v", got.DirectionX, tt.wantD)
			}
			if !near(got.X, tt.wantX) {
				t.Errorf("X = %v, want %v", got.X, tt.wantX)
			}
		})
	}
}

func TestAdvanceContinuesInNewDirection(t *testing.T) {
	p := Particle{X: 0.05, Y: -0.05, DirectionX: -0.3, DirectionY: -0.2}

	p = Advance(p, 100, 100)
	// x was inside, y was outside
	if p.DirectionX != -0.3 || p.DirectionY != 0.2 {
		t.Fatalf("unexpected directions after first step: %+v", p)
	}
	if p.X >= 0 {
		t.Fatalf("expected X to overshoot the edge without clamping, got %v", p.X)
	}

	p = Advance(p, 100, 100)
	if p.DirectionX != 0.3 || p.DirectionY != 0.2 {
		t.Fatalf("unexpected directions after second step: %+v", p)
	}

	prevY := p.Y
	p = Advance(p, 100, 100)
	if p.DirectionY != 0.2 || p.Y <= prevY {
		t.Errorf("expected particle to keep moving down, got %+v", p)
	}
}

func TestParticleCount(t *testing.T) {
	hero := HeroConfig()
	tests := []struct {
		name   string
		cfg    Config
		w, h   float64
		expect int
	}{
		{"area derived large", hero, 1920, 1080, 103},
		{"area derived floor", hero, 400, 300, 50},
		{"area derived exact", hero, 2000, 1000, 100},
		{"fixed skills", SkillsConfig(), 1920, 1080, 80},
		{"fixed profile", ProfileConfig(), 200, 200, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ParticleCount(tt.w, tt.h); got != tt.expect {
				t.Errorf("ParticleCount(%v, %v) = %d, want %d", tt.w, tt.h, got, tt.expect)
			}
		})
	}
}

func TestInitializeIsDeterministicInCount(t *testing.T) {
	f := NewField(HeroConfig(), 800, 600, rand.New(rand.NewSource(1)))

	first := f.Initialize(1600, 900)
	second := f.Initialize(1600, 900)
	if len(first) != len(second) || len(first) != 72 {
		t.Fatalf("expected 72 particles twice, got %d and %d", len(first), len(second))
	}
	if first[0].X == second[0].X && first[0].Y == second[0].Y {
		t.Errorf("expected randomized placement between runs")
	}
}

func TestInitializePlacesBounceParticlesInsidePaddedBounds(t *testing.T) {
	cfg := SkillsConfig()
	f := NewField(cfg, 640, 480, rand.New(rand.NewSource(7)))

	for i, p := range f.Particles() {
		if p.X < p.Size || p.X >= 640-p.Size || p.Y < p.Size || p.Y >= 480-p.Size {
			t.Errorf("particle %d outside padded bounds: %+v", i, p)
		}
		if math.Abs(p.DirectionX) > cfg.Speed || math.Abs(p.DirectionY) > cfg.Speed {
			t.Errorf("particle %d direction out of range: %+v", i, p)
		}
		if p.Size < cfg.SizeMin || p.Size >= cfg.SizeMin+cfg.SizeSpread {
			t.Errorf("particle %d size out of range: %v", i, p.Size)
		}
	}
}

func TestResizeReplacesParticleSet(t *testing.T) {
	f := NewField(HeroConfig(), 400, 300, rand.New(rand.NewSource(3)))
	before := f.Particles()

	f.Resize(2000, 1000)
	after := f.Particles()

	if len(before) != 50 || len(after) != 100 {
		t.Fatalf("expected 50 then 100 particles, got %d and %d", len(before), len(after))
	}
	if w, h := f.Size(); w != 2000 || h != 1000 {
		t.Errorf("Size() = %v x %v, want 2000 x 1000", w, h)
	}
}

func TestRespawnParticleResetsAtOrigin(t *testing.T) {
	f := NewField(ProfileConfig(), 200, 200, rand.New(rand.NewSource(11)))

	for i, p := range f.Particles() {
		if p.X != 100 || p.Y != 100 {
			t.Fatalf("particle %d should start at the centre, got (%v, %v)", i, p.X, p.Y)
		}
		if p.Life != p.MaxLife || p.MaxLife < 40 || p.MaxLife >= 100 {
			t.Fatalf("particle %d has unexpected life %v/%v", i, p.Life, p.MaxLife)
		}
	}

	p := Particle{X: 150, Y: 20, DirectionX: 1, Life: 1, MaxLife: 60}
	p = f.Advance(p)
	if p.X != 100 || p.Y != 100 {
		t.Errorf("expected respawn at centre, got (%v, %v)", p.X, p.Y)
	}
	if p.Life != 60 {
		t.Errorf("expected life reset to 60, got %v", p.Life)
	}
	speed := math.Hypot(p.DirectionX, p.DirectionY)
	if speed < 0.5 || speed >= 2.0 {
		t.Errorf("respawn speed %v out of range", speed)
	}
}

func TestRespawnParticleIgnoresEdges(t *testing.T) {
	f := NewField(ProfileConfig(), 200, 200, rand.New(rand.NewSource(5)))

	p := Particle{X: 199, Y: 100, DirectionX: 2, Life: 10, MaxLife: 10}
	p = f.Advance(p)
	if p.X != 201 || p.DirectionX != 2 {
		t.Errorf("respawn particle should pass the edge unchanged, got %+v", p)
	}
	if p.Life != 9 {
		t.Errorf("expected life to count down to 9, got %v", p.Life)
	}
}

func TestHoverSpeedsUpRespawnParticles(t *testing.T) {
	f := NewField(ProfileConfig(), 200, 200, rand.New(rand.NewSource(5)))
	p := Particle{X: 100, Y: 100, DirectionX: 1, DirectionY: -1, Life: 10, MaxLife: 10}

	f.SetHover(true)
	got := f.Advance(p)
	if !near(got.X, 101.5) || !near(got.Y, 98.5) {
		t.Errorf("hovered advance = (%v, %v), want (101.5, 98.5)", got.X, got.Y)
	}

	f.SetHover(false)
	got = f.Advance(p)
	if !near(got.X, 101) || !near(got.Y, 99) {
		t.Errorf("plain advance = (%v, %v), want (101, 99)", got.X, got.Y)
	}
}

func TestDrawColorFadesWithLife(t *testing.T) {
	cfg := ProfileConfig()
	p := Particle{Color: cfg.Color, Life: 30, MaxLife: 60}
	if got := p.DrawColor().A; got != 102 {
		t.Errorf("alpha at half life = %d, want 102", got)
	}

	bounce := Particle{Color: SkillsConfig().Color}
	if got := bounce.DrawColor(); got != bounce.Color {
		t.Errorf("bounce particle colour changed: %v", got)
	}
}

func TestPresetLookup(t *testing.T) {
	cases := []struct {
		name   string
		metric string
	}{
		{"skills", "squared"},
		{"profile", "euclidean"},
		{"hero", "squared"},
	}
	for _, tc := range cases {
		cfg, ok := Preset(tc.name)
		if !ok {
			t.Fatalf("Preset(%q) not found", tc.name)
		}
		if cfg.Name != tc.name {
			t.Errorf("Preset(%q).Name = %q", tc.name, cfg.Name)
		}
		if got := cfg.Link.Metric.String(); got != tc.metric {
			t.Errorf("Preset(%q) metric = %q, want %q", tc.name, got, tc.metric)
		}
	}
	if _, ok := Preset("nope"); ok {
		t.Error("Preset(\"nope\") should not exist")
	}
}
