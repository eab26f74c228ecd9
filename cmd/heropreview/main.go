// Command heropreview opens a desktop window running the hero particle
// field with the profile burst and typing title on top.
package main

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Zachkp/resume-site/internal/particles"
	"github.com/Zachkp/resume-site/internal/resume"
	"github.com/Zachkp/resume-site/internal/typewriter"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	profileSize = 200
	profileX    = 40
	profileY    = 40
)

var background = color.RGBA{R: 10, G: 10, B: 26, A: 255}

type preview struct {
	hero        *particles.Scheduler
	heroSurface *ebitenSurface

	profile        *particles.Scheduler
	profileSurface *ebitenSurface
	profileImage   *ebiten.Image

	tw       *typewriter.Typewriter
	title    string
	nextType time.Time

	width, height int
}

func newPreview(p resume.Profile) *preview {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	heroField := particles.NewField(particles.HeroConfig(), windowWidth, windowHeight, rng)
	heroSurface := &ebitenSurface{background: background}

	profileField := particles.NewField(particles.ProfileConfig(), profileSize, profileSize, rng)
	profileSurface := &ebitenSurface{background: color.Transparent}

	// Ticks are driven by Draw, so the interval is unused
	return &preview{
		hero:           particles.NewScheduler(heroField, heroSurface, 0),
		heroSurface:    heroSurface,
		profile:        particles.NewScheduler(profileField, profileSurface, 0),
		profileSurface: profileSurface,
		profileImage:   ebiten.NewImage(profileSize, profileSize),
		tw:             typewriter.New(p.Titles...),
		width:          windowWidth,
		height:         windowHeight,
	}
}

func (g *preview) Update() error {
	now := time.Now()
	if !now.Before(g.nextType) {
		text, delay := g.tw.Step()
		g.title = text
		g.nextType = now.Add(delay)
	}

	x, y := ebiten.CursorPosition()
	g.profile.SetHover(x >= profileX && x < profileX+profileSize && y >= profileY && y < profileY+profileSize)
	return nil
}

func (g *preview) Draw(screen *ebiten.Image) {
	g.heroSurface.dst = screen
	g.hero.Tick()

	g.profileSurface.dst = g.profileImage
	g.profile.Tick()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(profileX, profileY)
	screen.DrawImage(g.profileImage, op)

	ebitenutil.DebugPrintAt(screen, g.title+"_", profileX+profileSize+24, profileY+profileSize/2)
}

// Layout treats every window size change as a canvas resize.
func (g *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.hero.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	profile := resume.Default()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(profile.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newPreview(profile)); err != nil {
		log.Fatal(err)
	}
}
