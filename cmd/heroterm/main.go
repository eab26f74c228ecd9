// Command heroterm plays the skills particle canvas in a terminal.
package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/resume-site/internal/particles"
	"github.com/Zachkp/resume-site/internal/resume"
	"github.com/Zachkp/resume-site/internal/typewriter"
)

type term struct {
	screen  tcell.Screen
	surface *termSurface
	sched   *particles.Scheduler

	tw       *typewriter.Typewriter
	title    string
	nextType time.Time
}

func newTerm(screen tcell.Screen, p resume.Profile) *term {
	surface := newTermSurface(screen)
	cols, rows := screen.Size()
	field := particles.NewField(particles.SkillsConfig(),
		float64(cols*cellWidth), float64(rows*cellHeight),
		rand.New(rand.NewSource(time.Now().UnixNano())))

	return &term{
		screen:  screen,
		surface: surface,
		sched:   particles.NewScheduler(field, surface, 0),
		tw:      typewriter.New(p.Titles...),
	}
}

func (t *term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.sched.Resize(float64(cols*cellWidth), float64(rows*cellHeight))
		t.screen.Sync()
	}
	return true
}

func (t *term) draw() {
	now := time.Now()
	if !now.Before(t.nextType) {
		text, delay := t.tw.Step()
		t.title = text
		t.nextType = now.Add(delay)
	}

	t.sched.Tick()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	x := 1
	for _, r := range t.title + "_" {
		t.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	t.screen.Show()
}

func (t *term) run() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			t.draw()
		}
	}
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	newTerm(screen, resume.Default()).run()
}
