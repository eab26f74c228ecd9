package particles

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

type canvasSize struct {
	width, height float64
}

// Scheduler drives a Field on a fixed frame interval for as long as its
// context lives. Resize requests are applied between ticks, so every tick
// sees either the old particle set or the new one.
type Scheduler struct {
	field    *Field
	surface  Surface
	interval time.Duration

	resizeChan chan canvasSize
	onFrame    func(*Field)

	hover   atomic.Bool
	ticks   atomic.Uint64
	running atomic.Bool
}

// NewScheduler creates a scheduler for field drawing onto surface.
func NewScheduler(field *Field, surface Surface, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Scheduler{
		field:      field,
		surface:    surface,
		interval:   interval,
		resizeChan: make(chan canvasSize, 1),
	}
}

// OnFrame registers a callback run on the scheduler goroutine after each tick.
// Must be called before Run.
func (s *Scheduler) OnFrame(fn func(*Field)) {
	s.onFrame = fn
}

// Resize queues a canvas resize. Only the latest pending size is kept.
func (s *Scheduler) Resize(width, height float64) {
	size := canvasSize{width: width, height: height}
	for {
		select {
		case s.resizeChan <- size:
			return
		default:
		}
		// Drop the stale request and retry
		select {
		case <-s.resizeChan:
		default:
		}
	}
}

// SetHover records pointer hover from any goroutine; the field picks it up
// on the next tick.
func (s *Scheduler) SetHover(hovered bool) { s.hover.Store(hovered) }

// Tick renders a single frame. Run calls it on every interval; hosts with
// their own frame loop may call it directly instead.
func (s *Scheduler) Tick() {
	s.applyResize()
	s.field.SetHover(s.hover.Load())
	s.field.Tick(s.surface)
	s.ticks.Add(1)
	if s.onFrame != nil {
		s.onFrame(s.field)
	}
}

// Run ticks until ctx is done and returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	s.running.Store(true)
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case size := <-s.resizeChan:
			s.resize(size)
		case <-ticker.C:
			s.Tick()
		}
	}
}

func (s *Scheduler) applyResize() {
	select {
	case size := <-s.resizeChan:
		s.resize(size)
	default:
	}
}

func (s *Scheduler) resize(size canvasSize) {
	s.field.Resize(size.width, size.height)
	if rs, ok := s.surface.(ResizableSurface); ok {
		rs.Resize(int(size.width), int(size.height))
	}
}

// Ticks is the number of frames rendered so far.
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

// Running reports whether Run is active.
func (s *Scheduler) Running() bool { return s.running.Load() }

// Field exposes the scheduled field. Callers outside the scheduler goroutine
// must not touch it while Run is active.
func (s *Scheduler) Field() *Field { return s.field }
