package main

import (
	"context"
	"image/color"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/config"
	"github.com/Zachkp/resume-site/internal/particles"
	"github.com/Zachkp/resume-site/internal/typewriter"
)

// publishEvery is how many ticks pass between PNG snapshots.
const publishEvery = 3

var canvasBackground = color.NRGBA{R: 10, G: 10, B: 26, A: 255}

// canvas is one server-side particle animation. Every visitor sees the
// same frames, so resize and hover act on all of them.
type canvas struct {
	sched   *particles.Scheduler
	surface *particles.RasterSurface

	// maxSize bounds resize requests; zero means the canvas is fixed.
	maxSize config.Canvas
}

func newCanvas(cfg particles.Config, size config.Canvas, interval time.Duration, seed int64) *canvas {
	field := particles.NewField(cfg, float64(size.Width), float64(size.Height), rand.New(rand.NewSource(seed)))
	surface := particles.NewRasterSurface(size.Width, size.Height, canvasBackground)
	sched := particles.NewScheduler(field, surface, interval)

	c := &canvas{sched: sched, surface: surface}
	sched.OnFrame(func(f *particles.Field) {
		if f.Frames()%publishEvery != 1 {
			return
		}
		if err := surface.Publish(); err != nil {
			log.Printf("Error publishing %s frame: %v", f.Config().Name, err)
		}
	})
	return c
}

func newCanvases(cfg config.Config) map[string]*canvas {
	seed := time.Now().UnixNano()
	sizes := map[string]config.Canvas{
		"skills":  cfg.SkillsCanvas,
		"profile": cfg.ProfileCanvas,
	}

	canvases := make(map[string]*canvas, len(sizes))
	for name, size := range sizes {
		preset, ok := particles.Preset(name)
		if !ok {
			log.Fatalf("No particle preset named %q", name)
		}
		canvases[name] = newCanvas(preset, size, cfg.FrameInterval, seed)
		seed++
	}
	// The skills section follows the page width, up to its configured size.
	canvases["skills"].maxSize = cfg.SkillsCanvas
	return canvases
}

// startCanvases runs every canvas scheduler until ctx ends.
func (s *server) startCanvases(ctx context.Context) {
	for name, c := range s.canvas {
		field := c.sched.Field()
		log.Printf("Canvas %s: %d particles, %s links", name, len(field.Particles()), field.Config().Link.Metric)
		go func(name string, c *canvas) {
			if err := c.sched.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("Canvas %s stopped: %v", name, err)
			}
		}(name, c)
	}
}

type resizeRequest struct {
	Width  int `form:"width" binding:"required,min=50"`
	Height int `form:"height" binding:"required,min=50"`
}

type hoverRequest struct {
	Hover bool `form:"hover"`
}

func (s *server) setupCanvasRoutes(r *gin.Engine) {
	group := r.Group("/canvas/:name")
	group.Use(func(c *gin.Context) {
		cv, ok := s.canvas[c.Param("name")]
		if !ok {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Set("canvas", cv)
		c.Next()
	})

	// Latest rendered frame
	group.GET("/frame.png", func(c *gin.Context) {
		cv := c.MustGet("canvas").(*canvas)
		frame := cv.surface.Snapshot()
		if frame == nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, "image/png", frame)
	})

	// Only canvases with a maxSize follow the page; requests beyond it are
	// capped, so no visitor can make the shared canvas larger than configured.
	group.POST("/resize", func(c *gin.Context) {
		cv := c.MustGet("canvas").(*canvas)
		if cv.maxSize.Width == 0 {
			c.JSON(http.StatusForbidden, gin.H{"error": "canvas has a fixed size"})
			return
		}
		var req resizeRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cv.sched.Resize(float64(min(req.Width, cv.maxSize.Width)), float64(min(req.Height, cv.maxSize.Height)))
		c.Status(http.StatusAccepted)
	})

	group.POST("/hover", func(c *gin.Context) {
		var req hoverRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.MustGet("canvas").(*canvas).sched.SetHover(req.Hover)
		c.Status(http.StatusNoContent)
	})

	// Hero typing animation as server-sent events
	r.GET("/hero/typing", func(c *gin.Context) {
		tw := typewriter.New(s.profile.Titles...)
		done := c.Request.Context().Done()

		c.Stream(func(w io.Writer) bool {
			text, delay := tw.Step()
			c.SSEvent("typing", text)

			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-done:
				return false
			case <-timer.C:
				return true
			}
		})
	})
}
