package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/chat"
	"github.com/Zachkp/resume-site/internal/config"
	"github.com/Zachkp/resume-site/internal/resume"
	"github.com/Zachkp/resume-site/internal/store"
)

// server bundles everything the handlers need.
type server struct {
	cfg     config.Config
	profile resume.Profile
	store   *store.Store
	chats   *chat.Registry
	canvas  map[string]*canvas
	admin   *adminAuth
	mailer  mailer
	now     func() time.Time
}

func newServer(cfg config.Config, profile resume.Profile, st *store.Store, collab chat.Collaborator, collabErr error) *server {
	s := &server{
		cfg:     cfg,
		profile: profile,
		store:   st,
		canvas:  newCanvases(cfg),
		admin:   newAdminAuth(cfg),
		mailer:  smtpMailer{cfg: cfg.SMTP},
		now:     time.Now,
	}
	s.chats = chat.NewRegistry(cfg.SessionTTL, func() *chat.Session {
		return chat.NewSession(profile.FirstName(), profile, collab, collabErr)
	})
	return s
}

// maintenance periodically drops idle chat sessions and analytics past
// the retention window.
func (s *server) maintenance(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	s.purgeAnalytics(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.chats.Sweep(); n > 0 {
				log.Printf("Dropped %d idle chat sessions", n)
			}
			s.purgeAnalytics(ctx)
		}
	}
}

func (s *server) purgeAnalytics(ctx context.Context) {
	n, err := s.store.PurgeBefore(ctx, s.now().Add(-s.cfg.Retention))
	if err != nil {
		log.Printf("Error cleaning up old analytics: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d records older than %v", n, s.cfg.Retention)
	}
}

func newRouter(s *server) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(loadTemplates())
	r.Use(s.visitorTrackingMiddleware())

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"profile":       s.profile,
			"skillsCanvas":  s.cfg.SkillsCanvas,
			"profileCanvas": s.cfg.ProfileCanvas,
		})
	})

	s.setupChatRoutes(r)
	s.setupCanvasRoutes(r)
	s.setupContactRoutes(r)
	s.setupAdminRoutes(r)

	return r
}
