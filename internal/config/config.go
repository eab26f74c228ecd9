// Package config reads site settings from the environment. Values fall back
// to development defaults so the site runs with an empty .env.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"
)

var ErrMissingSMTP = errors.New("SMTP credentials not configured")

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Ready reports whether mail can be sent.
func (s SMTP) Ready() error {
	if s.User == "" || s.Pass == "" {
		return ErrMissingSMTP
	}
	return nil
}

type Canvas struct {
	Width  int
	Height int
}

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string
	ChatTimeout  time.Duration
	SessionTTL   time.Duration

	DatabasePath string
	Retention    time.Duration

	AdminUsername string
	AdminPassword string
	DebugDefaults bool

	FrameInterval time.Duration
	SkillsCanvas  Canvas
	ProfileCanvas Canvas

	SMTP SMTP
}

// Load reads the process environment.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary env lookup.
func FromLookup(lookup func(string) (string, bool)) Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:          get("PORT", "8080"),
		GeminiAPIKey:  get("GEMINI_API_KEY", get("API_KEY", "")),
		GeminiModel:   get("GEMINI_MODEL", "gemini-2.5-flash"),
		ChatTimeout:   duration(get("CHAT_TIMEOUT", ""), 30*time.Second),
		SessionTTL:    duration(get("CHAT_SESSION_TTL", ""), 2*time.Hour),
		DatabasePath:  get("DATABASE_PATH", "site.db"),
		Retention:     duration(get("ANALYTICS_RETENTION", ""), 365*24*time.Hour),
		AdminUsername: get("ADMIN_USERNAME", ""),
		AdminPassword: get("ADMIN_PASSWORD", ""),
		FrameInterval: duration(get("FRAME_INTERVAL", ""), 33*time.Millisecond),
		SkillsCanvas: Canvas{
			Width:  integer(get("SKILLS_CANVAS_WIDTH", ""), 1200),
			Height: integer(get("SKILLS_CANVAS_HEIGHT", ""), 600),
		},
		ProfileCanvas: Canvas{Width: 200, Height: 200},
		SMTP: SMTP{
			Host: get("SMTP_HOST", "smtp.gmail.com"),
			Port: get("SMTP_PORT", "587"),
			User: get("SMTP_USER", ""),
			Pass: get("SMTP_PASS", ""),
			To:   get("TO_EMAIL", ""),
		},
	}

	// Default credentials for development only
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		cfg.DebugDefaults = true
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		cfg.DebugDefaults = true
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.User
	}

	return cfg
}

func duration(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid duration %q, using %v", v, def)
		return def
	}
	return d
}

func integer(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid number %q, using %d", v, def)
		return def
	}
	return n
}
