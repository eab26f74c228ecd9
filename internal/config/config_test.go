package config

import (
	"errors"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(nil))

	if cfg.Port != "8080" || cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("unexpected defaults: port=%q model=%q", cfg.Port, cfg.GeminiModel)
	}
	if cfg.AdminUsername != "admin" || !cfg.DebugDefaults {
		t.Errorf("expected development admin defaults, got %q (debug=%v)", cfg.AdminUsername, cfg.DebugDefaults)
	}
	if cfg.SkillsCanvas != (Canvas{Width: 1200, Height: 600}) {
		t.Errorf("unexpected skills canvas %+v", cfg.SkillsCanvas)
	}
	if !errors.Is(cfg.SMTP.Ready(), ErrMissingSMTP) {
		t.Errorf("SMTP should not be ready without credentials")
	}
}

func TestOverrides(t *testing.T) {
	cfg := FromLookup(lookupFrom(map[string]string{
		"PORT":                "9000",
		"API_KEY":             "legacy-key",
		"FRAME_INTERVAL":      "16ms",
		"SKILLS_CANVAS_WIDTH": "800",
		"CHAT_TIMEOUT":        "nonsense",
		"ADMIN_USERNAME":      "root",
		"ADMIN_PASSWORD":      "s3cret",
		"SMTP_USER":           "me@example.com",
		"SMTP_PASS":           "pw",
	}))

	if cfg.Port != "9000" || cfg.GeminiAPIKey != "legacy-key" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.FrameInterval != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v", cfg.FrameInterval)
	}
	if cfg.SkillsCanvas.Width != 800 || cfg.SkillsCanvas.Height != 600 {
		t.Errorf("SkillsCanvas = %+v", cfg.SkillsCanvas)
	}
	if cfg.ChatTimeout != 30*time.Second {
		t.Errorf("invalid duration should fall back, got %v", cfg.ChatTimeout)
	}
	if cfg.DebugDefaults {
		t.Error("explicit admin credentials should clear DebugDefaults")
	}
	if cfg.SMTP.Ready() != nil || cfg.SMTP.To != "me@example.com" {
		t.Errorf("SMTP = %+v", cfg.SMTP)
	}
}
