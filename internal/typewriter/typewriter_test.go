package typewriter

import (
	"testing"
	"time"
)

func TestTypewriterCycle(t *testing.T) {
	tw := New("ab", "c")

	steps := []struct {
		text  string
		delay time.Duration
	}{
		{"a", TypeDelay},
		{"ab", HoldDelay},
		{"a", DeleteDelay},
		{"", TypeDelay},
		{"c", HoldDelay},
		{"", TypeDelay},
		{"a", TypeDelay},
	}

	for i, want := range steps {
		text, delay := tw.Step()
		if text != want.text || delay != want.delay {
			t.Fatalf("step %d = (%q, %v), want (%q, %v)", i, text, delay, want.text, want.delay)
		}
	}
}

func TestTypewriterMultibyte(t *testing.T) {
	tw := New("héllo")
	tw.Step()
	text, _ := tw.Step()
	if text != "hé" {
		t.Errorf("expected rune-wise typing, got %q", text)
	}
	if tw.Text() != "hé" {
		t.Errorf("Text() = %q", tw.Text())
	}
}

func TestTypewriterDefaults(t *testing.T) {
	tw := New()
	text, _ := tw.Step()
	if text != "P" {
		t.Errorf("expected first default word to start typing, got %q", text)
	}
}
