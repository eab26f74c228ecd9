// Package typewriter animates the rotating job titles in the page hero.
package typewriter

import "time"

const (
	TypeDelay   = 200 * time.Millisecond
	DeleteDelay = 100 * time.Millisecond
	HoldDelay   = 2 * time.Second
)

// DefaultWords are the titles cycled in the hero.
var DefaultWords = []string{"PLC Programmer", "SCADA Specialist", "Commissioning Engineer"}

// Typewriter types a word one rune at a time, holds it, deletes it, then
// moves on to the next word. Each value owns its own cursor state.
type Typewriter struct {
	words    [][]rune
	word     int
	pos      int
	deleting bool
}

// New creates a typewriter over words. With no words it falls back to
// DefaultWords.
func New(words ...string) *Typewriter {
	if len(words) == 0 {
		words = DefaultWords
	}
	tw := &Typewriter{}
	for _, w := range words {
		tw.words = append(tw.words, []rune(w))
	}
	return tw
}

// Step advances one keystroke and returns the visible text along with how
// long to wait before the next step.
func (tw *Typewriter) Step() (string, time.Duration) {
	current := tw.words[tw.word]

	if tw.deleting {
		if tw.pos > 0 {
			tw.pos--
		}
		text := string(current[:tw.pos])
		if tw.pos == 0 {
			tw.deleting = false
			tw.word = (tw.word + 1) % len(tw.words)
			return text, TypeDelay
		}
		return text, DeleteDelay
	}

	if tw.pos < len(current) {
		tw.pos++
	}
	text := string(current[:tw.pos])
	if tw.pos == len(current) {
		tw.deleting = true
		return text, HoldDelay
	}
	return text, TypeDelay
}

// Text is the currently visible text.
func (tw *Typewriter) Text() string {
	return string(tw.words[tw.word][:tw.pos])
}
