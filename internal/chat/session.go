// Package chat holds the visitor-facing assistant: one Session per visitor,
// forwarding questions plus the resume transcript to a Collaborator.
package chat

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Fixed texts shown to visitors.
const (
	InitFailedMessage  = "Error: AI service could not be initialized. Please check the API key configuration."
	UnavailableMessage = "AI is not available."
	ApologyMessage     = "Sorry, I encountered an error. Please try again."
)

var (
	ErrBusy        = errors.New("chat: a question is already pending")
	ErrUnavailable = errors.New("chat: assistant unavailable")
)

// Message is one entry of the chat history.
type Message struct {
	Sender Sender
	Text   string
	HTML   template.HTML
	At     time.Time
}

// Prompter turns a visitor question into the full collaborator prompt.
type Prompter interface {
	Prompt(question string) (string, error)
}

// Session is the chat state of a single visitor. Only one question may be
// pending at a time; while it is, Busy reports true and Send refuses new
// questions.
type Session struct {
	mu      sync.Mutex
	history []Message
	busy    bool

	prompter Prompter
	collab   Collaborator
	now      func() time.Time
}

// NewSession opens a session greeting the visitor as assistantOf's assistant.
// A nil collab or non-nil initErr leaves the session without an assistant;
// the failure is reported once in the history.
func NewSession(assistantOf string, prompter Prompter, collab Collaborator, initErr error) *Session {
	s := &Session{prompter: prompter, collab: collab, now: time.Now}
	if initErr != nil {
		s.collab = nil
		s.appendLocked(SenderAI, InitFailedMessage)
	}
	s.appendLocked(SenderAI, fmt.Sprintf("Hello! I am %s's AI assistant. Feel free to ask me anything about the resume.", assistantOf))
	return s
}

// Send asks the collaborator about question and returns the history entries
// it appended.
//
// Blank questions are ignored: no entries, no error, no collaborator call.
// ErrBusy is returned with no entries while another question is pending.
// Any other error comes with the entries that already report the failure to
// the visitor, so callers render them regardless.
func (s *Session) Send(ctx context.Context, question string) ([]Message, error) {
	s.mu.Lock()
	if s.collab == nil {
		msg := s.appendLocked(SenderAI, UnavailableMessage)
		s.mu.Unlock()
		return []Message{msg}, ErrUnavailable
	}

	question = strings.TrimSpace(question)
	if question == "" {
		s.mu.Unlock()
		return nil, nil
	}
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}

	s.busy = true
	asked := s.appendLocked(SenderUser, question)
	collab := s.collab
	s.mu.Unlock()

	reply, err := s.ask(ctx, collab, question)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		answer := s.appendLocked(SenderAI, ApologyMessage)
		return []Message{asked, answer}, err
	}
	answer := s.appendLocked(SenderAI, reply)
	return []Message{asked, answer}, nil
}

func (s *Session) ask(ctx context.Context, collab Collaborator, question string) (string, error) {
	prompt, err := s.prompter.Prompt(question)
	if err != nil {
		return "", err
	}
	return collab.Complete(ctx, prompt)
}

// appendLocked adds an entry; callers hold s.mu or own s exclusively.
func (s *Session) appendLocked(sender Sender, text string) Message {
	m := Message{Sender: sender, Text: text, At: s.now()}
	if sender == SenderAI {
		m.HTML = Format(text)
	} else {
		m.HTML = template.HTML(template.HTMLEscapeString(text))
	}
	s.history = append(s.history, m)
	return m
}

// Busy reports whether a question is pending, i.e. the input is disabled.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Available reports whether the session has a working collaborator.
func (s *Session) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collab != nil
}

// History returns a copy of all entries so far.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}
