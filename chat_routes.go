package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/resume-site/internal/chat"
	"github.com/Zachkp/resume-site/internal/store"
)

const chatCookie = "chat_session"

// chatSession resolves the visitor's chat session and refreshes its cookie.
func (s *server) chatSession(c *gin.Context) *chat.Session {
	id, _ := c.Cookie(chatCookie)
	id, sess := s.chats.Session(id)
	c.SetCookie(chatCookie, id, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
	return sess
}

func (s *server) setupChatRoutes(r *gin.Engine) {
	// Full history, loaded once when the chat widget appears
	r.GET("/chat/history", func(c *gin.Context) {
		sess := s.chatSession(c)
		c.HTML(http.StatusOK, "chat-messages.html", gin.H{
			"messages": sess.History(),
		})
	})

	// HTMX chat endpoint - returns only the new history entries
	r.POST("/chat", func(c *gin.Context) {
		sess := s.chatSession(c)
		question := c.PostForm("question")

		ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.ChatTimeout)
		defer cancel()

		start := s.now()
		entries, err := sess.Send(ctx, question)
		if errors.Is(err, chat.ErrBusy) {
			c.Status(http.StatusConflict)
			return
		}
		if len(entries) == 0 {
			c.Status(http.StatusNoContent)
			return
		}

		outcome := store.OutcomeAnswered
		switch {
		case errors.Is(err, chat.ErrUnavailable):
			outcome = store.OutcomeUnavailable
		case err != nil:
			outcome = store.OutcomeFailed
			log.Printf("Error generating content: %v", err)
		}
		// Record what was actually asked, not the raw form value
		asked := strings.TrimSpace(question)
		if entries[0].Sender == chat.SenderUser {
			asked = entries[0].Text
		}
		s.recordChat(hashIP(s.admin.salt, c.ClientIP()), asked, outcome, start)

		c.HTML(http.StatusOK, "chat-messages.html", gin.H{
			"messages": entries,
		})
	})
}

func (s *server) recordChat(hashedIP, question, outcome string, start time.Time) {
	event := store.ChatEvent{
		HashedIP:  hashedIP,
		Question:  question,
		Outcome:   outcome,
		Latency:   s.now().Sub(start),
		Timestamp: start,
	}
	go func() {
		if err := s.store.RecordChat(context.Background(), event); err != nil {
			log.Printf("Error recording chat event: %v", err)
		}
	}()
}
