package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/resume-site/internal/chat"
	"github.com/Zachkp/resume-site/internal/config"
	"github.com/Zachkp/resume-site/internal/resume"
	"github.com/Zachkp/resume-site/internal/store"
)

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	ctx := context.Background()

	// A nil collaborator keeps the assistant disabled; sessions report why.
	var collab chat.Collaborator
	gemini, collabErr := chat.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if collabErr != nil {
		log.Printf("Failed to initialize Gemini: %v", collabErr)
	} else {
		collab = gemini
		log.Printf("AI assistant ready (model %s)", gemini.Model())
	}

	srv := newServer(cfg, resume.Default(), st, collab, collabErr)
	srv.startCanvases(ctx)
	go srv.maintenance(ctx)

	r := newRouter(srv)
	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
