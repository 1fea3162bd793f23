package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nandhini-35/travel-planner-AI/internal/config"
	"github.com/Nandhini-35/travel-planner-AI/internal/database"
	"github.com/Nandhini-35/travel-planner-AI/internal/handlers"
	"github.com/Nandhini-35/travel-planner-AI/internal/middleware"
	"github.com/Nandhini-35/travel-planner-AI/internal/router"
	"github.com/Nandhini-35/travel-planner-AI/internal/services"
	"github.com/Nandhini-35/travel-planner-AI/internal/session"
)

func main() {
	log.Println("🚀 Starting Travel Planner AI...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.SecretKey == config.DefaultSecretKey {
		log.Println("WARNING: SECRET_KEY not set, session cookies are signed with the default development key")
	}

	// ──── Step 2: Initialize Session Store ────
	var store session.Store
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer client.Close()
		store = session.NewRedisStore(client, cfg.SessionTTL)
		log.Println("✓ Redis session store connected")
	} else {
		memStore := session.NewMemoryStore(cfg.SessionTTL)
		defer memStore.Stop()
		store = memStore
		log.Println("✓ In-memory session store initialized (set REDIS_URL to keep chats across restarts)")
	}

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (model: %s)", cfg.GeminiModel)

	// ──── Step 4: Wire Handlers ────
	sessions := middleware.NewSessionManager(cfg.SecretKey, cfg.Env == "production")
	chatHandler := handlers.NewChatHandler(store, geminiService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(sessions, chatHandler)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Gemini replies can take a while; give them room before cutting off.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Travel Planner AI ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
