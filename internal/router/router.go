package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Nandhini-35/travel-planner-AI/internal/handlers"
	"github.com/Nandhini-35/travel-planner-AI/internal/middleware"
)

func New(sessions *middleware.SessionManager, chatHandler *handlers.ChatHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NoCache)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chat Routes (session scoped) ────
	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware)
		r.Get("/", chatHandler.Index)
		r.Post("/chat", chatHandler.Chat)
		r.Post("/clear", chatHandler.Clear)
	})

	return r
}
