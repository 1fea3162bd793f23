package handlers

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Nandhini-35/travel-planner-AI/internal/middleware"
	"github.com/Nandhini-35/travel-planner-AI/internal/models"
	"github.com/Nandhini-35/travel-planner-AI/internal/services"
)

//go:embed index.html
var chatPage []byte

// missingKeyMessage is returned when the server runs without a usable
// Gemini configuration.
const missingKeyMessage = "API Key is missing. Please configure GEMINI_API_KEY in .env file."

type transcriptStore interface {
	Load(ctx context.Context, sessionID string) (models.Transcript, error)
	Save(ctx context.Context, sessionID string, transcript models.Transcript) error
	Clear(ctx context.Context, sessionID string) error
}

type modelGateway interface {
	Chat(ctx context.Context, history []models.Turn, message string) (string, error)
}

type ChatHandler struct {
	store   transcriptStore
	gateway modelGateway
}

func NewChatHandler(store transcriptStore, gateway modelGateway) *ChatHandler {
	return &ChatHandler{
		store:   store,
		gateway: gateway,
	}
}

// Index serves the chat page. It also touches the visitor's transcript
// so the first POST /chat starts from a known empty history.
func (h *ChatHandler) Index(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())

	transcript, err := h.store.Load(r.Context(), sessionID)
	if err != nil {
		// The page still renders; the first chat will surface the problem.
		log.Printf("failed to load session %s: %v", sessionID, err)
	} else if transcript.Empty() {
		if err := h.store.Save(r.Context(), sessionID, transcript); err != nil {
			log.Printf("failed to initialize session %s: %v", sessionID, err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(chatPage)
}

// Chat runs one exchange: validate the message, replay the stored
// history to the model, persist the new pair of turns, and reply.
// The transcript is only saved after the model call succeeds, so a
// failed exchange leaves the session exactly as it was.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.gateway == nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: missingKeyMessage})
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No message provided"})
		return
	}

	sessionID := middleware.GetSessionID(r.Context())
	transcript, err := h.store.Load(r.Context(), sessionID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	history, outgoing := services.BuildTurnPrompt(transcript, message)
	reply, err := h.gateway.Chat(r.Context(), history, outgoing)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// The transcript stores the raw message, never the prompt-wrapped one.
	transcript.Append(models.RoleUser, message)
	transcript.Append(models.RoleModel, reply)
	if err := h.store.Save(r.Context(), sessionID, transcript); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}

// Clear drops the session's transcript. Clearing a session that has no
// history is fine, and a store failure is logged rather than surfaced;
// the next exchange simply starts a fresh conversation.
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if err := h.store.Clear(r.Context(), sessionID); err != nil {
		log.Printf("failed to clear session %s: %v", sessionID, err)
	}

	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "success"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
