package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"google.golang.org/api/option"

	"github.com/Nandhini-35/travel-planner-AI/internal/models"
)

// GeminiService talks to the hosted generative language API. It is the
// only component that knows the wire shape of a conversation.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Chat replays the prior turns into a fresh chat session and sends the
// new message, returning the model's reply text. Failures come back as
// *GatewayError so callers can tell an auth problem from a flaky
// network or a safety block.
func (s *GeminiService) Chat(ctx context.Context, history []models.Turn, message string) (string, error) {
	chat := s.model.StartChat()
	chat.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		chat.History = append(chat.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", classifyGatewayError(err)
	}

	reply := strings.TrimSpace(extractText(resp))
	if reply == "" {
		return "", &GatewayError{
			Kind: GatewayBlocked,
			Err:  fmt.Errorf("Gemini returned no usable reply (finish reason: %s)", finishReason(resp)),
		}
	}

	return reply, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

func finishReason(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return "no candidates"
	}
	return resp.Candidates[0].FinishReason.String()
}
