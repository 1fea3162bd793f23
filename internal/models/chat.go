package models

// Role values use the names the Gemini API expects for chat history.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is a single message in a conversation: who spoke and what was said.
// Turns are immutable once appended to a transcript.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the model's reply back to the browser.
type ChatResponse struct {
	Response string `json:"response"`
}

// StatusResponse acknowledges endpoints that have no payload, such as /clear.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
