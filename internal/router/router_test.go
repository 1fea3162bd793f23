package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Nandhini-35/travel-planner-AI/internal/handlers"
	"github.com/Nandhini-35/travel-planner-AI/internal/middleware"
	"github.com/Nandhini-35/travel-planner-AI/internal/models"
	"github.com/Nandhini-35/travel-planner-AI/internal/session"
)

type fakeGateway struct {
	reply string

	lastHistory []models.Turn
	lastMessage string
}

func (g *fakeGateway) Chat(ctx context.Context, history []models.Turn, message string) (string, error) {
	g.lastHistory = history
	g.lastMessage = message
	return g.reply, nil
}

func newTestRouter(t *testing.T, gateway *fakeGateway) http.Handler {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Stop)

	sessions := middleware.NewSessionManager("test-secret", false)
	return New(sessions, handlers.NewChatHandler(store, gateway))
}

func findSessionCookie(cookies []*http.Cookie) *http.Cookie {
	for _, c := range cookies {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	return nil
}

func TestRouterConversationContinuesAcrossRequests(t *testing.T) {
	gateway := &fakeGateway{reply: "Sounds exciting! How many days?"}
	r := newTestRouter(t, gateway)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"Plan a trip to Kyoto"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	cookie := findSessionCookie(rr.Result().Cookies())
	if cookie == nil {
		t.Fatal("expected a session cookie on the first response")
	}
	if len(gateway.lastHistory) != 0 {
		t.Errorf("first exchange must start with no history, got %d turns", len(gateway.lastHistory))
	}

	gateway.reply = "Three days in Kyoto, noted."
	req = httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"3 days"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if len(gateway.lastHistory) != 2 {
		t.Fatalf("second exchange must replay the stored turns, got %d", len(gateway.lastHistory))
	}
	if gateway.lastMessage != "3 days" {
		t.Errorf("follow-up messages must be sent bare, got %q", gateway.lastMessage)
	}
}

func TestRouterSessionsAreIndependent(t *testing.T) {
	gateway := &fakeGateway{reply: "Hello!"}
	r := newTestRouter(t, gateway)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"first visitor"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	// A request without the first visitor's cookie is a new session.
	req = httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"second visitor"}`))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if len(gateway.lastHistory) != 0 {
		t.Errorf("a new visitor must not inherit another session's history, got %d turns", len(gateway.lastHistory))
	}
}

func TestRouterClearResetsConversation(t *testing.T) {
	gateway := &fakeGateway{reply: "Where to?"}
	r := newTestRouter(t, gateway)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"Plan a trip"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	cookie := findSessionCookie(rr.Result().Cookies())
	if cookie == nil {
		t.Fatal("expected a session cookie")
	}

	req = httptest.NewRequest(http.MethodPost, "/clear", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var status models.StatusResponse
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if status.Status != "success" {
		t.Errorf("expected status 'success', got %q", status.Status)
	}

	// The next exchange starts from scratch.
	req = httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"New trip"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if len(gateway.lastHistory) != 0 {
		t.Errorf("expected an empty history after clear, got %d turns", len(gateway.lastHistory))
	}
}

func TestRouterCacheHeadersOnEveryResponse(t *testing.T) {
	gateway := &fakeGateway{reply: "Hi!"}
	r := newTestRouter(t, gateway)

	requests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"index", http.MethodGet, "/", ""},
		{"chat", http.MethodPost, "/chat", `{"message":"hi"}`},
		{"clear", http.MethodPost, "/clear", ""},
		{"health", http.MethodGet, "/health", ""},
		{"not found", http.MethodGet, "/nope", ""},
	}

	for _, tc := range requests {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body == "" {
				req = httptest.NewRequest(tc.method, tc.target, nil)
			} else {
				req = httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if got := rr.Header().Get("Cache-Control"); !strings.Contains(got, "no-store") {
				t.Errorf("expected no-store Cache-Control, got %q", got)
			}
			if got := rr.Header().Get("Pragma"); got != "no-cache" {
				t.Errorf("expected Pragma no-cache, got %q", got)
			}
			if got := rr.Header().Get("Expires"); got != "-1" {
				t.Errorf("expected Expires -1, got %q", got)
			}
		})
	}
}

func TestRouterHealth(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rr.Body.String())
	}
	if findSessionCookie(rr.Result().Cookies()) != nil {
		t.Error("health probes must not mint session cookies")
	}
}

func TestRouterServesChatPage(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML page, got %q", ct)
	}
	if findSessionCookie(rr.Result().Cookies()) == nil {
		t.Error("expected the page visit to start a session")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	r := newTestRouter(t, &fakeGateway{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/anything", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
