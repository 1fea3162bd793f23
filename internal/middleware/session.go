package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const SessionIDKey contextKey = "session_id"

// CookieName is the browser cookie that carries the signed session token.
const CookieName = "session"

// SessionManager mints and verifies the signed session cookie. A
// request with no cookie, or with one that fails verification, gets a
// fresh session instead of an error; chat history simply starts over.
type SessionManager struct {
	secret []byte
	secure bool
}

func NewSessionManager(secret string, secure bool) *SessionManager {
	return &SessionManager{secret: []byte(secret), secure: secure}
}

// generateToken signs a session ID into the compact token stored in the cookie.
func (m *SessionManager) generateToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// parseToken recovers the session ID from a cookie token. Any
// verification failure is an error so the caller mints a new session.
func (m *SessionManager) parseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	if _, err := uuid.Parse(sid); err != nil {
		return "", err
	}

	return sid, nil
}

// Middleware attaches a session ID to every request, setting a fresh
// cookie when the browser sent none or sent one that does not verify.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		if cookie, err := r.Cookie(CookieName); err == nil {
			if sid, parseErr := m.parseToken(cookie.Value); parseErr == nil {
				sessionID = sid
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			token, err := m.generateToken(sessionID)
			if err != nil {
				// No cookie means the session lives for this request only.
				log.Printf("failed to sign session token: %v", err)
			} else {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   m.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session ID from a request context.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
