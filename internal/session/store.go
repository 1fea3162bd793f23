// Package session persists per-visitor chat transcripts keyed by the
// session ID carried in the browser cookie.
package session

import (
	"context"

	"github.com/Nandhini-35/travel-planner-AI/internal/models"
)

// Store is the persistence contract for transcripts. Implementations
// must be safe for concurrent use.
//
// Load returns an empty transcript, not an error, when the session has
// no stored history yet.
type Store interface {
	Load(ctx context.Context, sessionID string) (models.Transcript, error)
	Save(ctx context.Context, sessionID string, transcript models.Transcript) error
	Clear(ctx context.Context, sessionID string) error
}
