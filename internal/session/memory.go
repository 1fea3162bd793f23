package session

import (
	"context"
	"sync"
	"time"

	"github.com/Nandhini-35/travel-planner-AI/internal/models"
)

const sweepInterval = 10 * time.Minute

type memoryEntry struct {
	transcript models.Transcript
	expiresAt  time.Time
}

// MemoryStore keeps transcripts in process memory. It is the default
// store when no Redis URL is configured; history is lost on restart.
type MemoryStore struct {
	mu       sync.Mutex
	entries  map[string]*memoryEntry
	ttl      time.Duration
	stopChan chan struct{}
}

// NewMemoryStore starts a store whose entries expire ttl after their
// last save. Call Stop to release the background sweeper.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries:  make(map[string]*memoryEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.sweepExpired(time.Now())
			}
		}
	}()

	return s
}

func (s *MemoryStore) Stop() {
	select {
	case <-s.stopChan:
		return
	default:
		close(s.stopChan)
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (models.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return models.Transcript{}, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return models.Transcript{}, nil
	}

	// Copy so callers cannot mutate the stored history in place.
	return models.NewTranscript(entry.transcript.Turns()), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, transcript models.Transcript) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = &memoryEntry{
		transcript: models.NewTranscript(transcript.Turns()),
		expiresAt:  time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

func (s *MemoryStore) sweepExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, sessionID)
		}
	}
}
