package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
)

// ErrSessionNotFound is returned for unknown or expired tokens.
var ErrSessionNotFound = errors.New("session not found")

// MemorySessionRepository keeps candidate sets in process memory. Used
// when no MongoDB is configured, and in tests. Expired entries are
// dropped lazily on access and by the janitor.
type MemorySessionRepository struct {
	mu   sync.Mutex
	sets map[string]*entity.CandidateSet
	ttl  time.Duration
}

// NewMemorySessionRepository creates an in-memory session repository
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sets: make(map[string]*entity.CandidateSet),
		ttl:  ttl,
	}
}

// Save stores a candidate set under its token
func (r *MemorySessionRepository) Save(_ context.Context, set *entity.CandidateSet) error {
	now := time.Now()
	set.CreatedAt = now
	set.ExpiresAt = now.Add(r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.Token] = set
	return nil
}

// Get fetches a candidate set by token
func (r *MemorySessionRepository) Get(_ context.Context, token string) (*entity.CandidateSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(set.ExpiresAt) {
		delete(r.sets, token)
		return nil, ErrSessionNotFound
	}
	return set, nil
}

// Delete removes a candidate set
func (r *MemorySessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, token)
	return nil
}

// StartJanitor sweeps expired entries until ctx is cancelled.
func (r *MemorySessionRepository) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *MemorySessionRepository) sweep() {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, set := range r.sets {
		if now.After(set.ExpiresAt) {
			delete(r.sets, token)
		}
	}
}

var _ repository.SessionRepository = (*MemorySessionRepository)(nil)
