package repository

import (
	"context"
	"testing"
	"time"

	"flightcal-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRoundTrip(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)
	ctx := context.Background()

	set := &entity.CandidateSet{
		Token:   "tok-1",
		Flights: []entity.Flight{{FlightNumber: "SQ327"}},
	}
	require.NoError(t, repo.Save(ctx, set))

	got, err := repo.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.Len(t, got.Flights, 1)
	assert.Equal(t, "SQ327", got.Flights[0].FlightNumber)
}

func TestMemorySessionUnknownToken(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionExpiry(t *testing.T) {
	repo := NewMemorySessionRepository(-time.Second)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.CandidateSet{Token: "tok-1"}))

	_, err := repo.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionDelete(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.CandidateSet{Token: "tok-1"}))
	require.NoError(t, repo.Delete(ctx, "tok-1"))

	_, err := repo.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionSweep(t *testing.T) {
	repo := NewMemorySessionRepository(-time.Second)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &entity.CandidateSet{Token: "tok-1"}))
	repo.sweep()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Empty(t, repo.sets)
}
