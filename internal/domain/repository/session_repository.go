package repository

import (
	"context"

	"flightcal-service/internal/domain/entity"
)

// SessionRepository stores candidate sets between the resolve step and
// the user's selection. Entries expire; a missing or expired token is
// reported as an error by Get.
type SessionRepository interface {
	Save(ctx context.Context, set *entity.CandidateSet) error
	Get(ctx context.Context, token string) (*entity.CandidateSet, error)
	Delete(ctx context.Context, token string) error
}
