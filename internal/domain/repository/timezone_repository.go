package repository

import (
	"context"

	"flightcal-service/internal/domain/entity"
)

// TimezoneRepository defines the interface for airport timezone operations
type TimezoneRepository interface {
	GetByAirportCode(ctx context.Context, code string) (*entity.Timezone, error)
	ListAll(ctx context.Context) ([]entity.Timezone, error)
}
