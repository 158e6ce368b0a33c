package repository

import (
	"context"

	"flightcal-service/internal/domain/entity"
)

// FlightProviderRepository defines the interface to the external
// flight-data source. Both queries may legitimately return an empty
// sequence; call failures are reported as *entity.ProviderError.
type FlightProviderRepository interface {
	// QueryByDate returns raw records for a flight number on an exact
	// date (compact YYYYMMDD form), in provider order.
	QueryByDate(ctx context.Context, flightNumber, date string) ([]entity.RawFlight, error)
	// QueryHistory returns the flight's historical records with no date
	// filter, in provider order.
	QueryHistory(ctx context.Context, flightNumber string) ([]entity.RawFlight, error)
}
