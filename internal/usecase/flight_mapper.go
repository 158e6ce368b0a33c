package usecase

import (
	"context"
	"fmt"
	"strings"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/utils"
)

// mapRecord converts one raw provider record into canonical form. The
// departure and arrival stay in the provider's UTC reference frame
// until reconcileTimezones runs.
func (r *FlightResolver) mapRecord(ctx context.Context, raw *entity.RawFlight) entity.Flight {
	number := raw.Identification.Number.Default
	sched := raw.Time.Scheduled

	return entity.Flight{
		FlightNumber:           number,
		AirlineName:            r.resolveAirlineName(ctx, raw.Airline, number),
		OriginAirport:          raw.Airport.Origin.Name,
		DestinationAirport:     raw.Airport.Destination.Name,
		OriginAirportCode:      raw.Airport.Origin.Code.IATA,
		DestinationAirportCode: raw.Airport.Destination.Code.IATA,
		OriginTimezone:         raw.Airport.Origin.Timezone.Name,
		DestinationTimezone:    raw.Airport.Destination.Timezone.Name,
		ScheduledDeparture:     sched.DepartureDate + " " + sched.DepartureTime,
		ScheduledArrival:       sched.ArrivalDate + " " + sched.ArrivalTime,
	}
}

// resolveAirlineName picks the provider's airline name when present,
// otherwise falls back to the carrier-code table. The literal "None"
// is treated the same as a missing name.
func (r *FlightResolver) resolveAirlineName(ctx context.Context, airline *entity.RawAirline, flightNumber string) string {
	if airline != nil {
		name := strings.TrimSpace(airline.Name)
		if name != "" && !strings.EqualFold(name, "none") {
			return name
		}
	}

	code := utils.CarrierCode(flightNumber)
	if code == "" {
		return "Unknown Airline"
	}

	if a, err := r.airlineRepo.GetByCode(ctx, code); err == nil && a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("Airline (%s)", code)
}

// dedupeByDepartureTime keeps the first record seen for each distinct
// departure time-of-day, preserving provider order. Historical records
// sharing a time-of-day almost always represent the same recurring
// schedule on different dates.
func dedupeByDepartureTime(records []entity.RawFlight) []entity.RawFlight {
	seen := make(map[string]struct{}, len(records))
	unique := make([]entity.RawFlight, 0, len(records))
	for _, rec := range records {
		tod := rec.Time.Scheduled.DepartureTime
		if _, ok := seen[tod]; ok {
			continue
		}
		seen[tod] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}
