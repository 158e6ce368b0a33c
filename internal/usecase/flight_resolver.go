package usecase

import (
	"context"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/metrics"
	"flightcal-service/pkg/utils"
)

// FlightResolver turns a flight number and date into one or more
// canonical flight records, falling back to date-shifted historical
// records when no exact-date record exists.
type FlightResolver struct {
	provider    repository.FlightProviderRepository
	airlineRepo repository.AirlineRepository
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewFlightResolver creates a new flight resolver. metrics may be nil.
func NewFlightResolver(
	provider repository.FlightProviderRepository,
	airlineRepo repository.AirlineRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *FlightResolver {
	return &FlightResolver{
		provider:    provider,
		airlineRepo: airlineRepo,
		logger:      logger,
		metrics:     metrics,
	}
}

// Resolve normalizes the inputs, queries the provider for the exact
// date and, when that is empty, projects deduplicated historical
// records onto the requested date. The result is never empty on
// success; both queries empty is *entity.NotFoundError.
func (r *FlightResolver) Resolve(ctx context.Context, flightNumber, date string) ([]entity.Flight, error) {
	number := utils.NormalizeFlightNumber(flightNumber)
	day, err := utils.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	if r.metrics != nil {
		r.metrics.FlightLookups.Inc()
	}
	r.logger.Info("Resolving flight", "flightNumber", number, "date", day)

	dated, err := r.queryProvider(func() ([]entity.RawFlight, error) {
		return r.provider.QueryByDate(ctx, number, day)
	})
	if err != nil {
		return nil, err
	}

	if len(dated) > 0 {
		r.logger.Info("Exact-date records found", "flightNumber", number, "count", len(dated))
		return r.buildFlights(ctx, dated, false, "")
	}

	history, err := r.queryProvider(func() ([]entity.RawFlight, error) {
		return r.provider.QueryHistory(ctx, number)
	})
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		r.logger.Warn("No records for flight", "flightNumber", number)
		return nil, &entity.NotFoundError{FlightNumber: number}
	}

	unique := dedupeByDepartureTime(history)
	r.logger.Info("Falling back to historical records",
		"flightNumber", number, "historyCount", len(history), "uniqueCount", len(unique))

	if r.metrics != nil {
		r.metrics.GuessedRecords.Add(float64(len(unique)))
	}
	return r.buildFlights(ctx, unique, true, day)
}

func (r *FlightResolver) queryProvider(query func() ([]entity.RawFlight, error)) ([]entity.RawFlight, error) {
	start := time.Now()
	records, err := query()
	if r.metrics != nil {
		r.metrics.ProviderLatency.Observe(time.Since(start).Seconds())
	}
	return records, err
}

// buildFlights maps raw records to canonical form, projecting guessed
// records onto targetDate before per-endpoint timezone reconciliation.
func (r *FlightResolver) buildFlights(ctx context.Context, raws []entity.RawFlight, guess bool, targetDate string) ([]entity.Flight, error) {
	flights := make([]entity.Flight, 0, len(raws))
	for i := range raws {
		flight := r.mapRecord(ctx, &raws[i])
		flight.IsGuess = guess

		if guess {
			if err := shiftToDate(&flight, targetDate); err != nil {
				return nil, &entity.ProviderError{Op: "shift record date", Err: err}
			}
		}
		if err := reconcileTimezones(&flight); err != nil {
			return nil, &entity.ProviderError{Op: "reconcile timezones", Err: err}
		}
		attachDisplayFields(&flight)
		flights = append(flights, flight)
	}
	return flights, nil
}

// shiftToDate projects a record onto the requested departure date. A
// non-zero day delta shifts both endpoints additively, which carries
// overnight day offsets along; a zero delta is the identity.
func shiftToDate(flight *entity.Flight, targetDate string) error {
	dep, err := time.Parse(utils.LayoutCompact, flight.ScheduledDeparture)
	if err != nil {
		return err
	}
	arr, err := time.Parse(utils.LayoutCompact, flight.ScheduledArrival)
	if err != nil {
		return err
	}
	target, err := time.Parse(utils.LayoutDate, targetDate)
	if err != nil {
		return err
	}

	depDate := time.Date(dep.Year(), dep.Month(), dep.Day(), 0, 0, 0, 0, time.UTC)
	dayDelta := int(target.Sub(depDate).Hours() / 24)
	if dayDelta == 0 {
		return nil
	}

	flight.ScheduledDeparture = dep.AddDate(0, 0, dayDelta).Format(utils.LayoutCompact)
	flight.ScheduledArrival = arr.AddDate(0, 0, dayDelta).Format(utils.LayoutCompact)
	return nil
}

// reconcileTimezones treats the stored departure/arrival as instants
// in the provider's UTC reference frame and rewrites them as civil
// times local to the origin and destination zones respectively.
func reconcileTimezones(flight *entity.Flight) error {
	originLoc, err := time.LoadLocation(flight.OriginTimezone)
	if err != nil {
		return err
	}
	destLoc, err := time.LoadLocation(flight.DestinationTimezone)
	if err != nil {
		return err
	}

	dep, err := time.ParseInLocation(utils.LayoutCompact, flight.ScheduledDeparture, time.UTC)
	if err != nil {
		return err
	}
	arr, err := time.ParseInLocation(utils.LayoutCompact, flight.ScheduledArrival, time.UTC)
	if err != nil {
		return err
	}

	flight.ScheduledDeparture = dep.In(originLoc).Format(utils.LayoutCompact)
	flight.ScheduledArrival = arr.In(destLoc).Format(utils.LayoutCompact)
	return nil
}

func attachDisplayFields(flight *entity.Flight) {
	if dep, err := time.Parse(utils.LayoutCompact, flight.ScheduledDeparture); err == nil {
		flight.NiceDeparture = dep.Format(utils.LayoutNice)
	}
	if arr, err := time.Parse(utils.LayoutCompact, flight.ScheduledArrival); err == nil {
		flight.NiceArrival = arr.Format(utils.LayoutNice)
	}
}
