package usecase

import (
	"context"
	"errors"
	"testing"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/interface/repository"
	"flightcal-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	dated      []entity.RawFlight
	history    []entity.RawFlight
	datedErr   error
	historyErr error
}

func (f *fakeProvider) QueryByDate(_ context.Context, _, _ string) ([]entity.RawFlight, error) {
	return f.dated, f.datedErr
}

func (f *fakeProvider) QueryHistory(_ context.Context, _ string) ([]entity.RawFlight, error) {
	return f.history, f.historyErr
}

// sampleRaw builds a SIN -> SFO provider record with the given schedule
// (compact dates, HHMM times, provider UTC reference frame).
func sampleRaw(depDate, depTime, arrDate, arrTime string) entity.RawFlight {
	var r entity.RawFlight
	r.Identification.Number.Default = "SQ327"
	r.Time.Scheduled.DepartureDate = depDate
	r.Time.Scheduled.DepartureTime = depTime
	r.Time.Scheduled.ArrivalDate = arrDate
	r.Time.Scheduled.ArrivalTime = arrTime
	r.Airline = &entity.RawAirline{Name: "Singapore Airlines"}
	r.Airport.Origin.Name = "Singapore Changi Airport"
	r.Airport.Origin.Code.IATA = "SIN"
	r.Airport.Origin.Timezone.Name = "Asia/Singapore"
	r.Airport.Destination.Name = "San Francisco International Airport"
	r.Airport.Destination.Code.IATA = "SFO"
	r.Airport.Destination.Timezone.Name = "America/Los_Angeles"
	return r
}

func newTestResolver(provider *fakeProvider) *FlightResolver {
	return NewFlightResolver(provider, repository.NewStaticAirlineRepository(), logger.NewLogger(true), nil)
}

func TestResolveExactDate(t *testing.T) {
	provider := &fakeProvider{dated: []entity.RawFlight{sampleRaw("20241023", "1430", "20241024", "0615")}}
	resolver := newTestResolver(provider)

	flights, err := resolver.Resolve(context.Background(), "sq 327", "2024-10-23")
	require.NoError(t, err)
	require.Len(t, flights, 1)

	f := flights[0]
	assert.False(t, f.IsGuess)
	assert.Equal(t, "SQ327", f.FlightNumber)
	assert.Equal(t, "Singapore Airlines", f.AirlineName)
	assert.Equal(t, "SIN", f.OriginAirportCode)
	assert.Equal(t, "SFO", f.DestinationAirportCode)
	// 14:30 UTC reference is 22:30 local in Singapore.
	assert.Equal(t, "20241023 2230", f.ScheduledDeparture)
	assert.Equal(t, "2024-10-23 22:30", f.NiceDeparture)
}

func TestResolveFallbackToHistory(t *testing.T) {
	provider := &fakeProvider{history: []entity.RawFlight{sampleRaw("20241020", "1430", "20241021", "0615")}}
	resolver := newTestResolver(provider)

	flights, err := resolver.Resolve(context.Background(), "SQ327", "2024-10-23")
	require.NoError(t, err)
	require.Len(t, flights, 1)

	f := flights[0]
	assert.True(t, f.IsGuess)
	// Shifted by +3 days, then localized: 2024-10-23 14:30 UTC -> 22:30 SIN
	assert.Equal(t, "20241023 2230", f.ScheduledDeparture)
}

func TestResolveNotFound(t *testing.T) {
	resolver := newTestResolver(&fakeProvider{})

	_, err := resolver.Resolve(context.Background(), "SQ327", "2024-10-23")
	require.Error(t, err)

	var notFound *entity.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no flight information found for flight number SQ327", err.Error())
}

func TestResolveInvalidDate(t *testing.T) {
	resolver := newTestResolver(&fakeProvider{})

	_, err := resolver.Resolve(context.Background(), "SQ327", "invalid-date")
	var invalid *entity.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestResolvePropagatesProviderError(t *testing.T) {
	provider := &fakeProvider{datedErr: &entity.ProviderError{Op: "query_by_date", Err: errors.New("boom")}}
	resolver := newTestResolver(provider)

	_, err := resolver.Resolve(context.Background(), "SQ327", "2024-10-23")
	var provErr *entity.ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestResolveDedupesHistory(t *testing.T) {
	provider := &fakeProvider{history: []entity.RawFlight{
		sampleRaw("20241018", "1430", "20241019", "0615"),
		sampleRaw("20241019", "1430", "20241020", "0615"),
		sampleRaw("20241020", "1630", "20241021", "0815"),
	}}
	resolver := newTestResolver(provider)

	flights, err := resolver.Resolve(context.Background(), "SQ327", "2024-10-23")
	require.NoError(t, err)
	require.Len(t, flights, 2)
	// First occurrence per departure time-of-day wins, in input order.
	assert.Equal(t, "20241023 2230", flights[0].ScheduledDeparture)
	assert.Equal(t, "20241024 0030", flights[1].ScheduledDeparture)
}

func TestDedupeByDepartureTime(t *testing.T) {
	same := []entity.RawFlight{
		sampleRaw("20241018", "1430", "20241019", "0615"),
		sampleRaw("20241020", "1430", "20241021", "0615"),
	}
	assert.Len(t, dedupeByDepartureTime(same), 1)

	distinct := []entity.RawFlight{
		sampleRaw("20241018", "1430", "20241019", "0615"),
		sampleRaw("20241018", "1630", "20241019", "0815"),
	}
	out := dedupeByDepartureTime(distinct)
	require.Len(t, out, 2)
	assert.Equal(t, "1430", out[0].Time.Scheduled.DepartureTime)
	assert.Equal(t, "1630", out[1].Time.Scheduled.DepartureTime)
}

func TestShiftToDateSameDay(t *testing.T) {
	flight := entity.Flight{
		ScheduledDeparture: "20241023 1430",
		ScheduledArrival:   "20241023 1645",
	}
	require.NoError(t, shiftToDate(&flight, "20241023"))
	assert.Equal(t, "20241023 1430", flight.ScheduledDeparture)
	assert.Equal(t, "20241023 1645", flight.ScheduledArrival)
}

func TestShiftToDateCrossDay(t *testing.T) {
	flight := entity.Flight{
		ScheduledDeparture: "20241023 1430",
		ScheduledArrival:   "20241024 0615",
	}
	require.NoError(t, shiftToDate(&flight, "20241025"))
	assert.Equal(t, "20241025 1430", flight.ScheduledDeparture)
	assert.Equal(t, "20241026 0615", flight.ScheduledArrival)
}

func TestShiftToDateBackwards(t *testing.T) {
	flight := entity.Flight{
		ScheduledDeparture: "20241023 1430",
		ScheduledArrival:   "20241024 0615",
	}
	require.NoError(t, shiftToDate(&flight, "20241020"))
	assert.Equal(t, "20241020 1430", flight.ScheduledDeparture)
	assert.Equal(t, "20241021 0615", flight.ScheduledArrival)
}

func TestReconcileTimezones(t *testing.T) {
	flight := entity.Flight{
		OriginTimezone:      "Asia/Singapore",
		DestinationTimezone: "America/Los_Angeles",
		ScheduledDeparture:  "20241023 1430",
		ScheduledArrival:    "20241024 0615",
	}
	require.NoError(t, reconcileTimezones(&flight))
	// 14:30 UTC -> 22:30 SGT (+8); 06:15 UTC -> 23:15 PDT (-7) previous day.
	assert.Equal(t, "20241023 2230", flight.ScheduledDeparture)
	assert.Equal(t, "20241023 2315", flight.ScheduledArrival)
}

func TestReconcileTimezonesUTCIsIdentity(t *testing.T) {
	flight := entity.Flight{
		OriginTimezone:      "UTC",
		DestinationTimezone: "UTC",
		ScheduledDeparture:  "20241023 1430",
		ScheduledArrival:    "20241023 1645",
	}
	require.NoError(t, reconcileTimezones(&flight))
	assert.Equal(t, "20241023 1430", flight.ScheduledDeparture)
	assert.Equal(t, "20241023 1645", flight.ScheduledArrival)
}

func TestReconcileTimezonesUnknownZone(t *testing.T) {
	flight := entity.Flight{
		OriginTimezone:      "Not/AZone",
		DestinationTimezone: "UTC",
		ScheduledDeparture:  "20241023 1430",
		ScheduledArrival:    "20241023 1645",
	}
	assert.Error(t, reconcileTimezones(&flight))
}

func TestResolveAirlineNameFallbacks(t *testing.T) {
	resolver := newTestResolver(&fakeProvider{})
	ctx := context.Background()

	// Provider name wins when present.
	assert.Equal(t, "Singapore Airlines",
		resolver.resolveAirlineName(ctx, &entity.RawAirline{Name: "Singapore Airlines"}, "SQ327"))

	// Missing block and placeholder "None" both fall back to the table.
	assert.Equal(t, "British Airways", resolver.resolveAirlineName(ctx, nil, "BA929"))
	assert.Equal(t, "British Airways",
		resolver.resolveAirlineName(ctx, &entity.RawAirline{Name: "None"}, "BA929"))

	// Unknown carrier code and codeless numbers.
	assert.Equal(t, "Airline (ZZ)", resolver.resolveAirlineName(ctx, nil, "ZZ123"))
	assert.Equal(t, "Unknown Airline", resolver.resolveAirlineName(ctx, nil, "327"))
}
