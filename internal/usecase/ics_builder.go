package usecase

import (
	"fmt"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/utils"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	icsProductID = "-//flightcal//2.0/EN"

	// Local civil time value for DTSTART/DTEND carrying a TZID param.
	icsLocalLayout = "20060102T150405"
)

// ICSBuilder serializes canonical flight records into single-event
// iCalendar documents.
type ICSBuilder struct {
	logger logger.Logger
	now    func() time.Time
}

// NewICSBuilder creates a new calendar event builder
func NewICSBuilder(log logger.Logger) *ICSBuilder {
	return &ICSBuilder{
		logger: log,
		now:    time.Now,
	}
}

// BuildICS produces the calendar file bytes for one flight. The start
// instant is the departure civil time in the origin zone and the end
// instant the arrival civil time in the destination zone.
func (b *ICSBuilder) BuildICS(flight *entity.Flight) ([]byte, error) {
	if _, err := time.LoadLocation(flight.OriginTimezone); err != nil {
		return nil, &entity.InvalidInputError{Field: "origin_timezone", Reason: "unknown timezone " + flight.OriginTimezone}
	}
	if _, err := time.LoadLocation(flight.DestinationTimezone); err != nil {
		return nil, &entity.InvalidInputError{Field: "destination_timezone", Reason: "unknown timezone " + flight.DestinationTimezone}
	}

	dep, err := time.Parse(utils.LayoutCompact, flight.ScheduledDeparture)
	if err != nil {
		return nil, &entity.InvalidInputError{Field: "scheduled_departure", Reason: "unparseable departure time"}
	}
	arr, err := time.Parse(utils.LayoutCompact, flight.ScheduledArrival)
	if err != nil {
		return nil, &entity.InvalidInputError{Field: "scheduled_arrival", Reason: "unparseable arrival time"}
	}

	cal := ics.NewCalendar()
	cal.SetProductId(icsProductID)
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodRequest)

	event := cal.AddEvent(fmt.Sprintf("%s-%s@flightcal", flight.FlightNumber, uuid.NewString()))
	event.SetSummary(fmt.Sprintf("\U0001F6EB %s %s ➡️ %s %s",
		flight.AirlineName, flight.OriginAirportCode, flight.DestinationAirportCode, flight.FlightNumber))
	event.SetProperty(ics.ComponentPropertyDtStart, dep.Format(icsLocalLayout),
		&ics.KeyValues{Key: "TZID", Value: []string{flight.OriginTimezone}})
	event.SetProperty(ics.ComponentPropertyDtEnd, arr.Format(icsLocalLayout),
		&ics.KeyValues{Key: "TZID", Value: []string{flight.DestinationTimezone}})
	event.SetLocation(flight.OriginAirport)
	event.SetDescription(fmt.Sprintf("%s flight %s / Departs %s, %s",
		flight.AirlineName, flight.FlightNumber, flight.OriginAirport, flight.OriginAirportCode))
	event.SetDtStampTime(b.now().UTC())
	event.SetStatus(ics.ObjectStatusConfirmed)

	b.logger.Info("Calendar event built",
		"flightNumber", flight.FlightNumber,
		"origin", flight.OriginAirportCode,
		"destination", flight.DestinationAirportCode)

	return []byte(cal.Serialize()), nil
}

// BuildManualICS validates manually entered flight data and produces
// the calendar file bytes.
func (b *ICSBuilder) BuildManualICS(input *entity.ManualFlightInput) ([]byte, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	flight := input.ToFlight()
	return b.BuildICS(&flight)
}

// ICSFilename is the download name for a flight's calendar file.
func ICSFilename(flightNumber string) string {
	return flightNumber + ".ics"
}
