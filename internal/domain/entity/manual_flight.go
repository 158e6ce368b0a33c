package entity

import (
	"regexp"
	"strings"
	"time"
)

var airportCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// ManualFlightInput carries a flight entered directly through the manual
// form. Datetimes are accepted in datetime-local form (2006-01-02T15:04)
// or with a space separator, and are normalized to the latter.
type ManualFlightInput struct {
	FlightNumber           string
	AirlineName            string
	OriginAirport          string
	OriginAirportCode      string
	DestinationAirport     string
	DestinationAirportCode string
	ScheduledDeparture     string
	ScheduledArrival       string
	OriginTimezone         string
	DestinationTimezone    string
}

// Validate checks required fields, airport code shape and datetime
// formats, normalizing the datetime fields in place. All failures are
// reported as *InvalidInputError.
func (m *ManualFlightInput) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"flight_number", m.FlightNumber},
		{"airline_name", m.AirlineName},
		{"origin_airport", m.OriginAirport},
		{"origin_airport_code", m.OriginAirportCode},
		{"destination_airport", m.DestinationAirport},
		{"destination_airport_code", m.DestinationAirportCode},
		{"scheduled_departure", m.ScheduledDeparture},
		{"scheduled_arrival", m.ScheduledArrival},
		{"origin_timezone", m.OriginTimezone},
		{"destination_timezone", m.DestinationTimezone},
	}
	for _, f := range required {
		if f.value == "" {
			return &InvalidInputError{Field: f.name, Reason: "missing required field"}
		}
	}

	if !airportCodeRe.MatchString(m.OriginAirportCode) {
		return &InvalidInputError{Field: "origin_airport_code", Reason: "must be 3 uppercase letters"}
	}
	if !airportCodeRe.MatchString(m.DestinationAirportCode) {
		return &InvalidInputError{Field: "destination_airport_code", Reason: "must be 3 uppercase letters"}
	}

	dep, err := normalizeManualDateTime(m.ScheduledDeparture)
	if err != nil {
		return &InvalidInputError{Field: "scheduled_departure", Reason: "invalid datetime format, use yyyy-mm-dd hh:mm"}
	}
	arr, err := normalizeManualDateTime(m.ScheduledArrival)
	if err != nil {
		return &InvalidInputError{Field: "scheduled_arrival", Reason: "invalid datetime format, use yyyy-mm-dd hh:mm"}
	}
	m.ScheduledDeparture = dep
	m.ScheduledArrival = arr

	return nil
}

func normalizeManualDateTime(value string) (string, error) {
	normalized := strings.Replace(value, "T", " ", 1)
	if _, err := time.Parse("2006-01-02 15:04", normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// ToFlight converts validated manual input into a canonical flight.
// Times are already local to their respective zones, so no timezone
// reconciliation applies.
func (m *ManualFlightInput) ToFlight() Flight {
	return Flight{
		FlightNumber:           m.FlightNumber,
		AirlineName:            m.AirlineName,
		OriginAirport:          m.OriginAirport,
		DestinationAirport:     m.DestinationAirport,
		OriginAirportCode:      m.OriginAirportCode,
		DestinationAirportCode: m.DestinationAirportCode,
		OriginTimezone:         m.OriginTimezone,
		DestinationTimezone:    m.DestinationTimezone,
		ScheduledDeparture:     toCompact(m.ScheduledDeparture),
		ScheduledArrival:       toCompact(m.ScheduledArrival),
		NiceDeparture:          m.ScheduledDeparture,
		NiceArrival:            m.ScheduledArrival,
	}
}

func toCompact(value string) string {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		return value
	}
	return t.Format("20060102 1504")
}
