package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManualInput() ManualFlightInput {
	return ManualFlightInput{
		FlightNumber:           "SQ327",
		AirlineName:            "Singapore Airlines",
		OriginAirport:          "Singapore Changi Airport",
		OriginAirportCode:      "SIN",
		DestinationAirport:     "San Francisco International Airport",
		DestinationAirportCode: "SFO",
		ScheduledDeparture:     "2024-10-23T14:30",
		ScheduledArrival:       "2024-10-23T16:45",
		OriginTimezone:         "Asia/Singapore",
		DestinationTimezone:    "America/Los_Angeles",
	}
}

func TestManualValidateNormalizesDatetimes(t *testing.T) {
	input := validManualInput()
	require.NoError(t, input.Validate())
	assert.Equal(t, "2024-10-23 14:30", input.ScheduledDeparture)
	assert.Equal(t, "2024-10-23 16:45", input.ScheduledArrival)
}

func TestManualValidateAcceptsSpaceSeparator(t *testing.T) {
	input := validManualInput()
	input.ScheduledDeparture = "2024-10-23 14:30"
	require.NoError(t, input.Validate())
}

func TestManualValidateRejectsLowercaseAirportCode(t *testing.T) {
	input := validManualInput()
	input.OriginAirportCode = "sin"

	err := input.Validate()
	require.Error(t, err)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "origin_airport_code", invalid.Field)
}

func TestManualValidateRejectsMissingField(t *testing.T) {
	input := validManualInput()
	input.AirlineName = ""

	err := input.Validate()
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "airline_name", invalid.Field)
}

func TestManualValidateRejectsBadDatetime(t *testing.T) {
	input := validManualInput()
	input.ScheduledArrival = "23/10/2024 16:45"

	err := input.Validate()
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "scheduled_arrival", invalid.Field)
}

func TestManualToFlight(t *testing.T) {
	input := validManualInput()
	require.NoError(t, input.Validate())

	flight := input.ToFlight()
	assert.Equal(t, "SQ327", flight.FlightNumber)
	assert.Equal(t, "20241023 1430", flight.ScheduledDeparture)
	assert.Equal(t, "20241023 1645", flight.ScheduledArrival)
	assert.Equal(t, "2024-10-23 14:30", flight.NiceDeparture)
	assert.False(t, flight.IsGuess)
}
