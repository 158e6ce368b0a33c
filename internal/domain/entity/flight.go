package entity

// Flight is the canonical representation of one scheduled flight leg.
// ScheduledDeparture and ScheduledArrival are civil date+times in the
// compact "20060102 1504" layout. Before timezone reconciliation they
// are instants in the provider's UTC reference frame; afterwards the
// departure is local to OriginTimezone and the arrival is local to
// DestinationTimezone.
type Flight struct {
	FlightNumber           string `bson:"flightNumber"`
	AirlineName            string `bson:"airlineName"`
	OriginAirport          string `bson:"originAirport"`
	DestinationAirport     string `bson:"destinationAirport"`
	OriginAirportCode      string `bson:"originAirportCode"`
	DestinationAirportCode string `bson:"destinationAirportCode"`
	OriginTimezone         string `bson:"originTimezone"`
	DestinationTimezone    string `bson:"destinationTimezone"`
	ScheduledDeparture     string `bson:"scheduledDeparture"`
	ScheduledArrival       string `bson:"scheduledArrival"`
	NiceDeparture          string `bson:"niceDeparture"`
	NiceArrival            string `bson:"niceArrival"`
	IsGuess                bool   `bson:"isGuess"`
}
