package entity

// RawFlight mirrors the flight-data provider's record shape. Only the
// fields the mapper consumes are declared.
type RawFlight struct {
	Identification struct {
		Number struct {
			Default string `json:"default"`
		} `json:"number"`
	} `json:"identification"`
	Time struct {
		Scheduled struct {
			DepartureDate string `json:"departure_date"`
			DepartureTime string `json:"departure_time"`
			ArrivalDate   string `json:"arrival_date"`
			ArrivalTime   string `json:"arrival_time"`
		} `json:"scheduled"`
	} `json:"time"`
	Airline *RawAirline `json:"airline"`
	Airport struct {
		Origin      RawAirport `json:"origin"`
		Destination RawAirport `json:"destination"`
	} `json:"airport"`
}

// RawAirline holds the provider's airline block, which may be missing
// entirely or carry a placeholder name.
type RawAirline struct {
	Name string `json:"name"`
}

// RawAirport holds one endpoint of a raw flight record.
type RawAirport struct {
	Name string `json:"name"`
	Code struct {
		IATA string `json:"iata"`
	} `json:"code"`
	Timezone struct {
		Name string `json:"name"`
	} `json:"timezone"`
}
