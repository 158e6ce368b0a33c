package repository

import (
	"context"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"

	"gorm.io/gorm"
)

// carrierNames maps common IATA carrier codes to airline names. Used
// when no airline table is configured, and as the last resort when the
// provider omits the airline block.
var carrierNames = map[string]string{
	"BA": "British Airways",
	"AA": "American Airlines",
	"UA": "United Airlines",
	"LH": "Lufthansa",
	"AF": "Air France",
	"KL": "KLM",
	"IB": "Iberia",
	"AS": "Alaska Airlines",
	"DL": "Delta Air Lines",
	"SW": "Southwest Airlines",
	"EK": "Emirates",
	"QF": "Qantas",
	"SQ": "Singapore Airlines",
	"NH": "All Nippon Airways",
	"CX": "Cathay Pacific",
	"AC": "Air Canada",
	"OS": "Austrian Airlines",
	"AZ": "Alitalia",
	"BE": "Brussels Airlines",
	"CA": "Air China",
	"CI": "China Airlines",
	"CM": "China Eastern Airlines",
	"CZ": "China Southern Airlines",
	"EY": "Etihad Airways",
	"FI": "Icelandair",
	"GA": "Garuda Indonesia",
	"G3": "GOL",
	"HA": "Hawaiian Airlines",
	"JL": "Japan Airlines",
	"LA": "LATAM Airlines",
	"LX": "Swiss International Air Lines",
	"MH": "Malaysia Airlines",
	"NZ": "Air New Zealand",
	"PR": "Philippine Airlines",
	"QR": "Qatar Airways",
	"RJ": "Royal Jordanian",
	"SK": "SAS",
	"SN": "Brussels Airlines",
	"TG": "Thai Airways",
	"TK": "Turkish Airlines",
	"TP": "TAP Air Portugal",
	"VN": "Vietnam Airlines",
	"VX": "Virgin America",
	"WN": "Southwest Airlines",
}

// StaticAirlineRepository serves the built-in carrier-code table.
type StaticAirlineRepository struct{}

// NewStaticAirlineRepository creates an airline repository backed by
// the built-in table.
func NewStaticAirlineRepository() repository.AirlineRepository {
	return &StaticAirlineRepository{}
}

// GetByCode finds an airline by carrier code. Unknown codes report
// gorm.ErrRecordNotFound so callers treat both implementations alike.
func (r *StaticAirlineRepository) GetByCode(_ context.Context, code string) (*entity.Airline, error) {
	name, ok := carrierNames[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &entity.Airline{Code: code, Name: name}, nil
}
