package utils

import (
	"regexp"
	"strings"
	"time"

	"flightcal-service/internal/domain/entity"
)

// Time layouts shared across the resolution pipeline.
const (
	LayoutDate      = "20060102"
	LayoutInputDate = "2006-01-02"
	LayoutCompact   = "20060102 1504"
	LayoutNice      = "2006-01-02 15:04"
)

var (
	nonAlnumRe     = regexp.MustCompile(`[^A-Za-z0-9]`)
	flightNumberRe = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)
	carrierCodeRe  = regexp.MustCompile(`^([A-Z]+)`)
)

// NormalizeFlightNumber canonicalizes a user-supplied flight number:
// non-alphanumerics are stripped, the rest uppercased, and leading
// zeros removed from the digit run ("SQ0327" -> "SQ327"). A digit run
// of all zeros keeps a single zero. Input that does not split into a
// letter run followed by a digit run is passed through uppercased.
func NormalizeFlightNumber(input string) string {
	cleaned := strings.ToUpper(nonAlnumRe.ReplaceAllString(input, ""))

	m := flightNumberRe.FindStringSubmatch(cleaned)
	if m == nil {
		return strings.ToUpper(input)
	}

	letters, digits := m[1], m[2]
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return letters + digits
}

// CarrierCode extracts the leading letter prefix of a flight number,
// or "" when the number has no letter prefix.
func CarrierCode(flightNumber string) string {
	m := carrierCodeRe.FindStringSubmatch(flightNumber)
	if m == nil {
		return ""
	}
	return m[1]
}

// NormalizeDate parses a YYYY-MM-DD calendar date into the provider's
// compact YYYYMMDD form.
func NormalizeDate(input string) (string, error) {
	t, err := time.Parse(LayoutInputDate, input)
	if err != nil {
		return "", &entity.InvalidInputError{Field: "flight_date", Reason: "invalid date, use yyyy-mm-dd"}
	}
	return t.Format(LayoutDate), nil
}
