package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
	"flightcal-service/internal/usecase"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/metrics"
	"flightcal-service/pkg/utils"

	"github.com/google/uuid"
)

const sessionCookie = "flightcal_session"

// FlightResolver resolves a flight number and date into candidates.
type FlightResolver interface {
	Resolve(ctx context.Context, flightNumber, date string) ([]entity.Flight, error)
}

// EventBuilder serializes flights into calendar file bytes.
type EventBuilder interface {
	BuildICS(flight *entity.Flight) ([]byte, error)
	BuildManualICS(input *entity.ManualFlightInput) ([]byte, error)
}

// Handler serves the flight-to-calendar web form.
type Handler struct {
	resolver  FlightResolver
	builder   EventBuilder
	sessions  repository.SessionRepository
	tzRepo    repository.TimezoneRepository // optional, may be nil
	templates *template.Template
	logger    logger.Logger
	metrics   *metrics.Metrics
}

// NewHandler creates a new web handler. tzRepo and metrics may be nil.
func NewHandler(
	resolver FlightResolver,
	builder EventBuilder,
	sessions repository.SessionRepository,
	tzRepo repository.TimezoneRepository,
	log logger.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		resolver:  resolver,
		builder:   builder,
		sessions:  sessions,
		tzRepo:    tzRepo,
		templates: mustParseTemplates(),
		logger:    log,
		metrics:   m,
	}
}

// Register attaches the form routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /create_event", h.CreateEvent)
	mux.HandleFunc("POST /create_event/{index}", h.CreateEventFromSelected)
	mux.HandleFunc("GET /manual_entry", h.ManualEntry)
	mux.HandleFunc("POST /create_manual_event", h.CreateManualEvent)
}

// Index renders the search form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, "")
}

// CreateEvent resolves the requested flight and renders the candidate
// selection page, storing the candidate set under a session token.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	flightNumber := r.FormValue("flight_number")
	flightDate := r.FormValue("flight_date")

	flights, err := h.resolver.Resolve(r.Context(), flightNumber, flightDate)
	if err != nil {
		h.countError("resolve")
		h.renderIndex(w, h.userMessage(err))
		return
	}

	set := &entity.CandidateSet{
		Token:   uuid.NewString(),
		Flights: flights,
	}
	if err := h.sessions.Save(r.Context(), set); err != nil {
		h.logger.Error("Failed to save candidate set", "error", err)
		h.countError("session_save")
		h.renderIndex(w, "something went wrong, please try again")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    set.Token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(30 * time.Minute),
	})
	h.render(w, "select", map[string]interface{}{"Flights": flights})
}

// CreateEventFromSelected applies any user edits to the chosen
// candidate and streams the calendar file.
func (h *Handler) CreateEventFromSelected(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		http.Error(w, "No flight data found", http.StatusBadRequest)
		return
	}

	set, err := h.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		h.logger.Warn("Candidate set lookup failed", "error", err)
		http.Error(w, "No flight data found", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= len(set.Flights) {
		http.Error(w, "Invalid flight selection", http.StatusBadRequest)
		return
	}

	flight := set.Flights[index]
	if err := applyOverrides(&flight, r); err != nil {
		h.countError("overrides")
		h.renderIndex(w, h.userMessage(err))
		return
	}

	data, err := h.builder.BuildICS(&flight)
	if err != nil {
		h.countError("build_ics")
		h.renderIndex(w, h.userMessage(err))
		return
	}
	if h.metrics != nil {
		h.metrics.ICSGenerated.Inc()
	}
	if err := h.sessions.Delete(r.Context(), set.Token); err != nil {
		h.logger.Warn("Candidate set cleanup failed", "token", set.Token, "error", err)
	}
	h.sendICS(w, flight.FlightNumber, data)
}

// ManualEntry renders the manual form with the timezone dropdown.
func (h *Handler) ManualEntry(w http.ResponseWriter, r *http.Request) {
	h.renderManual(r.Context(), w, "")
}

// CreateManualEvent validates manual input and streams the calendar file.
func (h *Handler) CreateManualEvent(w http.ResponseWriter, r *http.Request) {
	input := &entity.ManualFlightInput{
		FlightNumber:           r.FormValue("flight_number"),
		AirlineName:            r.FormValue("airline_name"),
		OriginAirport:          r.FormValue("origin_airport"),
		OriginAirportCode:      r.FormValue("origin_airport_code"),
		DestinationAirport:     r.FormValue("destination_airport"),
		DestinationAirportCode: r.FormValue("destination_airport_code"),
		ScheduledDeparture:     r.FormValue("scheduled_departure"),
		ScheduledArrival:       r.FormValue("scheduled_arrival"),
		OriginTimezone:         r.FormValue("origin_timezone"),
		DestinationTimezone:    r.FormValue("destination_timezone"),
	}
	h.fillTimezones(r.Context(), input)

	data, err := h.builder.BuildManualICS(input)
	if err != nil {
		h.countError("manual_entry")
		h.renderManual(r.Context(), w, h.userMessage(err))
		return
	}
	if h.metrics != nil {
		h.metrics.ICSGenerated.Inc()
	}
	h.sendICS(w, input.FlightNumber, data)
}

// fillTimezones fills blank timezone fields from the airport timezone
// table when one is configured.
func (h *Handler) fillTimezones(ctx context.Context, input *entity.ManualFlightInput) {
	if h.tzRepo == nil {
		return
	}
	if input.OriginTimezone == "" && input.OriginAirportCode != "" {
		if tz, err := h.tzRepo.GetByAirportCode(ctx, input.OriginAirportCode); err == nil {
			input.OriginTimezone = tz.TzName
		}
	}
	if input.DestinationTimezone == "" && input.DestinationAirportCode != "" {
		if tz, err := h.tzRepo.GetByAirportCode(ctx, input.DestinationAirportCode); err == nil {
			input.DestinationTimezone = tz.TzName
		}
	}
}

// applyOverrides copies non-empty form fields over the stored
// candidate. Datetime overrides arrive in the display layout.
func applyOverrides(flight *entity.Flight, r *http.Request) error {
	setIf := func(dst *string, field string) {
		if v := r.FormValue(field); v != "" {
			*dst = v
		}
	}
	setIf(&flight.FlightNumber, "flight_number")
	setIf(&flight.AirlineName, "airline_name")
	setIf(&flight.OriginAirport, "origin_airport")
	setIf(&flight.OriginAirportCode, "origin_airport_code")
	setIf(&flight.DestinationAirport, "destination_airport")
	setIf(&flight.DestinationAirportCode, "destination_airport_code")
	setIf(&flight.OriginTimezone, "origin_timezone")
	setIf(&flight.DestinationTimezone, "destination_timezone")

	if v := r.FormValue("scheduled_departure"); v != "" {
		t, err := time.Parse(utils.LayoutNice, v)
		if err != nil {
			return &entity.InvalidInputError{Field: "scheduled_departure", Reason: "invalid datetime format, use yyyy-mm-dd hh:mm"}
		}
		flight.ScheduledDeparture = t.Format(utils.LayoutCompact)
		flight.NiceDeparture = v
	}
	if v := r.FormValue("scheduled_arrival"); v != "" {
		t, err := time.Parse(utils.LayoutNice, v)
		if err != nil {
			return &entity.InvalidInputError{Field: "scheduled_arrival", Reason: "invalid datetime format, use yyyy-mm-dd hh:mm"}
		}
		flight.ScheduledArrival = t.Format(utils.LayoutCompact)
		flight.NiceArrival = v
	}
	return nil
}

func (h *Handler) sendICS(w http.ResponseWriter, flightNumber string, data []byte) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", usecase.ICSFilename(flightNumber)))
	w.Write(data)
}

func (h *Handler) countError(operation string) {
	if h.metrics != nil {
		h.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// userMessage maps pipeline errors onto form messages. Unexpected
// errors are logged and reported generically.
func (h *Handler) userMessage(err error) string {
	var invalid *entity.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.Error()
	}
	var notFound *entity.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}
	var provider *entity.ProviderError
	if errors.As(err, &provider) {
		h.logger.Error("Provider failure", "error", provider)
		return "flight lookup failed, please try again later"
	}
	h.logger.Error("Unexpected failure", "error", err)
	return "something went wrong, please try again"
}

func (h *Handler) renderIndex(w http.ResponseWriter, errMsg string) {
	h.render(w, "index", map[string]interface{}{"Error": errMsg})
}

func (h *Handler) renderManual(ctx context.Context, w http.ResponseWriter, errMsg string) {
	h.render(w, "manual", map[string]interface{}{
		"Error":     errMsg,
		"Timezones": h.timezoneOptions(ctx),
	})
}

// timezoneOptions prefers the configured airport timezone table and
// falls back to the built-in zone list. Rows whose zone fails to load
// are skipped rather than aborting the listing.
func (h *Handler) timezoneOptions(ctx context.Context) []utils.TimezoneOption {
	if h.tzRepo != nil {
		rows, err := h.tzRepo.ListAll(ctx)
		if err == nil && len(rows) > 0 {
			options := make([]utils.TimezoneOption, 0, len(rows))
			for _, row := range rows {
				if _, err := time.LoadLocation(row.TzName); err != nil {
					continue
				}
				options = append(options, utils.TimezoneOption{
					Name:    row.TzName,
					Display: fmt.Sprintf("%s (%s) - %s", row.TzName, row.GmtTz, row.AirportCode),
				})
			}
			return options
		}
		if err != nil {
			h.logger.Warn("Timezone table listing failed, using built-in list", "error", err)
		}
	}
	return utils.ListTimezoneOptions()
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("Template render failed", "template", name, "error", err)
	}
}
