package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
	"flightcal-service/pkg/logger"

	"github.com/iancoleman/orderedmap"
)

// HTTPFlightProvider implements FlightProviderRepository against the
// flight-data HTTP API. Calls are synchronous and not retried; a
// failure surfaces immediately as *entity.ProviderError.
type HTTPFlightProvider struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// NewHTTPFlightProvider creates a new provider client
func NewHTTPFlightProvider(baseURL string, timeout time.Duration, log logger.Logger) repository.FlightProviderRepository {
	return &HTTPFlightProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// QueryByDate returns raw records for a flight on an exact YYYYMMDD date.
func (p *HTTPFlightProvider) QueryByDate(ctx context.Context, flightNumber, date string) ([]entity.RawFlight, error) {
	endpoint := fmt.Sprintf("%s/flights/%s/dates/%s", p.baseURL, url.PathEscape(flightNumber), url.PathEscape(date))
	return p.fetch(ctx, "query_by_date", endpoint)
}

// QueryHistory returns the flight's historical records with no date filter.
func (p *HTTPFlightProvider) QueryHistory(ctx context.Context, flightNumber string) ([]entity.RawFlight, error) {
	endpoint := fmt.Sprintf("%s/flights/%s/history", p.baseURL, url.PathEscape(flightNumber))
	return p.fetch(ctx, "query_history", endpoint)
}

func (p *HTTPFlightProvider) fetch(ctx context.Context, op, endpoint string) ([]entity.RawFlight, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &entity.ProviderError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("Provider request failed", "operation", op, "error", err)
		return nil, &entity.ProviderError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	// The provider reports an unknown flight as 404; that is a
	// legitimately empty result, not a call failure.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		p.logger.Error("Provider returned unexpected status", "operation", op, "status", resp.StatusCode)
		return nil, &entity.ProviderError{Op: op, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entity.ProviderError{Op: op, Err: err}
	}

	records, err := decodeRecords(body)
	if err != nil {
		p.logger.Error("Provider response decode failed", "operation", op, "error", err)
		return nil, &entity.ProviderError{Op: op, Err: err}
	}

	p.logger.Debug("Provider call completed", "operation", op, "records", len(records))
	return records, nil
}

// decodeRecords normalizes the provider's two response shapes into one
// ordered sequence: a JSON array is taken as-is, a keyed JSON object is
// flattened in key order of appearance.
func decodeRecords(body []byte) ([]entity.RawFlight, error) {
	var records []entity.RawFlight
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	keyed := orderedmap.New()
	if err := json.Unmarshal(body, keyed); err != nil {
		return nil, fmt.Errorf("response is neither a record array nor a keyed object: %w", err)
	}

	for _, key := range keyed.Keys() {
		value, ok := keyed.Get(key)
		if !ok {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		var record entity.RawFlight
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
