package treasury

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_exchange_app/internal/core/ports/repositories"
)

// DefaultBaseURL is the Treasury Reporting Rates of Exchange dataset.
const DefaultBaseURL = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/v1/accounting/od/rates_of_exchange"

const (
	DefaultTimeout = 10 * time.Second

	fieldCountryCurrency = "country_currency_desc"
	fieldExchangeRate    = "exchange_rate"
	fieldRecordDate      = "record_date"

	maxErrorBody = 512
)

// Client queries the Treasury fiscal data API for quotations.
type Client struct {
	baseURL string
	client  *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds every upstream call. It sets the timeout on a copy, so a
// client passed through WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		hc := *c.client
		hc.Timeout = d
		c.client = &hc
	}
}

// NewClient constructs a Client for baseURL. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, options ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ portsrepo.RateProvider = (*Client)(nil)

type ratesResponse struct {
	Data []rateRecord `json:"data"`
}

type rateRecord struct {
	CountryCurrencyDesc string `json:"country_currency_desc"`
	ExchangeRate        string `json:"exchange_rate"`
	RecordDate          string `json:"record_date"`
}

// FindQuotations issues exactly one GET. Filtering, ordering and paging are all
// delegated to the API.
func (c *Client) FindQuotations(ctx context.Context, query domain.QuotationQuery) ([]domain.QuotationRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("building treasury request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("treasury request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding treasury response: %w", err)
	}

	records := make([]domain.QuotationRecord, 0, len(payload.Data))
	for _, r := range payload.Data {
		recordDate, err := domain.ParseDate(r.RecordDate)
		if err != nil {
			return nil, fmt.Errorf("treasury record_date %q: %w", r.RecordDate, err)
		}
		records = append(records, domain.QuotationRecord{
			CountryCurrency: r.CountryCurrencyDesc,
			ExchangeRate:    r.ExchangeRate,
			RecordDate:      recordDate,
		})
	}
	return records, nil
}

func (c *Client) queryURL(query domain.QuotationQuery) string {
	limit := query.Limit
	if limit <= 0 {
		limit = 1
	}

	params := url.Values{}
	params.Set("fields", strings.Join([]string{fieldCountryCurrency, fieldExchangeRate, fieldRecordDate}, ","))
	params.Set("filter", strings.Join([]string{
		fieldCountryCurrency + ":eq:" + query.CountryCurrency.String(),
		fieldRecordDate + ":gte:" + domain.FormatDate(query.From),
		fieldRecordDate + ":lte:" + domain.FormatDate(query.To),
	}, ","))
	params.Set("sort", "-"+fieldRecordDate)
	params.Set("page[size]", strconv.Itoa(limit))
	params.Set("page[number]", "1")

	return c.baseURL + "?" + params.Encode()
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("treasury API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("treasury API returned status %d: %s", e.StatusCode, e.Body)
}
