package treasury

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	"github.com/SscSPs/purchase_exchange_app/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func canadaQuery(t *testing.T) domain.QuotationQuery {
	return domain.QuotationQuery{
		CountryCurrency: "Canada-Dollar",
		From:            date(t, "2023-07-15"),
		To:              date(t, "2024-01-15"),
		Limit:           1,
	}
}

func TestFindQuotations_SendsFilterSortAndPaging(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		q := r.URL.Query()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rates", r.URL.Path)
		assert.Equal(t, "country_currency_desc,exchange_rate,record_date", q.Get("fields"))
		assert.Equal(t, "country_currency_desc:eq:Canada-Dollar,record_date:gte:2023-07-15,record_date:lte:2024-01-15", q.Get("filter"))
		assert.Equal(t, "-record_date", q.Get("sort"))
		assert.Equal(t, "1", q.Get("page[size]"))
		assert.Equal(t, "1", q.Get("page[number]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"country_currency_desc":"Canada-Dollar","exchange_rate":"1.25","record_date":"2024-01-15"}],"meta":{"count":1}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/rates")
	records, err := client.FindQuotations(context.Background(), canadaQuery(t))

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, records, 1)
	assert.Equal(t, "Canada-Dollar", records[0].CountryCurrency)
	assert.Equal(t, "1.25", records[0].ExchangeRate)
	assert.Equal(t, date(t, "2024-01-15"), records[0].RecordDate)
}

func TestFindQuotations_EmptyOrMissingData(t *testing.T) {
	for _, body := range []string{`{"data":[]}`, `{}`} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		records, err := NewClient(server.URL).FindQuotations(context.Background(), canadaQuery(t))
		server.Close()

		require.NoError(t, err, body)
		assert.Empty(t, records, body)
	}
}

func TestFindQuotations_KeepsRateVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"country_currency_desc":"Canada-Dollar","exchange_rate":"invalid-rate","record_date":"2024-01-10"}]}`))
	}))
	defer server.Close()

	records, err := NewClient(server.URL).FindQuotations(context.Background(), canadaQuery(t))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "invalid-rate", records[0].ExchangeRate)
}

func TestFindQuotations_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream exploded", http.StatusBadGateway)
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
				assert.Contains(t, err.Error(), "upstream exploded")
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":[`))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "decoding treasury response")
			},
		},
		{
			name: "bad record date",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":[{"country_currency_desc":"Canada-Dollar","exchange_rate":"1.2","record_date":"15/01/2024"}]}`))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "record_date")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			records, err := NewClient(server.URL).FindQuotations(context.Background(), canadaQuery(t))

			assert.Nil(t, records)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestFindQuotations_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, WithTimeout(50*time.Millisecond))
	_, err := client.FindQuotations(context.Background(), canadaQuery(t))

	require.Error(t, err)
	assert.ErrorContains(t, err, "treasury request")
}

func TestClientOptions(t *testing.T) {
	t.Run("timeout does not modify a shared client", func(t *testing.T) {
		shared := &http.Client{Timeout: time.Minute}

		client := NewClient("", WithHTTPClient(shared), WithTimeout(2*time.Second))

		assert.Equal(t, time.Minute, shared.Timeout)
		assert.Equal(t, 2*time.Second, client.client.Timeout)
		assert.NotSame(t, shared, client.client)
	})

	t.Run("nil http client keeps the default", func(t *testing.T) {
		client := NewClient("", WithHTTPClient(nil))

		require.NotNil(t, client.client)
		assert.Equal(t, DefaultTimeout, client.client.Timeout)
	})
}

func TestDecorators(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	m := metrics.New()
	provider := NewLoggingProvider(NewInstrumentingProvider(m, NewClient(server.URL)))

	records, err := provider.FindQuotations(context.Background(), canadaQuery(t))

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues(outcomeEmpty)))
}
