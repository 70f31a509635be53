package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSubtractMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"mid month", date(2024, 1, 15), date(2023, 7, 15)},
		{"july 31 to january 31", date(2024, 7, 31), date(2024, 1, 31)},
		{"august 31 clamps to leap february", date(2024, 8, 31), date(2024, 2, 29)},
		{"august 31 clamps to february", date(2023, 8, 31), date(2023, 2, 28)},
		{"december 31 clamps to june 30", date(2023, 12, 31), date(2023, 6, 30)},
		{"crosses year boundary", date(2025, 3, 1), date(2024, 9, 1)},
		{"clock part dropped", time.Date(2025, 9, 15, 23, 59, 0, 0, time.UTC), date(2025, 3, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.SubtractMonths(tt.in, 6))
		})
	}
}

func TestLookbackWindow_Boundaries(t *testing.T) {
	asOf := date(2024, 1, 15)
	window := domain.LookbackWindow(asOf)

	assert.Equal(t, date(2023, 7, 15), window.Start)
	assert.Equal(t, asOf, window.End)

	assert.True(t, window.Contains(date(2023, 7, 15)), "exactly six months back is eligible")
	assert.False(t, window.Contains(date(2023, 7, 14)), "one day earlier is not")
	assert.True(t, window.Contains(asOf), "the reference date itself is eligible")
	assert.False(t, window.Contains(date(2024, 1, 16)), "dates after the reference date are not")
}

func TestParseDate(t *testing.T) {
	got, err := domain.ParseDate("2025-09-15")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 9, 15), got)
	assert.Equal(t, "2025-09-15", domain.FormatDate(got))

	_, err = domain.ParseDate("15/09/2025")
	assert.Error(t, err)
}
