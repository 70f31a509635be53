package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"125", "125.00"},
		{"125.0000", "125.00"},
		{"73.666", "73.67"},
		{"0", "0.00"},
		{"10.005", "10.01"},
		{"-10.005", "-10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWithPrecision(decimal.RequireFromString(tt.amount), 2))
		})
	}
}
