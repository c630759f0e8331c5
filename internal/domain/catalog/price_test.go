package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingInterval_PeriodEnd(t *testing.T) {
	start := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval BillingInterval
		want     time.Time
	}{
		{name: "monthly", interval: IntervalMonthly, want: time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)},
		{name: "quarterly", interval: IntervalQuarterly, want: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)},
		{name: "yearly", interval: IntervalYearly, want: time.Date(2027, 1, 31, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.PeriodEnd(start))
		})
	}
}

func TestNewPrice(t *testing.T) {
	price, err := NewPrice(10, 5000, "ssp", IntervalMonthly)

	require.NoError(t, err)
	assert.Equal(t, "SSP", price.Currency())
	assert.True(t, price.IsActive())
	assert.NotEmpty(t, price.SID())
}

func TestNewPrice_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		productID uint
		amount    int64
		currency  string
		interval  BillingInterval
	}{
		{name: "zero product", productID: 0, amount: 5000, currency: "SSP", interval: IntervalMonthly},
		{name: "zero amount", productID: 10, amount: 0, currency: "SSP", interval: IntervalMonthly},
		{name: "negative amount", productID: 10, amount: -1, currency: "SSP", interval: IntervalMonthly},
		{name: "empty currency", productID: 10, amount: 5000, currency: "", interval: IntervalMonthly},
		{name: "bad interval", productID: 10, amount: 5000, currency: "SSP", interval: "weekly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPrice(tt.productID, tt.amount, tt.currency, tt.interval)
			assert.Error(t, err)
		})
	}
}
