package value_objects

import (
	"math"
	"testing"

	"satim-gateway/domain/constants"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{50.00, 5000},
		{100.50, 10050},
		{250.75, 25075},
		{999.99, 99999},
		{1234.56, 123456},
		{0.29, 29},
		{1.005, 101},
		{MaxAmount, 99999999999},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt64},
		{math.Inf(-1), math.MinInt64},
		{1e20, math.MaxInt64},
		{-1e20, math.MinInt64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.amount), "amount %v", tt.amount)
	}
}

// Every two-decimal amount up to 100 000.00 must convert exactly.
func TestToMinorUnitsExactForTwoDecimals(t *testing.T) {
	for cents := int64(5000); cents <= 10000000; cents += 7 {
		amount := float64(cents) / 100
		if got := ToMinorUnits(amount); got != cents {
			t.Fatalf("ToMinorUnits(%v) = %d, want %d", amount, got, cents)
		}
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.True(t, decimal.RequireFromString("100.50").Equal(FromMinorUnits(decimal.NewFromInt(10050))))
	assert.True(t, decimal.RequireFromString("1000").Equal(FromMinorUnits(decimal.NewFromInt(100000))))
	assert.True(t, decimal.Zero.Equal(FromMinorUnits(decimal.Zero)))
}

func TestDecimalPlaces(t *testing.T) {
	assert.Equal(t, int32(0), DecimalPlaces(100))
	assert.Equal(t, int32(1), DecimalPlaces(100.5))
	assert.Equal(t, int32(2), DecimalPlaces(999.99))
	assert.Equal(t, int32(3), DecimalPlaces(100.123))
	assert.Equal(t, int32(1), DecimalPlaces(0.1))
	assert.Equal(t, int32(math.MaxInt32), DecimalPlaces(math.NaN()))
	assert.Equal(t, int32(math.MaxInt32), DecimalPlaces(math.Inf(1)))
	assert.Equal(t, int32(math.MaxInt32), DecimalPlaces(math.Inf(-1)))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(MaxAmount))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,000.50 DA", FormatMoney(decimal.RequireFromString("1000.5"), constants.CurrencyDZD))
	assert.Equal(t, "50.00 DA", FormatMoney(decimal.NewFromInt(50), constants.Currency("999")))
}
