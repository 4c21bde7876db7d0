package value_objects

import (
	"math"

	"satim-gateway/domain/constants"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest major-unit amount accepted on a request.
const MaxAmount = 999999999.99

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// ToMinorUnits converts a major-unit amount into integer minor units.
// The float is read through its shortest decimal form, so 999.99 gives 99999.
// NaN gives 0; values beyond the int64 range saturate instead of wrapping.
func ToMinorUnits(amount float64) int64 {
	switch {
	case math.IsNaN(amount):
		return 0
	case math.IsInf(amount, 1):
		return math.MaxInt64
	case math.IsInf(amount, -1):
		return math.MinInt64
	}
	minor := decimal.NewFromFloat(amount).Mul(hundred).Round(0)
	if minor.GreaterThan(maxMinor) {
		return math.MaxInt64
	}
	if minor.LessThan(minMinor) {
		return math.MinInt64
	}
	return minor.IntPart()
}

// FromMinorUnits converts a minor-unit integer into a major-unit decimal.
func FromMinorUnits(minor decimal.Decimal) decimal.Decimal {
	return minor.Shift(-2)
}

// DecimalPlaces counts the fractional digits of the shortest representation.
// NaN and infinities have none and report math.MaxInt32.
func DecimalPlaces(amount float64) int32 {
	if !IsFinite(amount) {
		return math.MaxInt32
	}
	exp := decimal.NewFromFloat(amount).Exponent()
	if exp >= 0 {
		return 0
	}
	return -exp
}

func IsFinite(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

// FormatMoney renders an amount with the currency symbol, e.g. "1,000.50 DA".
func FormatMoney(amount decimal.Decimal, currency constants.Currency) string {
	symbol := currency.Symbol()
	if symbol == "" {
		symbol = constants.CurrencyFallback().Symbol()
	}
	ac := accounting.Accounting{
		Symbol:    symbol,
		Precision: 2,
		Thousand:  ",",
		Decimal:   ".",
		Format:    "%v %s",
	}
	return ac.FormatMoney(amount.InexactFloat64())
}
