package constants

import "strings"

// Currency is an ISO-4217 numeric code accepted by SATIM.
type Currency string

const (
	CurrencyDZD Currency = "012"
)

var currencyNames = map[Currency]string{
	CurrencyDZD: "DZD",
}

var currencySymbols = map[Currency]string{
	CurrencyDZD: "DA",
}

// currencyCases keeps declaration order for Values.
var currencyCases = []Currency{CurrencyDZD}

// CurrencyTryFrom resolves a numeric code, ok is false for unknown codes.
func CurrencyTryFrom(code string) (Currency, bool) {
	c := Currency(strings.TrimSpace(code))
	if _, ok := currencyNames[c]; ok {
		return c, true
	}
	return "", false
}

// CurrencyFromName resolves a symbolic name such as "dzd", case-insensitive.
func CurrencyFromName(name string) (Currency, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, c := range currencyCases {
		if currencyNames[c] == name {
			return c, true
		}
	}
	return "", false
}

func CurrencyFallback() Currency {
	return CurrencyDZD
}

func CurrencyValues() []string {
	out := make([]string, 0, len(currencyCases))
	for _, c := range currencyCases {
		out = append(out, string(c))
	}
	return out
}

// ResolveCurrency reads a configured value given either as code or name.
func ResolveCurrency(value string) Currency {
	if c, ok := CurrencyTryFrom(value); ok {
		return c
	}
	if c, ok := CurrencyFromName(value); ok {
		return c
	}
	return CurrencyFallback()
}

func (c Currency) IsValid() bool {
	_, ok := currencyNames[c]
	return ok
}

func (c Currency) Name() string {
	return currencyNames[c]
}

func (c Currency) Symbol() string {
	return currencySymbols[c]
}

func (c Currency) String() string {
	return string(c)
}
