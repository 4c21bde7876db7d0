package satim

import (
	"strings"

	"satim-gateway/domain/constants"
	"satim-gateway/domain/value_objects"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// payload is a decoded upstream object. SATIM is not consistent about key
// casing or value types, so every lookup tolerates absence and coerces.
type payload map[string]interface{}

// str returns the first present key as a string. Non-scalar values read as absent.
func (p payload) str(keys ...string) *string {
	for _, key := range keys {
		value, ok := p[key]
		if !ok || value == nil {
			continue
		}
		s, err := cast.ToStringE(value)
		if err != nil {
			return nil
		}
		return &s
	}
	return nil
}

func (p payload) number(keys ...string) (decimal.Decimal, bool) {
	s := p.str(keys...)
	if s == nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// minorAmount reads an integer minor-unit amount as a major-unit decimal.
func (p payload) minorAmount(keys ...string) decimal.NullDecimal {
	d, ok := p.number(keys...)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: value_objects.FromMinorUnits(d), Valid: true}
}

func (p payload) integer(keys ...string) *int64 {
	d, ok := p.number(keys...)
	if !ok {
		return nil
	}
	i := d.IntPart()
	return &i
}

// currency resolves an ISO numeric code; numbers lose their leading zeros in
// json so short numeric codes are padded back to three digits.
func (p payload) currency(keys ...string) *constants.Currency {
	s := p.str(keys...)
	if s == nil {
		return nil
	}
	code := strings.TrimSpace(*s)
	if len(code) > 0 && len(code) < 3 && strings.Trim(code, "0123456789") == "" {
		code = strings.Repeat("0", 3-len(code)) + code
	}
	c, ok := constants.CurrencyTryFrom(code)
	if !ok {
		return nil
	}
	return &c
}

// object returns a nested object, also accepting one encoded as a json string.
func (p payload) object(key string) payload {
	value, ok := p[key]
	if !ok || value == nil {
		return payload{}
	}
	m, err := cast.ToStringMapE(value)
	if err != nil {
		return payload{}
	}
	return m
}
