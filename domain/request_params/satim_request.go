package request_params

import (
	"satim-gateway/domain/constants"
)

// Credentials are injected into every wire view.
type Credentials struct {
	UserName   string
	Password   string
	TerminalID string
}

// Defaults fill currency and language when a request leaves them unset.
type Defaults struct {
	Currency constants.Currency
	Language constants.Language
}

// SatimRequest is implemented by every request sent to the gateway.
type SatimRequest interface {
	// MerchantView is the flat merchant-side field map, amounts in major units.
	MerchantView() map[string]interface{}
	// WireView is the exact query sent upstream, amounts in minor units.
	WireView(credentials Credentials, defaults Defaults) map[string]interface{}
	Endpoint() string
}

func (d Defaults) currency(requested constants.Currency) constants.Currency {
	if requested != "" {
		return requested
	}
	if d.Currency != "" {
		return d.Currency
	}
	return constants.CurrencyFallback()
}

func (d Defaults) language(requested constants.Language) constants.Language {
	if requested != "" {
		return requested
	}
	if d.Language != "" {
		return d.Language
	}
	return constants.LanguageFallback()
}
