package request_params

import (
	"encoding/json"

	"satim-gateway/domain/constants"
	"satim-gateway/domain/value_objects"
	"satim-gateway/utils/validation"
)

// RegisterRequest registers a new order and returns the payment form url.
type RegisterRequest struct {
	OrderNumber string             `json:"orderNumber" label:"order number" validate:"required,max=10"`
	Amount      float64            `json:"amount" label:"amount" validate:"required,finite,decimal=2,gte=50,lte=999999999.99"`
	ReturnURL   string             `json:"returnUrl" label:"return url" validate:"required,url,max=500"`
	Udf1        string             `json:"udf1" label:"udf1" validate:"required,max=20"`
	Udf2        string             `json:"udf2,omitempty" label:"udf2" validate:"omitempty,max=20"`
	Udf3        string             `json:"udf3,omitempty" label:"udf3" validate:"omitempty,max=20"`
	Udf4        string             `json:"udf4,omitempty" label:"udf4" validate:"omitempty,max=20"`
	Udf5        string             `json:"udf5,omitempty" label:"udf5" validate:"omitempty,max=20"`
	FailURL     string             `json:"failUrl,omitempty" label:"fail url" validate:"omitempty,url,max=500"`
	Description string             `json:"description,omitempty" label:"description" validate:"omitempty,max=512"`
	Currency    constants.Currency `json:"currency,omitempty" label:"currency" validate:"omitempty,currency"`
	Language    constants.Language `json:"language,omitempty" label:"language" validate:"omitempty,language"`
}

// MakeRegisterRequest validates the fields and returns an immutable copy.
func MakeRegisterRequest(fields RegisterRequest) (*RegisterRequest, error) {
	if err := validation.Validate(fields); err != nil {
		return nil, err
	}
	return &fields, nil
}

func (r RegisterRequest) Endpoint() string {
	return constants.EndpointRegister
}

func (r RegisterRequest) MerchantView() map[string]interface{} {
	return map[string]interface{}{
		"orderNumber": r.OrderNumber,
		"amount":      r.Amount,
		"currency":    r.Currency,
		"returnUrl":   r.ReturnURL,
		"failUrl":     r.FailURL,
		"description": r.Description,
		"language":    r.Language,
		"udf1":        r.Udf1,
		"udf2":        r.Udf2,
		"udf3":        r.Udf3,
		"udf4":        r.Udf4,
		"udf5":        r.Udf5,
	}
}

func (r RegisterRequest) WireView(credentials Credentials, defaults Defaults) map[string]interface{} {
	return map[string]interface{}{
		"userName":    credentials.UserName,
		"password":    credentials.Password,
		"orderNumber": r.OrderNumber,
		"amount":      value_objects.ToMinorUnits(r.Amount),
		"currency":    defaults.currency(r.Currency).String(),
		"returnUrl":   r.ReturnURL,
		"failUrl":     r.FailURL,
		"description": r.Description,
		"language":    defaults.language(r.Language).String(),
		"jsonParams":  r.jsonParams(credentials.TerminalID),
	}
}

// jsonParams encodes the terminal id and udf fields, empty values dropped.
func (r RegisterRequest) jsonParams(terminalID string) string {
	params := map[string]string{}
	for key, value := range map[string]string{
		"force_terminal_id": terminalID,
		"udf1":              r.Udf1,
		"udf2":              r.Udf2,
		"udf3":              r.Udf3,
		"udf4":              r.Udf4,
		"udf5":              r.Udf5,
	} {
		if value != "" {
			params[key] = value
		}
	}
	// a map of strings always marshals
	encoded, _ := json.Marshal(params)
	return string(encoded)
}
