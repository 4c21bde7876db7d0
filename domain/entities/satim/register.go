package satim

import "satim-gateway/domain/constants"

// RegisterResponse carries the SATIM order id and the payment form url.
type RegisterResponse struct {
	OrderID      *string `json:"orderId"`
	FormURL      *string `json:"formUrl"`
	ErrorCode    *string `json:"errorCode"`
	ErrorMessage *string `json:"errorMessage"`
}

func ParseRegisterResponse(raw map[string]interface{}) *RegisterResponse {
	p := payload(raw)
	return &RegisterResponse{
		OrderID:      p.str("orderId"),
		FormURL:      p.str("formUrl"),
		ErrorCode:    p.str("errorCode", "ErrorCode"),
		ErrorMessage: p.str("errorMessage", "ErrorMessage"),
	}
}

// Registered only looks at the error code; order id and form url may be missing.
func (r RegisterResponse) Registered() bool {
	return is(r.ErrorCode, constants.ErrorCodeSuccess)
}

func (r RegisterResponse) PaymentRegistered() bool {
	return r.Registered()
}
