package request_params

import (
	"satim-gateway/domain/constants"
	"satim-gateway/utils/validation"
)

// ConfirmRequest asks for the final status of a registered order.
type ConfirmRequest struct {
	OrderID  string             `json:"orderId" label:"order id" validate:"required,max=20"`
	Language constants.Language `json:"language,omitempty" label:"language" validate:"omitempty,language"`
}

func MakeConfirmRequest(fields ConfirmRequest) (*ConfirmRequest, error) {
	if err := validation.Validate(fields); err != nil {
		return nil, err
	}
	return &fields, nil
}

func (r ConfirmRequest) Endpoint() string {
	return constants.EndpointConfirm
}

func (r ConfirmRequest) MerchantView() map[string]interface{} {
	return map[string]interface{}{
		"orderId":  r.OrderID,
		"language": r.Language,
	}
}

func (r ConfirmRequest) WireView(credentials Credentials, defaults Defaults) map[string]interface{} {
	return map[string]interface{}{
		"userName": credentials.UserName,
		"password": credentials.Password,
		"orderId":  r.OrderID,
		"language": defaults.language(r.Language).String(),
	}
}
