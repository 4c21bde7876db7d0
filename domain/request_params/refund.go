package request_params

import (
	"satim-gateway/domain/constants"
	"satim-gateway/domain/value_objects"
	"satim-gateway/utils/validation"
)

// RefundRequest refunds all or part of a deposited order.
type RefundRequest struct {
	OrderID string  `json:"orderId" label:"order id" validate:"required,max=20"`
	Amount  float64 `json:"amount" label:"amount" validate:"required,finite,decimal=2,gte=50,lte=999999999.99"`
}

func MakeRefundRequest(fields RefundRequest) (*RefundRequest, error) {
	if err := validation.Validate(fields); err != nil {
		return nil, err
	}
	return &fields, nil
}

func (r RefundRequest) Endpoint() string {
	return constants.EndpointRefund
}

func (r RefundRequest) MerchantView() map[string]interface{} {
	return map[string]interface{}{
		"orderId": r.OrderID,
		"amount":  r.Amount,
	}
}

func (r RefundRequest) WireView(credentials Credentials, _ Defaults) map[string]interface{} {
	return map[string]interface{}{
		"userName": credentials.UserName,
		"password": credentials.Password,
		"orderId":  r.OrderID,
		"amount":   value_objects.ToMinorUnits(r.Amount),
	}
}
