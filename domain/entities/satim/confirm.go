package satim

import (
	"satim-gateway/domain/constants"

	"github.com/shopspring/decimal"
)

// ConfirmResponse is the reply of confirmOrder.do. Amounts are in major units.
type ConfirmResponse struct {
	StatusFields
	Expiration     *string             `json:"expiration"`
	CardholderName *string             `json:"cardholderName"`
	DepositAmount  decimal.NullDecimal `json:"depositAmount"`
	Currency       *constants.Currency `json:"currency"`
	Pan            *string             `json:"pan"`
	ApprovalCode   *string             `json:"approvalCode"`
	AuthCode       *int64              `json:"authCode"`
	OrderNumber    *string             `json:"orderNumber"`
	Amount         decimal.NullDecimal `json:"amount"`
	SvfeResponse   *string             `json:"svfeResponse"`
	IP             *string             `json:"ip"`
}

func ParseConfirmResponse(raw map[string]interface{}) *ConfirmResponse {
	p := payload(raw)
	return &ConfirmResponse{
		StatusFields:   decodeStatusFields(p),
		Expiration:     p.str("expiration"),
		CardholderName: p.str("cardholderName"),
		DepositAmount:  p.minorAmount("depositAmount"),
		Currency:       p.currency("currency"),
		Pan:            p.str("Pan", "pan"),
		ApprovalCode:   p.str("approvalCode"),
		AuthCode:       p.integer("authCode"),
		OrderNumber:    p.str("OrderNumber", "orderNumber"),
		Amount:         p.minorAmount("Amount", "amount"),
		SvfeResponse:   p.str("SvfeResponse", "svfeResponse"),
		IP:             p.str("Ip", "ip"),
	}
}
