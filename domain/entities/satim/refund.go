package satim

type RefundResponse struct {
	StatusFields
}

func ParseRefundResponse(raw map[string]interface{}) *RefundResponse {
	return &RefundResponse{StatusFields: decodeStatusFields(payload(raw))}
}
