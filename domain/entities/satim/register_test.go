package satim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegisterResponse(t *testing.T) {
	tests := []struct {
		name       string
		raw        map[string]interface{}
		orderID    *string
		registered bool
	}{
		{
			name:       "registered",
			raw:        map[string]interface{}{"orderId": "ABC123", "formUrl": "https://test.satim.dz/payment/merchants/form?mdOrder=ABC123", "errorCode": "0"},
			orderID:    str("ABC123"),
			registered: true,
		},
		{
			name:       "numeric fields",
			raw:        map[string]interface{}{"orderId": 123, "errorCode": 0},
			orderID:    str("123"),
			registered: true,
		},
		{
			name:       "registered without order id",
			raw:        map[string]interface{}{"errorCode": "0"},
			registered: true,
		},
		{
			name: "duplicate order number",
			raw:  map[string]interface{}{"errorCode": "1", "errorMessage": "Order with this number was already processed"},
		},
		{
			name: "capitalized keys",
			raw:  map[string]interface{}{"ErrorCode": "5", "ErrorMessage": "Access denied"},
		},
		{
			name: "empty",
			raw:  map[string]interface{}{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseRegisterResponse(tt.raw)
			assert.Equal(t, tt.orderID, r.OrderID)
			assert.Equal(t, tt.registered, r.Registered())
			assert.Equal(t, tt.registered, r.PaymentRegistered())
		})
	}

	r := ParseRegisterResponse(map[string]interface{}{"ErrorCode": "5", "ErrorMessage": "Access denied"})
	assert.Equal(t, "5", *r.ErrorCode)
	assert.Equal(t, "Access denied", *r.ErrorMessage)
	assert.Nil(t, r.FormURL)
}
