package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("/test.do", "ok"))
	ObserveRequest("/test.do", "ok", 0.2)
	ObserveRequest("/test.do", "ok", 0.4)
	assert.Equal(t, before+2, testutil.ToFloat64(GatewayRequestsTotal.WithLabelValues("/test.do", "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(GatewayRequestDuration, "satim_request_duration_seconds"))
}

func TestIncOutcome(t *testing.T) {
	before := testutil.ToFloat64(PaymentOutcomesTotal.WithLabelValues("refund", "refunded"))
	IncOutcome("refund", "refunded")
	assert.Equal(t, before+1, testutil.ToFloat64(PaymentOutcomesTotal.WithLabelValues("refund", "refunded")))
}
