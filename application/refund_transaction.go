package application

import (
	"context"

	"satim-gateway/domain/entities/satim"
	"satim-gateway/domain/request_params"
	"satim-gateway/errors"
	"satim-gateway/utils/metrics"

	"go.uber.org/zap"
)

func (us *SatimApplication) Refund(ctx context.Context, request *request_params.RefundRequest) (*satim.RefundResponse, error) {
	if request == nil {
		return nil, errors.NewInvalidArgument("The refund request is required.")
	}
	raw, err := us.call(ctx, request)
	if err != nil {
		us.Logger.With(zap.Error(err), zap.String("order_id", request.OrderID)).Error("satim_refund")
		return nil, err
	}
	res := satim.ParseRefundResponse(raw)
	outcome := res.Outcome()
	metrics.IncOutcome("refund", outcome)
	us.Logger.With(
		zap.String("order_id", request.OrderID),
		zap.Float64("amount", request.Amount),
		zap.String("outcome", outcome),
		zap.Stringp("error_code", res.ErrorCode),
	).Info("satim_refund")
	return res, nil
}
