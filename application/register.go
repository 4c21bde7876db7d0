package application

import (
	"context"

	"satim-gateway/domain/entities/satim"
	"satim-gateway/domain/request_params"
	"satim-gateway/errors"

	"go.uber.org/zap"
)

func (us *SatimApplication) Register(ctx context.Context, request *request_params.RegisterRequest) (*satim.RegisterResponse, error) {
	if request == nil {
		return nil, errors.NewInvalidArgument("The register request is required.")
	}
	raw, err := us.call(ctx, request)
	if err != nil {
		us.Logger.With(zap.Error(err), zap.String("order_number", request.OrderNumber)).Error("satim_register")
		return nil, err
	}
	res := satim.ParseRegisterResponse(raw)
	us.Logger.With(
		zap.String("order_number", request.OrderNumber),
		zap.Bool("registered", res.Registered()),
		zap.Stringp("order_id", res.OrderID),
		zap.Stringp("error_code", res.ErrorCode),
	).Info("satim_register")
	return res, nil
}
