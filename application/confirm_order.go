package application

import (
	"context"
	"sync"

	"satim-gateway/domain/entities/satim"
	"satim-gateway/domain/request_params"
	"satim-gateway/errors"
	"satim-gateway/utils/metrics"

	"go.uber.org/zap"
)

func (us *SatimApplication) Confirm(ctx context.Context, request *request_params.ConfirmRequest) (*satim.ConfirmResponse, error) {
	if request == nil {
		return nil, errors.NewInvalidArgument("The confirm request is required.")
	}
	raw, err := us.call(ctx, request)
	if err != nil {
		us.Logger.With(zap.Error(err), zap.String("order_id", request.OrderID)).Error("satim_confirm")
		return nil, err
	}
	res := satim.ParseConfirmResponse(raw)
	outcome := res.Outcome()
	metrics.IncOutcome("confirm", outcome)
	us.Logger.With(
		zap.String("order_id", request.OrderID),
		zap.String("outcome", outcome),
		zap.Stringp("order_status", res.OrderStatus),
		zap.Stringp("error_code", res.ErrorCode),
		zap.Stringp("resp_code", res.Params.RespCode),
	).Info("satim_confirm")
	return res, nil
}

type ConfirmResult struct {
	OrderID  string
	Response *satim.ConfirmResponse
	Err      error
}

// ConfirmOrders confirms each order with its own call, in parallel on the
// pool. Results keep the input order; repeated ids share one upstream call.
func (us *SatimApplication) ConfirmOrders(ctx context.Context, orderIDs []string) []ConfirmResult {
	results := make([]ConfirmResult, len(orderIDs))
	var wg sync.WaitGroup
	for i, orderID := range orderIDs {
		i, orderID := i, orderID
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = us.confirmOnce(ctx, orderID)
		}
		if us.IPool == nil {
			go task()
			continue
		}
		if err := us.IPool.Submit(task); err != nil {
			results[i] = ConfirmResult{OrderID: orderID, Err: err}
			wg.Done()
		}
	}
	wg.Wait()
	return results
}

func (us *SatimApplication) confirmOnce(ctx context.Context, orderID string) ConfirmResult {
	v, err, _ := us.confirms.Do(orderID, func() (interface{}, error) {
		request, err := request_params.MakeConfirmRequest(request_params.ConfirmRequest{OrderID: orderID})
		if err != nil {
			return nil, err
		}
		return us.Confirm(ctx, request)
	})
	res, _ := v.(*satim.ConfirmResponse)
	return ConfirmResult{OrderID: orderID, Response: res, Err: err}
}
