package application

import (
	"context"
	"sync"

	"satim-gateway/domain/constants"
	"satim-gateway/domain/repositories"
	"satim-gateway/domain/request_params"
	"satim-gateway/errors"
	"satim-gateway/infrastructure/service/satim_service"
	"satim-gateway/utils/configs"
	"satim-gateway/utils/gpooling"
	"satim-gateway/utils/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SatimApplication is the gateway facade: one request in, one upstream call,
// one parsed response out.
//
// Currency and language set on the facade win over the configured defaults.
// The configured values are resolved at serialization time and never cached.
type SatimApplication struct {
	Config          *configs.Config
	Logger          *zap.Logger
	SatimRepository repositories.SatimGatewayRepository
	IPool           gpooling.IPool

	mu       sync.RWMutex
	currency constants.Currency
	language constants.Language
	confirms singleflight.Group
}

// NewSatimApplication wires the facade. A nil gateway means the HTTP transport
// built from config; a nil pool makes ConfirmOrders use plain goroutines.
func NewSatimApplication(config *configs.Config, lg *zap.Logger, gateway repositories.SatimGatewayRepository, pool gpooling.IPool) *SatimApplication {
	if config == nil {
		config = &configs.Config{}
	}
	lg = logger.OrNop(lg)
	if gateway == nil {
		gateway = satim_service.NewRepoImpl(config.Satim.ApiBaseURL, config.Satim.Timeout(), lg)
	}
	return &SatimApplication{
		Config:          config,
		Logger:          lg,
		SatimRepository: gateway,
		IPool:           pool,
	}
}

func (us *SatimApplication) SetCurrency(currency constants.Currency) *SatimApplication {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.currency = currency
	return us
}

func (us *SatimApplication) SetLanguage(language constants.Language) *SatimApplication {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.language = language
	return us
}

func (us *SatimApplication) Currency() constants.Currency {
	us.mu.RLock()
	defer us.mu.RUnlock()
	if us.currency != "" {
		return us.currency
	}
	return us.Config.Satim.Currency()
}

func (us *SatimApplication) Language() constants.Language {
	us.mu.RLock()
	defer us.mu.RUnlock()
	if us.language != "" {
		return us.language
	}
	return us.Config.Satim.Language()
}

func (us *SatimApplication) defaults() request_params.Defaults {
	return request_params.Defaults{
		Currency: us.Currency(),
		Language: us.Language(),
	}
}

// call serializes the request and runs it through the transport. Errors other
// than configuration errors come back as *errors.GatewayUnavailableError.
func (us *SatimApplication) call(ctx context.Context, request request_params.SatimRequest) (map[string]interface{}, error) {
	credentials, err := us.Config.Satim.Credentials()
	if err != nil {
		return nil, err
	}
	response, err := us.SatimRepository.Call(ctx, request.Endpoint(), request.WireView(credentials, us.defaults()))
	if err != nil {
		if errors.IsGatewayUnavailable(err) || errors.IsConfiguration(err) {
			return nil, err
		}
		return nil, errors.NewGatewayUnavailable(err.Error(), 0, err)
	}
	return response, nil
}
