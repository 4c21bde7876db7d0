package test

import (
	"testing"

	"satim-gateway/application"
	"satim-gateway/domain/repositories/mocks"
	"satim-gateway/utils/configs"
	"satim-gateway/utils/gpooling"
	logger2 "satim-gateway/utils/logger"
)

type MockService struct {
	Config           *configs.Config
	SatimRepository  *mocks.SatimGatewayRepository
	SatimApplication *application.SatimApplication
}

func NewTestSatimApplication(t *testing.T) *MockService {
	config, err := configs.LoadTestConfig("../../")

	if err != nil {
		panic(err)
	}

	logger, err := logger2.NewLogger("production")

	if err != nil {
		panic(err)
	}

	pool, err := gpooling.NewPooling(config.MaxPoolSize, logger)

	if err != nil {
		panic(err)
	}
	t.Cleanup(pool.Release)

	satimRepository := mocks.NewSatimGatewayRepository(t)

	return &MockService{
		Config:           config,
		SatimRepository:  satimRepository,
		SatimApplication: application.NewSatimApplication(config, logger, satimRepository, pool),
	}
}
