package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wisespend/budget-api/api"
	"github.com/wisespend/budget-api/internal/config"
	"github.com/wisespend/budget-api/internal/logging"
	"github.com/wisespend/budget-api/internal/operator"
	"github.com/wisespend/budget-api/internal/service"
	"github.com/wisespend/budget-api/internal/storage"
)

const numOperatorWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("budget-api starting")

	// Missing .env is fine, env vars and defaults still apply.
	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Debug("main.godotenv")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, numOperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
