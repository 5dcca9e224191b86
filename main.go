package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/guard"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/memory"
	"github.com/carson-networks/finance-server/internal/telemetry"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger, err := logging.SetupLogging(envConfig.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("logging.SetupLogging")
		return
	}
	logger.Info("finance-server starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, envConfig.OTLPEndpoint)
	if err != nil {
		logger.WithError(err).Fatal("telemetry.Setup")
		return
	}

	backend, err := openBackend(envConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("openBackend")
		return
	}

	delegator := operator.NewOperatorDelegator(backend, logger, envConfig.OperatorWorkers,
		operator.WithQueueSize(envConfig.OperatorQueue))
	delegator.Start()

	budgetGuard := guard.NewBudgetGuard(envConfig.BudgetCheckFailOpen, time.Now, logger)
	svc := service.NewService(backend, delegator, budgetGuard, time.Now)

	httpRest := &api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
	}
	if pinger, ok := backend.(*storage.Storage); ok {
		httpRest.Pinger = pinger
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(httpRest.Serve)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return httpRest.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("finance-server stopped with error")
	}

	delegator.Stop()
	if err := backend.Close(); err != nil {
		logger.WithError(err).Warn("backend.Close")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.WithError(err).Warn("telemetry.Shutdown")
	}
	logger.Info("finance-server stopped")
}

func openBackend(envConfig *config.Config, logger *logrus.Logger) (storage.Backend, error) {
	if strings.EqualFold(envConfig.StorageBackend, config.BackendMemory) {
		logger.Info("using in-memory storage")
		return memory.New(), nil
	}

	if envConfig.RunMigrations {
		// the migrate driver closes the pool it is given, so it gets its own
		migrationDB, err := sql.Open("postgres", envConfig.PostgresURL())
		if err != nil {
			return nil, err
		}
		pre, post, err := storage.RunMigrations(migrationDB)
		_ = migrationDB.Close()
		if err != nil {
			return nil, err
		}
		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  pre,
			"postMigrationVersion": post,
		}).Info("Migration status")
	}

	return storage.NewStorage(envConfig)
}
