package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/finance-server/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-server/internal/handlers/v1/category"
	"github.com/carson-networks/finance-server/internal/handlers/v1/goal"
	"github.com/carson-networks/finance-server/internal/handlers/v1/report"
	"github.com/carson-networks/finance-server/internal/handlers/v1/status"
	"github.com/carson-networks/finance-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/telemetry"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	// Pinger backs /status. Nil when the backend has nothing to ping.
	Pinger status.Pinger

	server *http.Server
}

// Handler builds the full route table.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("Finance Server", "1.0.0")
	api := humago.New(mux, config)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	category.NewWriteHandler(r.Service.Category).Register(api)
	category.NewReadHandler(r.Service.Category).Register(api)
	transaction.NewWriteHandler(r.Service.Transaction).Register(api)
	transaction.NewReadHandler(r.Service.Transaction).Register(api)
	budget.NewReadHandler(r.Service.Budget).Register(api)
	budget.NewWriteHandler(r.Service.Budget).Register(api)
	goal.NewWriteHandler(r.Service.Goal).Register(api)
	goal.NewReadHandler(r.Service.Goal).Register(api)
	report.NewHandler(r.Service.Report).Register(api)

	statusHandler := status.NewHandler(r.Pinger)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	return otelhttp.NewHandler(mux, telemetry.ServiceName)
}

// Serve blocks until the server stops. A Shutdown is not reported as an error.
func (r *Rest) Serve() error {
	r.server = &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

// Shutdown drains in-flight requests.
func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
