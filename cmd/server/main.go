package main

import (
	"context"
	"net/http"
	"os"

	"github.com/a-h/templ"

	"github.com/ostech/hrconsole/modules/employees"
	employeesui "github.com/ostech/hrconsole/modules/employees/presentation/templates/pages/employees"
	"github.com/ostech/hrconsole/pkg/application"
	"github.com/ostech/hrconsole/pkg/configuration"
	"github.com/ostech/hrconsole/pkg/eventbus"
	"github.com/ostech/hrconsole/pkg/logging"
	"github.com/ostech/hrconsole/pkg/middleware"
	"github.com/ostech/hrconsole/pkg/server"
)

func main() {
	conf := configuration.Use()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		shutdown := logging.SetupTracing(context.Background(), conf.OpenTelemetry.ServiceName, conf.OpenTelemetry.TempoURL)
		defer shutdown()
	}

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := application.Load(app, employees.NewModule()); err != nil {
		logger.WithError(err).Error("failed to load modules")
		os.Exit(1)
	}

	app.RegisterMiddleware(
		middleware.WithLogger(logger),
		middleware.RequestParams(),
	)

	srv := server.NewHTTPServer(
		app,
		[]string{conf.Origin},
		templ.Handler(employeesui.NotFound(), templ.WithStatus(http.StatusNotFound)),
		templ.Handler(employeesui.NotFound(), templ.WithStatus(http.StatusMethodNotAllowed)),
	)

	logger.WithField("address", conf.SocketAddress).Info("starting server")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
