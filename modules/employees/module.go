package employees

import (
	"github.com/ostech/hrconsole/modules/employees/handlers"
	"github.com/ostech/hrconsole/modules/employees/infrastructure/directory"
	"github.com/ostech/hrconsole/modules/employees/presentation/controllers"
	"github.com/ostech/hrconsole/modules/employees/services"
	"github.com/ostech/hrconsole/pkg/application"
	"github.com/ostech/hrconsole/pkg/configuration"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "employees"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	if err := conf.Directory.Validate(); err != nil {
		return err
	}

	client := directory.NewClient(conf.Directory.BaseURL, conf.Directory.Timeout, app.Logger())
	app.RegisterServices(
		services.NewEmployeeService(client, app.EventPublisher()),
	)

	handlers.RegisterEmployeeAuditHandler(app)

	app.RegisterControllers(
		controllers.NewEmployeesController(app),
		controllers.NewEmployeesAPIController(app),
		controllers.NewStaticController(),
	)
	app.RegisterNavItems(NavItems...)
	return nil
}
