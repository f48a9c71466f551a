package application

import (
	"fmt"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ostech/hrconsole/pkg/eventbus"
	"github.com/ostech/hrconsole/pkg/types"
)

// Controller is anything that can register its routes on the root router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is a self-contained feature unit that wires its services and
// controllers into the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterServices(services ...interface{})
	// Service returns the registered service matching the type of service.
	// Panics if no such service was registered.
	Service(service interface{}) interface{}
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc
	RegisterNavItems(items ...types.NavigationItem)
	NavItems() []types.NavigationItem
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger
}

type ApplicationOptions struct {
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
}

func New(opts *ApplicationOptions) Application {
	return &application{
		eventPublisher: opts.EventBus,
		logger:         opts.Logger,
		services:       map[reflect.Type]interface{}{},
	}
}

// Load registers every module into the application, failing on the first
// module that cannot register.
func Load(app Application, modules ...Module) error {
	for _, module := range modules {
		if err := module.Register(app); err != nil {
			return fmt.Errorf("failed to register module %s: %w", module.Name(), err)
		}
	}
	return nil
}

type application struct {
	controllers    []Controller
	services       map[reflect.Type]interface{}
	middleware     []mux.MiddlewareFunc
	navItems       []types.NavigationItem
	eventPublisher eventbus.EventBus
	logger         *logrus.Logger
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) Controllers() []Controller {
	return a.controllers
}

func (a *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		a.services[serviceType] = service
	}
}

func (a *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, ok := a.services[serviceType]
	if !ok {
		panic(fmt.Sprintf("service %s not found", serviceType.Name()))
	}
	return svc
}

func (a *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}

func (a *application) RegisterNavItems(items ...types.NavigationItem) {
	a.navItems = append(a.navItems, items...)
}

func (a *application) NavItems() []types.NavigationItem {
	return a.navItems
}

func (a *application) EventPublisher() eventbus.EventBus {
	return a.eventPublisher
}

func (a *application) Logger() *logrus.Logger {
	return a.logger
}
