package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/modules/employees/presentation/mappers"
	"github.com/ostech/hrconsole/modules/employees/presentation/viewmodels"
	"github.com/ostech/hrconsole/modules/employees/services"
	"github.com/ostech/hrconsole/pkg/application"
	"github.com/ostech/hrconsole/pkg/composables"
	"github.com/ostech/hrconsole/pkg/configuration"
	"github.com/ostech/hrconsole/pkg/httpapi"
)

// EmployeesAPIController is the read-only JSON surface over the directory.
// SSNs come out masked here just like in the HTML views.
type EmployeesAPIController struct {
	app      application.Application
	service  *services.EmployeeService
	conf     *configuration.Configuration
	basePath string
}

func NewEmployeesAPIController(app application.Application) application.Controller {
	return &EmployeesAPIController{
		app:      app,
		service:  app.Service(services.EmployeeService{}).(*services.EmployeeService),
		conf:     configuration.Use(),
		basePath: "/api/employees",
	}
}

func (c *EmployeesAPIController) Key() string {
	return c.basePath
}

func (c *EmployeesAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/options", c.Options).Methods(http.MethodGet)
	router.HandleFunc("/rosters", c.Rosters).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
}

func (c *EmployeesAPIController) List(w http.ResponseWriter, r *http.Request) {
	all, err := c.service.GetAll(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	out := make([]*viewmodels.Employee, 0, len(all))
	for _, e := range all {
		out = append(out, mappers.EmployeeToViewModel(e, c.conf.SSNVisibleDigits))
	}
	_ = httpapi.WriteData(w, http.StatusOK, out, "")
}

func (c *EmployeesAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, err := c.service.GetByID(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	_ = httpapi.WriteData(w, http.StatusOK, mappers.EmployeeToViewModel(record, c.conf.SSNVisibleDigits), "")
}

type employeeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const defaultOptionLimit = 10

// Options returns typeahead suggestions: employees whose name, email or
// client contains the query, capped by limit.
func (c *EmployeesAPIController) Options(w http.ResponseWriter, r *http.Request) {
	all, err := c.service.GetAll(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	limit := defaultOptionLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v < 100 {
		limit = v
	}

	out := make([]employeeOption, 0, limit)
	for _, e := range all {
		if len(out) == limit {
			break
		}
		haystack := strings.ToLower(e.FullName() + " " + e.Email() + " " + e.Client())
		if query != "" && !strings.Contains(haystack, query) {
			continue
		}
		out = append(out, employeeOption{ID: e.ID(), Name: e.FullName()})
	}
	_ = httpapi.WriteData(w, http.StatusOK, out, "")
}

// Rosters exposes the fixed select rosters the forms are built from.
func (c *EmployeesAPIController) Rosters(w http.ResponseWriter, r *http.Request) {
	_ = httpapi.WriteData(w, http.StatusOK, map[string][]string{
		"clients":         c.conf.Rosters.Clients,
		"worksites":       c.conf.Rosters.WorksiteLocations,
		"payGroups":       c.conf.Rosters.PayGroups,
		"taxTypes":        c.conf.Rosters.TaxTypes,
		"genders":         c.conf.Rosters.Genders,
		"maritalStatuses": c.conf.Rosters.MaritalStatuses,
		"employmentTypes": {string(employee.TypeFullTime), string(employee.TypePartTime), string(employee.TypeContract)},
	}, "")
}

func (c *EmployeesAPIController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	meta := map[string]string{}
	if requestID := w.Header().Get("X-Request-Id"); requestID != "" {
		meta["request_id"] = requestID
	}
	if errors.Is(err, employee.ErrNotFound) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "employee not found", meta)
		return
	}
	log := composables.UseLogger(r.Context()).WithError(err)
	if params, ok := composables.UseParams(r.Context()); ok {
		log = log.WithField("client-ip", params.IP)
	}
	log.Error("employee api request failed")
	_ = httpapi.WriteError(w, http.StatusBadGateway, "DIRECTORY_UNAVAILABLE", "the employee directory is unavailable", meta)
}
