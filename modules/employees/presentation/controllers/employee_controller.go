package controllers

import (
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/modules/employees/presentation/mappers"
	employeesui "github.com/ostech/hrconsole/modules/employees/presentation/templates/pages/employees"
	"github.com/ostech/hrconsole/modules/employees/presentation/viewmodels"
	"github.com/ostech/hrconsole/modules/employees/services"
	"github.com/ostech/hrconsole/pkg/application"
	"github.com/ostech/hrconsole/pkg/composables"
	"github.com/ostech/hrconsole/pkg/configuration"
	"github.com/ostech/hrconsole/pkg/shared"
)

type EmployeesController struct {
	app      application.Application
	service  *services.EmployeeService
	listView *ListView
	drawer   *DrawerForm
	conf     *configuration.Configuration
	basePath string
}

func NewEmployeesController(app application.Application) application.Controller {
	conf := configuration.Use()
	service := app.Service(services.EmployeeService{}).(*services.EmployeeService)
	return &EmployeesController{
		app:      app,
		service:  service,
		listView: NewListView(service, conf.PageSize),
		drawer:   NewDrawerForm(service, conf.MaxUploadSize),
		conf:     conf,
		basePath: "/employees",
	}
}

func (c *EmployeesController) Key() string {
	return c.basePath
}

func (c *EmployeesController) Register(r *mux.Router) {
	r.HandleFunc("/", c.Home).Methods(http.MethodGet)

	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/new", c.GetNew).Methods(http.MethodGet)
	router.HandleFunc("/drawer/avatar", c.UploadAvatar).Methods(http.MethodPost)
	router.HandleFunc("/drawer/cancel", c.CancelDrawer).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetDetail).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/edit", c.GetEdit).Methods(http.MethodGet)
	router.HandleFunc("/{id}/detail", c.SaveDetail).Methods(http.MethodPost)
}

func (c *EmployeesController) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, c.basePath, http.StatusFound)
}

func (c *EmployeesController) List(w http.ResponseWriter, r *http.Request) {
	pageParams := composables.UsePageParams(r)
	if r.URL.Query().Has("q") {
		c.listView.Search(pageParams.Query)
	}
	if r.URL.Query().Has("page") {
		c.listView.GoToPage(pageParams.Page)
	}

	if err := c.listView.Load(r.Context()); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to load employees")
	}

	if shared.IsHxRequest(r) {
		templ.Handler(employeesui.Table(c.tableProps()), templ.WithStreaming()).ServeHTTP(w, r)
		return
	}

	flash, err := composables.UseFlashMap[string, string](w, r, "toast")
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to read flash")
	}
	props := &viewmodels.IndexPageProps{
		Table:      *c.tableProps(),
		Drawer:     *c.drawerProps(),
		Flash:      flash["message"],
		FlashLevel: flash["level"],
	}
	templ.Handler(employeesui.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *EmployeesController) GetNew(w http.ResponseWriter, r *http.Request) {
	c.drawer.OpenCreate()
	c.renderDrawer(w, r)
}

func (c *EmployeesController) GetEdit(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	record := c.listView.FindByID(id)
	if record == nil {
		record, err = c.service.GetByID(r.Context(), id)
		if err != nil {
			c.notFoundOrError(w, r, err)
			return
		}
	}
	c.drawer.OpenEdit(record)
	c.renderDrawer(w, r)
}

func (c *EmployeesController) Create(w http.ResponseWriter, r *http.Request) {
	c.submitDrawer(w, r)
}

func (c *EmployeesController) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := shared.ParseID(r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.submitDrawer(w, r)
}

// submitDrawer is the single save path behind both the create and edit
// drawers. The target record is whatever the drawer was opened on.
func (c *EmployeesController) submitDrawer(w http.ResponseWriter, r *http.Request) {
	values, err := composables.UseForm(&employee.DraftDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := c.drawer.Bind(*values); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, ok := c.drawer.Submit(r.Context())
	if !ok {
		c.renderDrawer(w, r)
		return
	}

	if err := c.listView.ApplySaved(r.Context(), saved); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to refresh employees after save")
	}
	c.flash(w, r, "Employee saved", "success")
	shared.Redirect(w, r, c.basePath)
}

func (c *EmployeesController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(c.conf.MaxUploadSize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("avatar")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, c.conf.MaxUploadSize+1))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.drawer.PickImage(content); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("rejected avatar upload")
	}
	c.renderDrawer(w, r)
}

func (c *EmployeesController) CancelDrawer(w http.ResponseWriter, r *http.Request) {
	c.drawer.Cancel()
	c.renderDrawer(w, r)
}

func (c *EmployeesController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := c.listView.Delete(r.Context(), id); err != nil && !errors.Is(err, employee.ErrNotFound) {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to delete employee")
		http.Error(w, "failed to delete employee", http.StatusInternalServerError)
		return
	}
	if shared.IsHxRequest(r) {
		templ.Handler(employeesui.Table(c.tableProps()), templ.WithStreaming()).ServeHTTP(w, r)
		return
	}
	shared.Redirect(w, r, c.basePath)
}

func (c *EmployeesController) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	page := NewDetailPage(c.service)
	if err := page.Resolve(r.Context(), id); err != nil {
		c.notFoundOrError(w, r, err)
		return
	}
	c.renderDetail(w, r, page.Snapshot())
}

func (c *EmployeesController) SaveDetail(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	page := NewDetailPage(c.service)
	if err := page.Resolve(r.Context(), id); err != nil {
		c.notFoundOrError(w, r, err)
		return
	}
	values, err := composables.UseForm(&employee.DraftDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := page.Bind(*values); err != nil {
		c.notFoundOrError(w, r, err)
		return
	}
	// The page keeps its own copy; the list picks the change up on its
	// next load.
	page.Save(r.Context())
	c.renderDetail(w, r, page.Snapshot())
}

// notFoundOrError redirects unknown ids back to the list and reports
// everything else.
func (c *EmployeesController) notFoundOrError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, employee.ErrNotFound) {
		c.flash(w, r, "Employee not found", "error")
		shared.Redirect(w, r, c.basePath)
		return
	}
	composables.UseLogger(r.Context()).WithError(err).Error("employee request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func (c *EmployeesController) flash(w http.ResponseWriter, r *http.Request, message, level string) {
	if err := shared.SetFlashMap(w, "toast", map[string]string{
		"message": message,
		"level":   level,
	}); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to set flash")
	}
}

func (c *EmployeesController) renderDrawer(w http.ResponseWriter, r *http.Request) {
	templ.Handler(employeesui.Drawer(c.drawerProps()), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *EmployeesController) renderDetail(w http.ResponseWriter, r *http.Request, snap DetailSnapshot) {
	props := &viewmodels.DetailProps{
		Employee:    mappers.EmployeeToViewModel(snap.Current, c.conf.SSNVisibleDigits),
		Draft:       mappers.DraftToValues(snap.Draft),
		Errors:      viewmodels.DrawerFieldErrors(snap.FieldErrors),
		Rosters:     c.rosters(),
		SubmitError: snap.SubmitErr,
		Saved:       snap.Saved,
	}
	templ.Handler(employeesui.Detail(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *EmployeesController) tableProps() *viewmodels.EmployeesTableProps {
	snap := c.listView.Snapshot()
	rows := make([]*viewmodels.Employee, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		rows = append(rows, mappers.EmployeeToViewModel(e, c.conf.SSNVisibleDigits))
	}
	links := make([]viewmodels.PageLink, 0, visiblePageWindow)
	for _, n := range snap.PageNumbers() {
		links = append(links, viewmodels.PageLink{
			Number:  n,
			Label:   mappers.PageLabel(n),
			Active:  n == snap.Page,
			Enabled: true,
		})
	}
	loadError := ""
	if snap.LoadErr != nil {
		loadError = "The directory is unavailable. Showing the last loaded list."
	}
	return &viewmodels.EmployeesTableProps{
		Employees:   rows,
		Query:       snap.Query,
		Page:        snap.Page,
		TotalPages:  snap.TotalPages,
		TotalCount:  snap.TotalCount,
		PageLinks:   links,
		HasPrevious: snap.HasPrevious(),
		HasNext:     snap.HasNext(),
		LoadError:   loadError,
	}
}

func (c *EmployeesController) drawerProps() *viewmodels.DrawerProps {
	snap := c.drawer.Snapshot()
	title := "Add Employee"
	if snap.Editing {
		title = "Edit Employee"
	}
	return &viewmodels.DrawerProps{
		Open:          snap.Open,
		Title:         title,
		Draft:         mappers.DraftToValues(snap.Draft),
		Errors:        viewmodels.DrawerFieldErrors(snap.FieldErrors),
		AvatarPreview: snap.AvatarPreview,
		Rosters:       c.rosters(),
		SubmitError:   snap.SubmitErr,
	}
}

func (c *EmployeesController) rosters() viewmodels.Rosters {
	return viewmodels.Rosters{
		Clients:         c.conf.Rosters.Clients,
		Worksites:       c.conf.Rosters.WorksiteLocations,
		PayGroups:       c.conf.Rosters.PayGroups,
		TaxTypes:        c.conf.Rosters.TaxTypes,
		Genders:         c.conf.Rosters.Genders,
		MaritalStatuses: c.conf.Rosters.MaritalStatuses,
	}
}
