package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/pkg/application"
)

// EmployeeAuditHandler writes an audit line for every directory mutation that
// goes through the service layer.
type EmployeeAuditHandler struct {
	log *logrus.Logger
}

func RegisterEmployeeAuditHandler(app application.Application) *EmployeeAuditHandler {
	handler := &EmployeeAuditHandler{log: app.Logger()}
	app.EventPublisher().Subscribe(handler.onCreated)
	app.EventPublisher().Subscribe(handler.onUpdated)
	app.EventPublisher().Subscribe(handler.onDeleted)
	return handler
}

func (h *EmployeeAuditHandler) onCreated(event *employee.CreatedEvent) {
	h.log.WithFields(logrus.Fields{
		"action":   "employee.created",
		"id":       event.Result.ID(),
		"employee": event.Result.FullName(),
	}).Info("employee created")
}

func (h *EmployeeAuditHandler) onUpdated(event *employee.UpdatedEvent) {
	h.log.WithFields(logrus.Fields{
		"action":   "employee.updated",
		"id":       event.Result.ID(),
		"employee": event.Result.FullName(),
	}).Info("employee updated")
}

func (h *EmployeeAuditHandler) onDeleted(event *employee.DeletedEvent) {
	h.log.WithFields(logrus.Fields{
		"action":   "employee.deleted",
		"id":       event.Result.ID(),
		"employee": event.Result.FullName(),
	}).Info("employee deleted")
}
