package controllers

import (
	"context"
	"sync"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/modules/employees/services"
)

// DetailPage backs the full-page employee editor. The record is resolved by
// scanning the loaded collection, the way the directory API is cheapest to
// use; a miss means the caller should redirect back to the list.
type DetailPage struct {
	mu      sync.Mutex
	service *services.EmployeeService

	current employee.Employee
	draft   employee.DraftDTO

	fieldErrors map[string]string
	submitErr   string
	saved       bool
}

type DetailSnapshot struct {
	Current     employee.Employee
	Draft       employee.DraftDTO
	FieldErrors map[string]string
	SubmitErr   string
	Saved       bool
}

func NewDetailPage(service *services.EmployeeService) *DetailPage {
	return &DetailPage{service: service, fieldErrors: map[string]string{}}
}

// Resolve loads the collection and picks the record with the given id. The
// page edits a by-value copy of it.
func (p *DetailPage) Resolve(ctx context.Context, id string) error {
	all, err := p.service.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, e := range all {
		if e.ID() == id {
			p.mu.Lock()
			p.current = e
			p.draft = employee.FromEntity(e)
			p.fieldErrors = map[string]string{}
			p.submitErr = ""
			p.saved = false
			p.mu.Unlock()
			return nil
		}
	}
	return employee.ErrNotFound
}

// Bind overlays submitted values onto the draft, keeping the resolved id.
func (p *DetailPage) Bind(values employee.DraftDTO) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return employee.ErrNotFound
	}
	id := p.draft.ID
	p.draft = values
	p.draft.ID = id
	return nil
}

// Save validates the draft and writes it through to the directory. On
// success the page keeps showing the saved copy; no list reload happens
// here.
func (p *DetailPage) Save(ctx context.Context) (employee.Employee, bool) {
	p.mu.Lock()
	if p.current == nil {
		p.mu.Unlock()
		return nil, false
	}
	draft := p.draft
	p.mu.Unlock()

	if fieldErrors, ok := draft.Ok(ctx); !ok {
		p.mu.Lock()
		p.fieldErrors = fieldErrors
		p.submitErr = ""
		p.saved = false
		p.mu.Unlock()
		return nil, false
	}

	saved, err := p.service.Update(ctx, &draft)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.fieldErrors = map[string]string{}
		p.submitErr = "The directory rejected the request. Please try again."
		p.saved = false
		return nil, false
	}
	p.current = saved
	p.draft = employee.FromEntity(saved)
	p.fieldErrors = map[string]string{}
	p.submitErr = ""
	p.saved = true
	return saved, true
}

func (p *DetailPage) Snapshot() DetailSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	fieldErrors := make(map[string]string, len(p.fieldErrors))
	for k, v := range p.fieldErrors {
		fieldErrors[k] = v
	}
	return DetailSnapshot{
		Current:     p.current,
		Draft:       p.draft,
		FieldErrors: fieldErrors,
		SubmitErr:   p.submitErr,
		Saved:       p.saved,
	}
}
