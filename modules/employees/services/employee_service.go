package services

import (
	"context"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/pkg/eventbus"
)

type EmployeeService struct {
	repo      employee.Repository
	publisher eventbus.EventBus
}

func NewEmployeeService(repo employee.Repository, publisher eventbus.EventBus) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return s.repo.GetAll(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, data *employee.DraftDTO) (employee.Employee, error) {
	created, err := s.repo.Create(ctx, data.ToEntity())
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.NewCreatedEvent(*data, created))
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, data *employee.DraftDTO) (employee.Employee, error) {
	updated, err := s.repo.Update(ctx, data.ToEntity())
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.NewUpdatedEvent(*data, updated))
	return updated, nil
}

// Save routes a draft through the one submit path: a draft without an ID is a
// create, anything else an update.
func (s *EmployeeService) Save(ctx context.Context, data *employee.DraftDTO) (employee.Employee, error) {
	if data.ID == "" {
		return s.Create(ctx, data)
	}
	return s.Update(ctx, data)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) (employee.Employee, error) {
	deleted, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.publisher.Publish(employee.NewDeletedEvent(deleted))
	return deleted, nil
}
