package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
)

type mockRepository struct {
	employees map[string]employee.Employee
	nextID    int
	deleted   []string
}

func newMockRepository(seed ...employee.Employee) *mockRepository {
	repo := &mockRepository{employees: map[string]employee.Employee{}, nextID: 1}
	for _, e := range seed {
		repo.employees[e.ID()] = e
		repo.nextID++
	}
	return repo
}

func (m *mockRepository) GetAll(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, employee.ErrNotFound
	}
	return e, nil
}

func (m *mockRepository) Create(_ context.Context, data employee.Employee) (employee.Employee, error) {
	created := data.WithID(strconv.Itoa(m.nextID))
	m.nextID++
	m.employees[created.ID()] = created
	return created, nil
}

func (m *mockRepository) Update(_ context.Context, data employee.Employee) (employee.Employee, error) {
	if _, ok := m.employees[data.ID()]; !ok {
		return nil, employee.ErrNotFound
	}
	m.employees[data.ID()] = data
	return data, nil
}

func (m *mockRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.employees[id]; !ok {
		return employee.ErrNotFound
	}
	delete(m.employees, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type stubPublisher struct {
	events []interface{}
}

func (p *stubPublisher) Publish(args ...interface{})     { p.events = append(p.events, args...) }
func (p *stubPublisher) Subscribe(handler interface{})   {}
func (p *stubPublisher) Unsubscribe(handler interface{}) {}
func (p *stubPublisher) Clear()                          {}
func (p *stubPublisher) SubscribersCount() int           { return 0 }

func validDraft() *employee.DraftDTO {
	return &employee.DraftDTO{
		FirstName:        "Aliah",
		LastName:         "Lane",
		Client:           "Catalog",
		WorksiteLocation: "Remote",
		PayGroup:         "Monthly",
		TaxType:          "W2",
		EmploymentType:   "Full Time",
		Email:            "aliah@example.com",
		Phone:            "555-0100",
		Gender:           "Female",
		MaritalStatus:    "Single",
		DateOfBirth:      "1994-03-12",
		OriginalHireDate: "2021-07-01",
	}
}

func TestEmployeeServiceCreatePublishes(t *testing.T) {
	repo := newMockRepository()
	publisher := &stubPublisher{}
	service := NewEmployeeService(repo, publisher)

	created, err := service.Create(context.Background(), validDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID())

	require.Len(t, publisher.events, 1)
	event, ok := publisher.events[0].(*employee.CreatedEvent)
	require.True(t, ok)
	assert.Equal(t, created.ID(), event.Result.ID())
}

func TestEmployeeServiceSaveRoutesByID(t *testing.T) {
	repo := newMockRepository()
	publisher := &stubPublisher{}
	service := NewEmployeeService(repo, publisher)

	created, err := service.Save(context.Background(), validDraft())
	require.NoError(t, err)

	draft := employee.FromEntity(created)
	draft.LastName = "Updated"
	updated, err := service.Save(context.Background(), &draft)
	require.NoError(t, err)
	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, "Updated", updated.LastName())

	require.Len(t, publisher.events, 2)
	_, isCreated := publisher.events[0].(*employee.CreatedEvent)
	_, isUpdated := publisher.events[1].(*employee.UpdatedEvent)
	assert.True(t, isCreated)
	assert.True(t, isUpdated)
}

func TestEmployeeServiceUpdateMissing(t *testing.T) {
	repo := newMockRepository()
	service := NewEmployeeService(repo, &stubPublisher{})

	draft := validDraft()
	draft.ID = "404"
	_, err := service.Update(context.Background(), draft)
	require.ErrorIs(t, err, employee.ErrNotFound)
}

func TestEmployeeServiceDelete(t *testing.T) {
	repo := newMockRepository()
	publisher := &stubPublisher{}
	service := NewEmployeeService(repo, publisher)

	created, err := service.Create(context.Background(), validDraft())
	require.NoError(t, err)
	publisher.events = nil

	deleted, err := service.Delete(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), deleted.ID())
	assert.Equal(t, []string{created.ID()}, repo.deleted)

	require.Len(t, publisher.events, 1)
	_, ok := publisher.events[0].(*employee.DeletedEvent)
	assert.True(t, ok)
}

func TestEmployeeServiceDeleteMissing(t *testing.T) {
	service := NewEmployeeService(newMockRepository(), &stubPublisher{})
	_, err := service.Delete(context.Background(), "404")
	require.ErrorIs(t, err, employee.ErrNotFound)
}
