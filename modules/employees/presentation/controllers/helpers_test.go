package controllers

import (
	"context"
	"strconv"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/modules/employees/services"
)

type mockRepository struct {
	employees []employee.Employee
	nextID    int

	onGetAll func(ctx context.Context) ([]employee.Employee, error)
	updErr   error
	delErr   error
}

func newMockRepository(seed ...employee.Employee) *mockRepository {
	return &mockRepository{employees: seed, nextID: len(seed) + 1}
}

func (m *mockRepository) GetAll(ctx context.Context) ([]employee.Employee, error) {
	if m.onGetAll != nil {
		return m.onGetAll(ctx)
	}
	out := make([]employee.Employee, len(m.employees))
	copy(out, m.employees)
	return out, nil
}

func (m *mockRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.ID() == id {
			return e, nil
		}
	}
	return nil, employee.ErrNotFound
}

func (m *mockRepository) Create(_ context.Context, data employee.Employee) (employee.Employee, error) {
	created := data.WithID(strconv.Itoa(m.nextID))
	m.nextID++
	m.employees = append(m.employees, created)
	return created, nil
}

func (m *mockRepository) Update(_ context.Context, data employee.Employee) (employee.Employee, error) {
	if m.updErr != nil {
		return nil, m.updErr
	}
	for i, e := range m.employees {
		if e.ID() == data.ID() {
			m.employees[i] = data
			return data, nil
		}
	}
	return nil, employee.ErrNotFound
}

func (m *mockRepository) Delete(_ context.Context, id string) error {
	if m.delErr != nil {
		return m.delErr
	}
	for i, e := range m.employees {
		if e.ID() == id {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrNotFound
}

type stubPublisher struct {
	events []interface{}
}

func (p *stubPublisher) Publish(args ...interface{})     { p.events = append(p.events, args...) }
func (p *stubPublisher) Subscribe(handler interface{})   {}
func (p *stubPublisher) Unsubscribe(handler interface{}) {}
func (p *stubPublisher) Clear()                          {}
func (p *stubPublisher) SubscribersCount() int           { return 0 }

func newTestService(repo employee.Repository) *services.EmployeeService {
	return services.NewEmployeeService(repo, &stubPublisher{})
}

func testEmployee(id, firstName, lastName string) employee.Employee {
	return employee.New(
		firstName, "", lastName, "Catalog",
		employee.TypeFullTime,
		"123456789",
		firstName+"@example.com",
		"555-0100",
		employee.WithID(id),
		employee.WithInvitationStatus(employee.InvitationAccepted),
		employee.WithProfile(employee.Profile{
			WorksiteLocation: "Remote",
			PayGroup:         "Monthly",
			TaxType:          "W-2",
			MaritalStatus:    "Single",
			DateOfBirth:      "1994-03-12",
			OriginalHireDate: "2021-07-01",
		}),
		employee.WithGender("Female"),
	)
}

func seedEmployees(n int) []employee.Employee {
	out := make([]employee.Employee, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, testEmployee(strconv.Itoa(i), "Emp"+strconv.Itoa(i), "Sample"))
	}
	return out
}
