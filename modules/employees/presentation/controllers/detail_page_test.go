package controllers

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
)

func TestDetailResolve(t *testing.T) {
	repo := newMockRepository(seedEmployees(3)...)
	page := NewDetailPage(newTestService(repo))

	require.NoError(t, page.Resolve(context.Background(), "2"))
	snap := page.Snapshot()
	require.NotNil(t, snap.Current)
	assert.Equal(t, "2", snap.Current.ID())
	assert.Equal(t, "2", snap.Draft.ID)
}

func TestDetailResolveUnknownID(t *testing.T) {
	page := NewDetailPage(newTestService(newMockRepository(seedEmployees(2)...)))
	err := page.Resolve(context.Background(), "404")
	require.ErrorIs(t, err, employee.ErrNotFound)
}

func TestDetailResolveLoadError(t *testing.T) {
	repo := newMockRepository()
	repo.onGetAll = func(context.Context) ([]employee.Employee, error) {
		return nil, errors.New("directory down")
	}
	page := NewDetailPage(newTestService(repo))
	require.Error(t, page.Resolve(context.Background(), "1"))
}

func TestDetailSaveInvalidSkipsNetwork(t *testing.T) {
	repo := newMockRepository(testEmployee("1", "Aliah", "Lane"))
	page := NewDetailPage(newTestService(repo))
	require.NoError(t, page.Resolve(context.Background(), "1"))

	values := validValues()
	values.FirstName = ""
	require.NoError(t, page.Bind(values))

	_, ok := page.Save(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "Aliah", repo.employees[0].FirstName())
	assert.Contains(t, page.Snapshot().FieldErrors, "FirstName")
}

func TestDetailSaveWritesThrough(t *testing.T) {
	repo := newMockRepository(testEmployee("1", "Aliah", "Lane"))
	page := NewDetailPage(newTestService(repo))
	require.NoError(t, page.Resolve(context.Background(), "1"))

	values := validValues()
	values.FirstName = "Aliah"
	values.LastName = "Renamed"
	require.NoError(t, page.Bind(values))

	saved, ok := page.Save(context.Background())
	require.True(t, ok)
	assert.Equal(t, "Aliah Renamed", saved.FullName())
	assert.Equal(t, "Aliah Renamed", repo.employees[0].FullName())

	snap := page.Snapshot()
	assert.True(t, snap.Saved)
	assert.Equal(t, "Renamed", snap.Draft.LastName)
}

func TestDetailSaveDirectoryFailureKeepsDraft(t *testing.T) {
	repo := newMockRepository(testEmployee("1", "Aliah", "Lane"))
	page := NewDetailPage(newTestService(repo))
	require.NoError(t, page.Resolve(context.Background(), "1"))

	repo.updErr = errors.New("directory down")
	require.NoError(t, page.Bind(validValues()))

	_, ok := page.Save(context.Background())
	assert.False(t, ok)

	snap := page.Snapshot()
	assert.NotEmpty(t, snap.SubmitErr)
	assert.False(t, snap.Saved)
	assert.Equal(t, "Kiara", snap.Draft.FirstName)
	assert.Equal(t, "Aliah", repo.employees[0].FirstName())
}

func TestDetailBindKeepsResolvedID(t *testing.T) {
	repo := newMockRepository(testEmployee("1", "Aliah", "Lane"))
	page := NewDetailPage(newTestService(repo))
	require.NoError(t, page.Resolve(context.Background(), "1"))

	values := validValues()
	values.ID = "999"
	require.NoError(t, page.Bind(values))
	assert.Equal(t, "1", page.Snapshot().Draft.ID)
}
