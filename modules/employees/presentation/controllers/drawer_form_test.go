package controllers

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
)

func validValues() employee.DraftDTO {
	return employee.DraftDTO{
		FirstName:        "Kiara",
		LastName:         "Mills",
		Client:           "Hourglass",
		WorksiteLocation: "Remote",
		PayGroup:         "Monthly",
		TaxType:          "W-2",
		EmploymentType:   "Contract",
		Email:            "kiara@example.com",
		Phone:            "555-0102",
		Gender:           "Female",
		MaritalStatus:    "Single",
		DateOfBirth:      "1992-11-02",
		OriginalHireDate: "2020-01-15",
	}
}

func pngBytes() []byte {
	header := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return append(header, bytes.Repeat([]byte{0}, 64)...)
}

func TestDrawerOpenCreateRebuildsEmpty(t *testing.T) {
	form := NewDrawerForm(newTestService(newMockRepository()), 0)

	form.OpenEdit(testEmployee("7", "Drew", "Cano"))
	require.NoError(t, form.Bind(validValues()))
	form.Cancel()

	form.OpenCreate()
	snap := form.Snapshot()
	assert.True(t, snap.Open)
	assert.False(t, snap.Editing)
	assert.Empty(t, snap.Draft.FirstName)
	assert.Empty(t, snap.FieldErrors)
	assert.Empty(t, snap.AvatarPreview)
}

func TestDrawerOpenEditCopiesRecord(t *testing.T) {
	repo := newMockRepository(testEmployee("7", "Drew", "Cano"))
	form := NewDrawerForm(newTestService(repo), 0)

	form.OpenEdit(repo.employees[0])
	snap := form.Snapshot()
	assert.True(t, snap.Editing)
	assert.Equal(t, "7", snap.Draft.ID)
	assert.Equal(t, "Drew", snap.Draft.FirstName)

	// Editing the draft does not leak into the live record until submit.
	values := validValues()
	values.FirstName = "Changed"
	require.NoError(t, form.Bind(values))
	assert.Equal(t, "Drew", repo.employees[0].FirstName())
}

func TestDrawerBindKeepsID(t *testing.T) {
	form := NewDrawerForm(newTestService(newMockRepository()), 0)
	form.OpenEdit(testEmployee("7", "Drew", "Cano"))

	values := validValues()
	values.ID = "999"
	require.NoError(t, form.Bind(values))
	assert.Equal(t, "7", form.Snapshot().Draft.ID)
}

func TestDrawerSubmitInvalidSkipsNetwork(t *testing.T) {
	repo := newMockRepository()
	calls := 0
	repo.onGetAll = func(context.Context) ([]employee.Employee, error) {
		calls++
		return nil, nil
	}
	form := NewDrawerForm(newTestService(repo), 0)

	form.OpenCreate()
	values := validValues()
	values.Email = "not-an-email"
	require.NoError(t, form.Bind(values))

	_, ok := form.Submit(context.Background())
	assert.False(t, ok)
	assert.Empty(t, repo.employees)
	assert.Zero(t, calls)

	snap := form.Snapshot()
	assert.True(t, snap.Open)
	assert.Contains(t, snap.FieldErrors, "Email")
}

func TestDrawerSubmitCreates(t *testing.T) {
	repo := newMockRepository()
	form := NewDrawerForm(newTestService(repo), 0)

	form.OpenCreate()
	require.NoError(t, form.Bind(validValues()))

	saved, ok := form.Submit(context.Background())
	require.True(t, ok)
	assert.NotEmpty(t, saved.ID())
	assert.False(t, form.Snapshot().Open)
	require.Len(t, repo.employees, 1)
}

func TestDrawerSubmitUpdates(t *testing.T) {
	repo := newMockRepository(testEmployee("7", "Drew", "Cano"))
	form := NewDrawerForm(newTestService(repo), 0)

	form.OpenEdit(repo.employees[0])
	values := validValues()
	values.FirstName = "Drew"
	values.LastName = "Renamed"
	require.NoError(t, form.Bind(values))

	saved, ok := form.Submit(context.Background())
	require.True(t, ok)
	assert.Equal(t, "7", saved.ID())
	assert.Equal(t, "Drew Renamed", repo.employees[0].FullName())
	require.Len(t, repo.employees, 1)
}

func TestDrawerSubmitDirectoryFailureKeepsDraft(t *testing.T) {
	repo := newMockRepository(testEmployee("7", "Drew", "Cano"))
	repo.updErr = errors.New("directory down")
	form := NewDrawerForm(newTestService(repo), 0)

	form.OpenEdit(repo.employees[0])
	require.NoError(t, form.Bind(validValues()))

	_, ok := form.Submit(context.Background())
	assert.False(t, ok)

	snap := form.Snapshot()
	assert.True(t, snap.Open)
	assert.NotEmpty(t, snap.SubmitErr)
	assert.Equal(t, "Kiara", snap.Draft.FirstName)
}

func TestDrawerPickImage(t *testing.T) {
	form := NewDrawerForm(newTestService(newMockRepository()), 1024)
	form.OpenCreate()

	require.NoError(t, form.PickImage(pngBytes()))
	snap := form.Snapshot()
	assert.Contains(t, snap.AvatarPreview, "data:image/png;base64,")
	assert.Equal(t, snap.AvatarPreview, snap.Draft.AvatarURL)
}

func TestDrawerPickImageRejectsNonImage(t *testing.T) {
	form := NewDrawerForm(newTestService(newMockRepository()), 1024)
	form.OpenCreate()

	err := form.PickImage([]byte("plain text, not an image"))
	require.ErrorIs(t, err, ErrNotAnImage)
	assert.Empty(t, form.Snapshot().AvatarPreview)
}

func TestDrawerPickImageRejectsOversized(t *testing.T) {
	form := NewDrawerForm(newTestService(newMockRepository()), 16)
	form.OpenCreate()

	err := form.PickImage(pngBytes())
	require.ErrorIs(t, err, ErrImageTooLarge)
}

func TestDrawerCancelDiscards(t *testing.T) {
	repo := newMockRepository(testEmployee("7", "Drew", "Cano"))
	form := NewDrawerForm(newTestService(repo), 0)

	form.OpenEdit(repo.employees[0])
	require.NoError(t, form.Bind(validValues()))
	form.Cancel()

	snap := form.Snapshot()
	assert.False(t, snap.Open)
	assert.Empty(t, snap.Draft.ID)
	assert.Equal(t, "Drew", repo.employees[0].FirstName())
}
