package directory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, testLogger())
}

func TestClientGetAllBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/employees", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":"1","firstName":"Aliah","lastName":"Lane","client":"Catalog","employeeType":"Full Time","email":"aliah@example.com","phone":"555-0100","invitationStatus":"Accepted"},
			{"id":"2","firstName":"Drew","lastName":"Cano","client":"Sisyphus","employeeType":"Part Time","email":"drew@example.com","phone":"555-0101"}
		]`))
	})

	got, err := client.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID())
	assert.Equal(t, "Aliah Lane", got[0].FullName())
	assert.Equal(t, employee.StatusActive, got[0].DisplayStatus())
	assert.Equal(t, employee.StatusPending, got[1].DisplayStatus())
}

func TestClientGetAllEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":[{"id":"9","firstName":"Kiara","lastName":"Mills","client":"Hourglass","employeeType":"Contract","email":"kiara@example.com","phone":"555-0102"}],"message":"ok"}`))
	})

	got, err := client.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "9", got[0].ID())
	assert.Equal(t, employee.TypeContract, got[0].EmployeeType())
}

func TestClientGetByIDNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetByID(context.Background(), "42")
	require.ErrorIs(t, err, employee.ErrNotFound)
}

func TestClientGetByIDEscapesID(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"id":"a b","firstName":"A","lastName":"B","client":"C","employeeType":"Full Time","email":"a@b.c","phone":"1"}`))
	})

	_, err := client.GetByID(context.Background(), "a b")
	require.NoError(t, err)
	assert.Equal(t, "/employee/a%20b", gotPath)
}

func TestClientCreateOmitsID(t *testing.T) {
	var sent map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/employees", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"7","firstName":"Drew","lastName":"Cano","client":"Sisyphus","employeeType":"Full Time","ssn":"123456789","email":"drew@example.com","phone":"555-0101"}`))
	})

	draft := employee.New(
		"Drew", "", "Cano", "Sisyphus",
		employee.TypeFullTime,
		"123456789", "drew@example.com", "555-0101",
		employee.WithID("ignored"),
	)
	created, err := client.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID())
	assert.NotContains(t, sent, "id")
	assert.Equal(t, "123456789", sent["ssn"])
}

func TestClientUpdate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/employees/7", r.URL.Path)
		var rec map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		_, _ = w.Write([]byte(`{"status":"success","data":{"id":"7","firstName":"Drew","lastName":"Updated","client":"Sisyphus","employeeType":"Full Time","email":"drew@example.com","phone":"555-0101"}}`))
	})

	updated, err := client.Update(context.Background(), employee.New(
		"Drew", "", "Updated", "Sisyphus",
		employee.TypeFullTime,
		"", "drew@example.com", "555-0101",
		employee.WithID("7"),
	))
	require.NoError(t, err)
	assert.Equal(t, "Drew Updated", updated.FullName())
}

func TestClientUpdateWithoutID(t *testing.T) {
	client := NewClient("http://unused", time.Second, testLogger())
	_, err := client.Update(context.Background(), employee.New(
		"A", "", "B", "C", employee.TypeFullTime, "", "a@b.c", "1",
	))
	require.Error(t, err)
}

func TestClientServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetAll(context.Background())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
}

func TestClientDelete(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/employees/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"3"}`))
	})

	require.NoError(t, client.Delete(context.Background(), "3"))
	assert.True(t, called)
}
