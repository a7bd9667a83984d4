package patient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	e := echo.New()
	NewHandler(NewService(repo)).RegisterRoutes(e.Group("/api/v1"))
	return e, repo
}

func TestHandlerCreate(t *testing.T) {
	e, _ := newTestServer(t)

	body := `{"first_name":"John","last_name":"Doe","date_of_birth":"1990-05-15","email":"john.doe@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"patient_id":1`)
	assert.Contains(t, rec.Body.String(), `"date_of_birth":"1990-05-15"`)
}

func TestHandlerCreateValidation(t *testing.T) {
	e, repo := newTestServer(t)

	body := `{"first_name":"John","date_of_birth":"1990-05-15","email":"john.doe@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.patients)
}

func TestHandlerGetNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerGetBadID(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerListAndSearch(t *testing.T) {
	e, repo := newTestServer(t)

	svc := NewService(repo)
	for _, p := range []*Patient{
		validPatient(),
		{FirstName: "Jane", LastName: "Smith", DateOfBirth: validPatient().DateOfBirth, Email: "jane@example.com"},
	} {
		_, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/patients?q=Doe", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), "John")
	assert.NotContains(t, rec.Body.String(), "Jane")
}

func TestHandlerDeleteReferencedConflicts(t *testing.T) {
	e, repo := newTestServer(t)

	_, err := NewService(repo).Create(context.Background(), validPatient())
	require.NoError(t, err)

	// The store refuses to delete a patient that appointments or medical
	// records still point at; the handler reports the conflict.
	repo.deleteErr = fmt.Errorf("delete patient 1: %w",
		&pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, repo.patients, 1)
}

func TestHandlerDelete(t *testing.T) {
	e, repo := newTestServer(t)

	_, err := NewService(repo).Create(context.Background(), validPatient())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.patients)
}
