package user_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/logger"
	"storefront/pkg/user"
	"storefront/pkg/user/memory"
	"storefront/pkg/web"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	log := logger.New(io.Discard, logger.LevelInfo, "users", nil)
	r := web.NewRouter(web.RouterConfig{Service: "users", Log: log})
	user.NewHandler(memory.New(user.Seed()), log).Register(r)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListUsers(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var users []user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Equal(t, user.Seed(), users)
}

func TestCreateUser(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/users/create", `{"name": "Ali"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id": 3, "name": "Ali"}`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/users/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id": 3, "name": "Ali"}`, rec.Body.String())
}

func TestCreateUserInvalid(t *testing.T) {
	for _, body := range []string{`{}`, `not json`, `[1,2]`, ``, `{"name": 1}`, `{"name": "Ali"} trailing`, `{"name":"Ali"}{"name":"Bob"}`} {
		t.Run(body, func(t *testing.T) {
			rec := do(t, newServer(t), http.MethodPost, "/users/create", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error": "Invalid data"}`, rec.Body.String())
		})
	}
}

func TestGetUserNotFound(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/users/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
}

func TestGetUserOverflowingID(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/users/99999999999999999999999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())
}

func TestGetUserNonIntegerIDIsRoutingFailure(t *testing.T) {
	rec := do(t, newServer(t), http.MethodGet, "/users/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "User not found")
}

func TestUpdateUser(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPut, "/users/1/update", `{"name": "Mike"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id": 1, "name": "Mike"}`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id": 1, "name": "Mike"}`, rec.Body.String())
}

func TestUpdateUserChecksExistenceBeforeBody(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPut, "/users/999/update", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "User not found"}`, rec.Body.String())

	rec = do(t, srv, http.MethodPut, "/users/1/update", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid data"}`, rec.Body.String())
}

func TestDeleteUser(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodDelete, "/users/1/delete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "User deleted"}`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUserUnknownIDSucceeds(t *testing.T) {
	rec := do(t, newServer(t), http.MethodDelete, "/users/999/delete", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "User deleted"}`, rec.Body.String())
}

func TestCreateAfterDeleteDoesNotReuseID(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv, http.MethodPost, "/users/create", `{"name": "Ali"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	do(t, srv, http.MethodDelete, "/users/3/delete", "")

	rec = do(t, srv, http.MethodPost, "/users/create", `{"name": "Sam"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id": 4, "name": "Sam"}`, rec.Body.String())
}
