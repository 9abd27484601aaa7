package apidocs

import (
	"encoding/json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSwagger(t *testing.T) {
	raw, err := Swagger()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, p := range []string{"/auth/login", "/auth/register", "/auth/refresh", "/auth/user", "/user/{id}", "/user/password"} {
		assert.Contains(t, doc.Paths, p)
	}
}

func TestDoc(t *testing.T) {
	e := echo.New()
	e.Pre(Doc("/api", []byte(`{"openapi":"3.0.3"}`)))

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/api/apispec.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"openapi":"3.0.3"}`, rec.Body.String())

	rec = get("/api/apidocs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/apispec.json")

	rec = get("/api")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestDoc_Authorizer(t *testing.T) {
	e := echo.New()
	e.Pre(Doc("/api", []byte(`{}`), WithAuthorizer(func(*http.Request) bool { return false })))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/apidocs", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
