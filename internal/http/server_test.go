package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-service/internal/config"
	"user-service/internal/identity"
)

type stubGateway struct{}

func (stubGateway) Authenticate(ctx context.Context, email, password string) (*identity.Tokens, error) {
	return &identity.Tokens{}, nil
}

func (stubGateway) CreateUser(ctx context.Context, input identity.CreateUserInput) (*identity.CreatedUser, error) {
	return &identity.CreatedUser{}, nil
}

func (stubGateway) ListUsers(ctx context.Context, limit int64) ([]identity.User, error) {
	return nil, nil
}

func testServer() *Server {
	return NewServer(&ServerDependencies{
		Config: &config.Config{
			Server: config.ServerConfig{
				Port:         "0",
				ReadTimeout:  time.Second,
				WriteTimeout: time.Second,
			},
			App: config.AppConfig{ListUsersLimit: 60},
		},
		Gateway: stubGateway{},
	})
}

func TestPreflightRoutes(t *testing.T) {
	s := testServer()

	for _, path := range []string{"/login", "/users", "/me"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

			var env map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, true, env["success"])
			assert.Equal(t, "CORS preflight successful", env["message"])
		})
	}
}

func TestMethodNotAllowedEnvelope(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodDelete, "/login", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Method not allowed", env["message"])
}

func TestUnknownRouteEnvelope(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "Not found", env["message"])
}

func TestHealthCheck(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestUnauthenticatedProtectedRoute(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "no valid authorization token", env["error"])
}
