package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rinha-backend/internal/config"
	personHandler "rinha-backend/internal/domains/person/handler"
	"rinha-backend/internal/infrastructure/database"
	"rinha-backend/internal/shared/middleware"
	"rinha-backend/pkg/container"
)

// The person handler is never invoked here, so it can run without a service.
func testContainer(env string) *container.Container {
	cfg := &config.Config{
		App: config.AppConfig{Name: "Rinha Backend", Environment: env, Port: "8080", Version: "test"},
	}
	return &container.Container{
		Config:        cfg,
		DB:            database.NewPostgresDB(&cfg.Database),
		PersonHandler: personHandler.NewPersonHandler(nil),
	}
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSetupRouter_RegistersPersonRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(config.EnvDevelopment))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /pessoas",
		"GET /pessoas",
		"GET /pessoas/:id",
		"GET /contagem-pessoas",
		"GET /getAllPessoa",
		"GET /health",
		"GET /openapi.json",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestHealth_DegradedWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testContainer(config.EnvDevelopment))

	w := get(r, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "disconnected", body["services"].(map[string]any)["database"])
}

func TestOpenAPI_OnlyOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dev := get(SetupRouter(testContainer(config.EnvDevelopment)), "/openapi.json")
	require.Equal(t, http.StatusOK, dev.Code)
	assert.Contains(t, dev.Body.String(), `"/pessoas"`)

	prod := get(SetupRouter(testContainer(config.EnvProduction)), "/openapi.json")
	assert.Equal(t, http.StatusNotFound, prod.Code)
}
