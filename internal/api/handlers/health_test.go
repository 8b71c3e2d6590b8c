package handlers

import (
	"net/http"
	"testing"

	"eduman-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	handler := NewHealthHandler(db)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("health", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, Version, response.Version)
		assert.Equal(t, "healthy", response.Services["database"])
	})

	t.Run("ready", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, true, response["ready"])
	})

	t.Run("live", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("database closed", func(t *testing.T) {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

		var response HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
	})
}
