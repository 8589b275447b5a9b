package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/scheduler"
)

type fakeInstanceAPI struct {
	startErr error
	stopErr  error
}

func (f *fakeInstanceAPI) StartInstance(ctx context.Context, instanceID string) error {
	return f.startErr
}

func (f *fakeInstanceAPI) StopInstance(ctx context.Context, instanceID string) error {
	return f.stopErr
}

func newTestRouter(api scheduler.InstanceAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	a := NewAPI(scheduler.NewHandler(api, log), log)

	router := gin.New()
	router.POST("/api/v1/instance/power", a.InstancePower)
	router.GET("/health", HealthCheck)
	return router
}

func postPower(router *gin.Engine, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/instance/power", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestInstancePowerStart(t *testing.T) {
	router := newTestRouter(&fakeInstanceAPI{})

	rec := postPower(router, `{"instance_id": "i-0abcd1234", "action": "start"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp scheduler.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Body, "i-0abcd1234")
}

func TestInstancePowerValidation(t *testing.T) {
	router := newTestRouter(&fakeInstanceAPI{})

	tests := []struct {
		name string
		body string
	}{
		{"missing instance id", `{"action": "start"}`},
		{"invalid action", `{"instance_id": "i-0abcd1234", "action": "hibernate"}`},
		{"malformed body", `{"instance_id": `},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postPower(router, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestInstancePowerConflictIsOK(t *testing.T) {
	router := newTestRouter(&fakeInstanceAPI{
		stopErr: &scheduler.StateConflictError{InstanceID: "i-0abcd1234", Code: "IncorrectInstanceState"},
	})

	rec := postPower(router, `{"instance_id": "i-0abcd1234", "action": "stop"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already stopped")
}

func TestInstancePowerProviderError(t *testing.T) {
	router := newTestRouter(&fakeInstanceAPI{
		startErr: &scheduler.ProviderError{Code: "UnauthorizedOperation", Message: "denied"},
	})

	rec := postPower(router, `{"instance_id": "i-0abcd1234", "action": "start"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "UnauthorizedOperation")
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&fakeInstanceAPI{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
