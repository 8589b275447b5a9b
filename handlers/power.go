package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/metrics"
	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/scheduler"
)

// API carries the handler dependencies for the local server.
type API struct {
	scheduler *scheduler.Handler
	log       *zap.Logger
}

// NewAPI creates the handler set around a scheduler.
func NewAPI(s *scheduler.Handler, log *zap.Logger) *API {
	return &API{
		scheduler: s,
		log:       log,
	}
}

// InstancePower - instance power endpoint handler
// POST /api/v1/instance/power
// Request Body: {"instance_id": "i-0abcd1234", "action": "start"}
func (a *API) InstancePower(c *gin.Context) {
	startTime := time.Now()

	var req PowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.log.Error("Failed to decode request body", zap.Error(err))
		metrics.ValidationFailures.WithLabelValues("malformed_body").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	resp, _ := a.scheduler.Handle(c.Request.Context(), scheduler.Request{
		InstanceID: req.InstanceID,
		Action:     req.Action,
	})

	metrics.RequestDuration.WithLabelValues(req.Action).Observe(time.Since(startTime).Seconds())
	c.JSON(resp.StatusCode, resp)
}
