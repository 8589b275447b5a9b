// Package scheduler implements the instance power controller.
//
// One invocation carries one Request naming a target EC2 instance and the
// lifecycle action to apply. The controller validates the request, issues a
// single start or stop call against the compute control plane and folds the
// outcome into a Response record. Nothing is retained between invocations.
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/metrics"
)

const (
	// ActionStart requests an instance start.
	ActionStart = "start"
	// ActionStop requests an instance stop.
	ActionStop = "stop"
)

const (
	// LogFieldKeys for structured logging
	LogFieldInstanceID = "instance_id"
	LogFieldAction     = "action"
	LogFieldErrorCode  = "error_code"
)

// Request is the invocation payload, typically delivered by a scheduled
// CloudWatch Events rule with a constant JSON input.
type Request struct {
	InstanceID string `json:"instance_id"`
	Action     string `json:"action"`
}

// Response is the invocation result. Body is a JSON-encoded message string,
// matching the shape an API Gateway style caller expects.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// InstanceAPI abstracts the compute control plane. Implementations return a
// *StateConflictError when the instance is already in the requested state and
// a *ProviderError for any other control-plane rejection.
type InstanceAPI interface {
	StartInstance(ctx context.Context, instanceID string) error
	StopInstance(ctx context.Context, instanceID string) error
}

// Handler processes power requests. It holds no mutable state and is safe for
// concurrent invocations.
type Handler struct {
	api InstanceAPI
	log *zap.Logger
}

// NewHandler creates a Handler with the given control-plane client and logger.
func NewHandler(api InstanceAPI, log *zap.Logger) *Handler {
	return &Handler{
		api: api,
		log: log,
	}
}

// Handle processes one request and produces one response.
//
// The returned error is always nil: every failure, panics included, is folded
// into the Response so the caller never sees a raw error. Status codes:
//
//	200: action initiated, or the instance is already in the target state
//	400: missing instance id or unknown action
//	500: control-plane rejection or unexpected failure
func (h *Handler) Handle(ctx context.Context, req Request) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("Panic while processing request",
				zap.String(LogFieldInstanceID, req.InstanceID),
				zap.String(LogFieldAction, req.Action),
				zap.Any("panic", r),
			)
			resp = respond(500, fmt.Sprintf("Unexpected error: %v", r))
			err = nil
		}
	}()

	if req.InstanceID == "" {
		h.log.Error("Instance ID not provided in the event input")
		metrics.ValidationFailures.WithLabelValues("missing_instance_id").Inc()
		return respond(400, "Error: Instance ID is required."), nil
	}

	if req.Action != ActionStart && req.Action != ActionStop {
		h.log.Error("Invalid action specified",
			zap.String(LogFieldInstanceID, req.InstanceID),
			zap.String(LogFieldAction, req.Action),
		)
		metrics.ValidationFailures.WithLabelValues("invalid_action").Inc()
		return respond(400, fmt.Sprintf("Error: Invalid action '%s'.", req.Action)), nil
	}

	h.log.Info("Attempting instance power action",
		zap.String(LogFieldInstanceID, req.InstanceID),
		zap.String(LogFieldAction, req.Action),
	)

	var apiErr error
	if req.Action == ActionStart {
		apiErr = h.api.StartInstance(ctx, req.InstanceID)
	} else {
		apiErr = h.api.StopInstance(ctx, req.InstanceID)
	}

	resp = h.classify(req, apiErr)
	metrics.RequestsTotal.WithLabelValues(req.Action, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// classify maps the control-plane outcome onto a Response.
func (h *Handler) classify(req Request, apiErr error) Response {
	if apiErr == nil {
		h.log.Info("Instance power action initiated",
			zap.String(LogFieldInstanceID, req.InstanceID),
			zap.String(LogFieldAction, req.Action),
		)
		return respond(200, fmt.Sprintf("Successfully initiated %s for instance %s.", req.Action, req.InstanceID))
	}

	var conflict *StateConflictError
	if errors.As(apiErr, &conflict) {
		h.log.Warn("Instance already in target state, no action taken",
			zap.String(LogFieldInstanceID, req.InstanceID),
			zap.String(LogFieldAction, req.Action),
			zap.String(LogFieldErrorCode, conflict.Code),
		)
		metrics.StateConflicts.WithLabelValues(req.Action).Inc()
		return respond(200, fmt.Sprintf("Instance %s is already %s.", req.InstanceID, pastTense(req.Action)))
	}

	var provider *ProviderError
	if errors.As(apiErr, &provider) {
		h.log.Error("EC2 client error",
			zap.String(LogFieldInstanceID, req.InstanceID),
			zap.String(LogFieldAction, req.Action),
			zap.String(LogFieldErrorCode, provider.Code),
			zap.Error(apiErr),
		)
		return respond(500, fmt.Sprintf("AWS EC2 Client Error: %s", provider.Error()))
	}

	h.log.Error("Unexpected error processing request",
		zap.String(LogFieldInstanceID, req.InstanceID),
		zap.String(LogFieldAction, req.Action),
		zap.Error(apiErr),
	)
	return respond(500, fmt.Sprintf("Unexpected error: %s", apiErr.Error()))
}

// respond builds a Response with the message encoded as a JSON string.
func respond(status int, message string) Response {
	body, _ := json.Marshal(message)
	return Response{
		StatusCode: status,
		Body:       string(body),
	}
}

// pastTense renders the action as a state word for conflict messages.
func pastTense(action string) string {
	if action == ActionStop {
		return "stopped"
	}
	return "started"
}
