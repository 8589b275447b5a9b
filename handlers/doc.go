// Package handlers provides the HTTP surface of the local development server.
//
// Overview
//
// The service has one functional endpoint. It accepts the same invocation
// payload the Lambda entrypoint receives and runs it through the same
// scheduler, so the handler can be exercised end to end without a Lambda
// runtime:
//   - power.go: instance power endpoint
//   - health.go: health check endpoint
//
// Request Flow
//
// Each power request follows a fixed pattern:
//   1. Record start time
//   2. Decode the request body
//   3. Hand the payload to the scheduler (validation, dispatch, classification)
//   4. Render the scheduler response with its status code
//   5. Observe request duration
//
// Error Handling
//
// The scheduler always produces a well-formed response record; the handler
// mirrors its status code onto the HTTP response:
//   - 400: Bad Request (missing instance id, invalid action, malformed body)
//   - 200: action initiated, or instance already in target state
//   - 500: EC2 rejection or unexpected failure
//
// Metrics
//
// Outcome counters live in the scheduler; this package records request
// duration per action.
package handlers
