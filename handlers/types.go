package handlers

// PowerRequest - request body for the instance power endpoint. Field
// requirements are enforced by the scheduler so the HTTP surface and the
// Lambda surface reject bad input with identical messages.
type PowerRequest struct {
	InstanceID string `json:"instance_id"`
	Action     string `json:"action"`
}
