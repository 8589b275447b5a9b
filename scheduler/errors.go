package scheduler

import "fmt"

// StateConflictError reports that the instance already matches the requested
// end state. Callers treat it as a benign outcome, not a failure.
type StateConflictError struct {
	InstanceID string
	Code       string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("instance %s already in requested state (%s)", e.InstanceID, e.Code)
}

// ProviderError is any other control-plane rejection: permissions, throttling,
// unknown instance and so on. Code carries the provider error code when the
// provider supplied one.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
