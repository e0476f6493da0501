package engine

import (
	"fmt"

	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// ValidationError reports invalid intent parameters at creation time
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup of an unknown intent, solution or execution
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// AlreadyExecutingError rejects a second concurrent execution attempt for
// the same intent
type AlreadyExecutingError struct {
	IntentID string
}

func (e *AlreadyExecutingError) Error() string {
	return fmt.Sprintf("intent %s is already executing", e.IntentID)
}

// UnsupportedStepTypeError reports a step type the executor cannot dispatch
type UnsupportedStepTypeError struct {
	StepType models.StepType
}

func (e *UnsupportedStepTypeError) Error() string {
	return fmt.Sprintf("unsupported step type: %s", e.StepType)
}
