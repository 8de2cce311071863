package tasks

import "github.com/pkg/errors"

// Sentinel errors of the assignment workflow. Messages go to the API
// response as-is, the controller layer maps them to status codes.
var (
	ErrNotFound           = errors.New("Not found")
	ErrAssignmentNotFound = errors.New("Assignment not found")
	ErrTaskFull           = errors.New("Task is full")
	ErrAlreadyAssigned    = errors.New("Already applied or assigned")
	ErrCrossDepartment    = errors.New("Cross-department not allowed")
	ErrUserBusy           = errors.New("User is currently on business/event time")
	ErrNotOpen            = errors.New("Task is not open for self-apply")
	ErrAlreadyCompleted   = errors.New("Already completed")
	ErrNoRejected         = errors.New("No rejected assignments")
	ErrInvalidProgress    = errors.New("Invalid progress")
	ErrForbidden          = errors.New("Forbidden")
)
