package task

import "errors"

var (
	// ErrTaskNotFound covers both a missing task and a task owned by
	// someone else; callers must not be able to tell the two apart.
	ErrTaskNotFound = errors.New("task not found")

	ErrInvalidStatus = errors.New("invalid task status")
	ErrEmptyTitle    = errors.New("task title is required")
	ErrEmptyBody     = errors.New("task description is required")
)
