package task

import "time"

// Status represents the lifecycle state of a task
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// IsValid reports whether s is one of the known task statuses
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a unit of work owned by a single user
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	UserID      string    `json:"-"` // owner, never exposed in JSON
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter narrows a task listing. Zero values mean "no constraint".
type Filter struct {
	Status Status
	Search string // substring match over title and description
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest represents a partial update of a task
type UpdateTaskRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status,omitempty"`
}

// UpdateStatusRequest represents a status-only update of a task
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}
