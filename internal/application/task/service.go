package task

import (
	"log/slog"
	"strings"

	"taskhub/internal/domain/task"
	"taskhub/internal/domain/user"
)

// Service exposes task operations, each scoped to the acting user. The
// owner is an implicit parameter of every call; no operation can reach a
// task the acting user does not own.
type Service interface {
	List(u *user.User, filter task.Filter) ([]task.Task, error)
	Get(u *user.User, id string) (*task.Task, error)
	Create(u *user.User, req task.CreateTaskRequest) (*task.Task, error)
	Update(u *user.User, id string, req task.UpdateTaskRequest) (*task.Task, error)
	UpdateStatus(u *user.User, id string, status task.Status) (*task.Task, error)
	Delete(u *user.User, id string) error
}

type service struct {
	taskRepo task.Repository
	logger   *slog.Logger
}

// NewService creates a new task service
func NewService(taskRepo task.Repository, logger *slog.Logger) Service {
	return &service{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (s *service) List(u *user.User, filter task.Filter) ([]task.Task, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, task.ErrInvalidStatus
	}
	return s.taskRepo.ListByUser(u.ID, filter)
}

func (s *service) Get(u *user.User, id string) (*task.Task, error) {
	return s.taskRepo.GetByID(id, u.ID)
}

func (s *service) Create(u *user.User, req task.CreateTaskRequest) (*task.Task, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" {
		return nil, task.ErrEmptyTitle
	}
	if description == "" {
		return nil, task.ErrEmptyBody
	}

	t := &task.Task{
		Title:       title,
		Description: description,
		Status:      task.StatusOpen,
		UserID:      u.ID,
	}
	if err := s.taskRepo.Create(t); err != nil {
		return nil, err
	}

	s.logger.Info("task created", "username", u.Username, "taskId", t.ID)
	return t, nil
}

// Update applies a partial update. Fields left empty in the request keep
// their current values.
func (s *service) Update(u *user.User, id string, req task.UpdateTaskRequest) (*task.Task, error) {
	t, err := s.taskRepo.GetByID(id, u.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		t.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		t.Description = strings.TrimSpace(req.Description)
	}
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, task.ErrInvalidStatus
		}
		t.Status = req.Status
	}

	if err := s.taskRepo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) UpdateStatus(u *user.User, id string, status task.Status) (*task.Task, error) {
	if !status.IsValid() {
		return nil, task.ErrInvalidStatus
	}

	t, err := s.taskRepo.GetByID(id, u.ID)
	if err != nil {
		return nil, err
	}

	t.Status = status
	if err := s.taskRepo.Update(t); err != nil {
		return nil, err
	}

	s.logger.Info("task status updated", "username", u.Username, "taskId", t.ID, "status", status)
	return t, nil
}

func (s *service) Delete(u *user.User, id string) error {
	if err := s.taskRepo.Delete(id, u.ID); err != nil {
		return err
	}
	s.logger.Info("task deleted", "username", u.Username, "taskId", id)
	return nil
}
