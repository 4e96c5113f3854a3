package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskbot/taskbot-api/internal/models"
	"github.com/taskbot/taskbot-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskForbidden   = errors.New("task belongs to another user")
	ErrTitleRequired   = errors.New("title is required")
	ErrTitleEmpty      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
)

// TaskService handles task business logic. Every operation takes the
// authenticated caller's user ID and enforces ownership before mutating.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    models.TaskPriority
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// untouched, so applying the same input twice is idempotent.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *models.TaskPriority
	Status      *models.TaskStatus
}

// CreateTask creates a new task owned by userID. The owner is always the
// authenticated caller; nothing in the input can reassign it.
func (s *TaskService) CreateTask(userID string, input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      models.TaskStatusPending,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns all tasks owned by userID in insertion order. A user with
// no tasks gets an empty list, not an error.
func (s *TaskService) ListTasks(userID string) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask merges the supplied fields into an existing task. Only the owner
// may update; a missing task reports not-found before any ownership check.
func (s *TaskService) UpdateTask(taskID, userID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.findOwnedTask(taskID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask permanently removes a task. Ownership is enforced the same way
// as on update, and deleting an already-deleted ID reports not-found.
func (s *TaskService) DeleteTask(taskID, userID string) error {
	if _, err := s.findOwnedTask(taskID, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// findOwnedTask loads a task and verifies the caller owns it.
func (s *TaskService) findOwnedTask(taskID, userID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.UserID != userID {
		return nil, ErrTaskForbidden
	}

	return task, nil
}
