package repository

import (
	"github.com/taskbot/taskbot-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email (case-sensitive, as stored)
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// ListByUserID returns all tasks owned by a user in insertion order
	ListByUserID(userID string) ([]models.Task, error)

	// Update persists the full task record
	Update(task *models.Task) error

	// Delete permanently removes a task
	Delete(id string) error
}
