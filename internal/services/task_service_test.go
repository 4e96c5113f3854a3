package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskbot/taskbot-api/internal/models"
	"github.com/taskbot/taskbot-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewTaskService(repository.NewTaskRepository(db)), db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestTaskService_CreateTask_Defaults(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	task, err := svc.CreateTask(user.ID, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, user.ID, task.UserID)
	require.Equal(t, models.TaskPriorityMedium, task.Priority)
	require.Equal(t, models.TaskStatusPending, task.Status)
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	_, err := svc.CreateTask(user.ID, CreateTaskInput{Title: ""})
	require.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.CreateTask(user.ID, CreateTaskInput{Title: "x", Priority: "urgent"})
	require.ErrorIs(t, err, ErrInvalidPriority)
}

func TestTaskService_ListTasks_OwnershipIsolation(t *testing.T) {
	svc, db := setupTaskService(t)
	userA := createUser(t, db, "a@x.com")
	userB := createUser(t, db, "b@x.com")

	taskA, err := svc.CreateTask(userA.ID, CreateTaskInput{Title: "A's task"})
	require.NoError(t, err)

	tasksA, err := svc.ListTasks(userA.ID)
	require.NoError(t, err)
	require.Len(t, tasksA, 1)
	require.Equal(t, taskA.ID, tasksA[0].ID)

	// B never sees A's tasks; an empty list is not an error.
	tasksB, err := svc.ListTasks(userB.ID)
	require.NoError(t, err)
	require.NotNil(t, tasksB)
	require.Empty(t, tasksB)
}

func TestTaskService_ListTasks_InsertionOrder(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		task := &models.Task{
			UserID:    user.ID,
			Title:     title,
			Priority:  models.TaskPriorityMedium,
			Status:    models.TaskStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(task).Error)
	}

	tasks, err := svc.ListTasks(user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "first", tasks[0].Title)
	require.Equal(t, "second", tasks[1].Title)
	require.Equal(t, "third", tasks[2].Title)
}

func TestTaskService_UpdateTask_PartialMerge(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	task, err := svc.CreateTask(user.ID, CreateTaskInput{
		Title:       "Buy milk",
		Description: "2 liters",
		DueDate:     &dueDate,
		Priority:    models.TaskPriorityHigh,
	})
	require.NoError(t, err)

	newTitle := "Buy oat milk"
	updated, err := svc.UpdateTask(task.ID, user.ID, UpdateTaskInput{Title: &newTitle})
	require.NoError(t, err)

	require.Equal(t, "Buy oat milk", updated.Title)
	require.Equal(t, "2 liters", updated.Description)
	require.NotNil(t, updated.DueDate)
	require.True(t, updated.DueDate.Equal(dueDate))
	require.Equal(t, models.TaskPriorityHigh, updated.Priority)
}

func TestTaskService_UpdateTask_Idempotent(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	task, err := svc.CreateTask(user.ID, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	newTitle := "Buy oat milk"
	status := models.TaskStatusCompleted
	input := UpdateTaskInput{Title: &newTitle, Status: &status}

	first, err := svc.UpdateTask(task.ID, user.ID, input)
	require.NoError(t, err)
	second, err := svc.UpdateTask(task.ID, user.ID, input)
	require.NoError(t, err)

	require.Equal(t, first.Title, second.Title)
	require.Equal(t, first.Description, second.Description)
	require.Equal(t, first.Priority, second.Priority)
	require.Equal(t, first.Status, second.Status)
	require.Equal(t, first.DueDate, second.DueDate)
}

func TestTaskService_UpdateTask_Validation(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	task, err := svc.CreateTask(user.ID, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	empty := ""
	_, err = svc.UpdateTask(task.ID, user.ID, UpdateTaskInput{Title: &empty})
	require.ErrorIs(t, err, ErrTitleEmpty)

	badStatus := models.TaskStatus("archived")
	_, err = svc.UpdateTask(task.ID, user.ID, UpdateTaskInput{Status: &badStatus})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTaskService_OwnershipEnforcedOnUpdateAndDelete(t *testing.T) {
	svc, db := setupTaskService(t)
	userA := createUser(t, db, "a@x.com")
	userB := createUser(t, db, "b@x.com")

	task, err := svc.CreateTask(userA.ID, CreateTaskInput{Title: "A's task"})
	require.NoError(t, err)

	newTitle := "hijacked"
	_, err = svc.UpdateTask(task.ID, userB.ID, UpdateTaskInput{Title: &newTitle})
	require.ErrorIs(t, err, ErrTaskForbidden)

	err = svc.DeleteTask(task.ID, userB.ID)
	require.ErrorIs(t, err, ErrTaskForbidden)

	// The owner still can.
	err = svc.DeleteTask(task.ID, userA.ID)
	require.NoError(t, err)
}

func TestTaskService_DeletedTaskIsGone(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	task, err := svc.CreateTask(user.ID, CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(task.ID, user.ID))

	newTitle := "too late"
	_, err = svc.UpdateTask(task.ID, user.ID, UpdateTaskInput{Title: &newTitle})
	require.ErrorIs(t, err, ErrTaskNotFound)

	err = svc.DeleteTask(task.ID, user.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	svc, db := setupTaskService(t)
	user := createUser(t, db, "a@x.com")

	newTitle := "nothing here"
	_, err := svc.UpdateTask("no-such-task", user.ID, UpdateTaskInput{Title: &newTitle})
	require.ErrorIs(t, err, ErrTaskNotFound)
}
